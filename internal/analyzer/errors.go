package analyzer

import (
	"errors"
	"fmt"
)

// Op identifies which client operation failed.
type Op string

const (
	OpUpload  Op = "upload"
	OpAnalyze Op = "analyze"
	OpHealth  Op = "health"
)

// ErrorKind classifies a failure: transport (request never completed),
// status (non-200 reply), or decode (body unreadable or shape invalid).
type ErrorKind string

const (
	KindTransport ErrorKind = "transport"
	KindStatus    ErrorKind = "status"
	KindDecode    ErrorKind = "decode"
)

// Error is the typed failure returned by every Client operation.
type Error struct {
	Op     Op
	Kind   ErrorKind
	Status int
	Err    error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindStatus:
		return fmt.Sprintf("analyzer %s: upstream status %d", e.Op, e.Status)
	default:
		return fmt.Sprintf("analyzer %s: %s: %v", e.Op, e.Kind, e.Err)
	}
}

func (e *Error) Unwrap() error { return e.Err }

// KindOf extracts the ErrorKind from err, or empty string if err is not
// an analyzer error.
func KindOf(err error) ErrorKind {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Kind
	}
	return ""
}
