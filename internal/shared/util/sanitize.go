package util

import (
	"errors"
	"strings"
)

// ErrInvalidFileName reports a file name that cannot be made safe.
var ErrInvalidFileName = errors.New("invalid file name")

// SanitizeFileName makes an uploaded resume's file name safe to log and
// forward upstream: traversal patterns are rejected, path separators become
// underscores. The name never touches the local filesystem, but it is
// replayed into the multipart request to the analyzer and into logs.
func SanitizeFileName(name string) (string, error) {
	if strings.Contains(name, "..") {
		return "", ErrInvalidFileName
	}
	s := strings.TrimSpace(name)
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, "\\", "_")
	if s == "" {
		return "", ErrInvalidFileName
	}
	return s, nil
}
