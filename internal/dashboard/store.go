package dashboard

import (
	"context"
	"errors"
)

// ErrNotFound reports a session with no stored state. Callers treat it as a
// fresh, zero-value dashboard.
var ErrNotFound = errors.New("session state not found")

// Store persists per-session dashboard state.
type Store interface {
	Get(ctx context.Context, sessionID string) (State, error)
	Put(ctx context.Context, sessionID string, state State) error
}
