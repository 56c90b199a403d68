package pkg

import (
	"errors"
	"fmt"
)

// RemoteError is the only failure kind the engine distinguishes: an I/O,
// auth or constraint failure reported by the persistence layer. Repositories
// wrap every backend error into it; the store returns it to callers without
// touching local state.
type RemoteError struct {
	Message string
	Err     error
}

func (e *RemoteError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("remote error: %s: %v", e.Message, e.Err)
	}
	return fmt.Sprintf("remote error: %s", e.Message)
}

func (e *RemoteError) Unwrap() error { return e.Err }

func NewRemoteError(message string, err error) *RemoteError {
	return &RemoteError{Message: message, Err: err}
}

// IsRemoteError reports whether err carries a RemoteError anywhere in its
// chain.
func IsRemoteError(err error) bool {
	var re *RemoteError
	return errors.As(err, &re)
}
