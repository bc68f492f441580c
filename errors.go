package astdebug

import (
	"errors"
	"fmt"
)

// ErrInvalidArguments is matched by every error returned for a malformed
// debug call.
var ErrInvalidArguments = errors.New("invalid arguments")

// ArgumentError describes why a debug call could not be resolved.
type ArgumentError struct {
	Reason string
}

// Error implements error.
func (e *ArgumentError) Error() string {
	return "astdebug: invalid arguments: " + e.Reason
}

// Is reports whether target is ErrInvalidArguments.
func (e *ArgumentError) Is(target error) bool {
	return target == ErrInvalidArguments
}

func invalidf(format string, args ...any) error {
	return &ArgumentError{Reason: fmt.Sprintf(format, args...)}
}
