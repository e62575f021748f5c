package navigator

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput is returned for a blank clinic lookup. Callers ignore it.
	ErrEmptyInput = errors.New("empty clinic number")
	// ErrInvalidInput is returned for lookup text that is not a facility
	// number. Callers ignore it.
	ErrInvalidInput = errors.New("invalid clinic number")
)

// NotFoundError reports a facility number that is not in the roster
type NotFoundError struct {
	Number int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("clinic %d not found", e.Number)
}

// IsIgnorable reports whether err is a lookup no-op that should not be
// surfaced to the user
func IsIgnorable(err error) bool {
	return errors.Is(err, ErrEmptyInput) || errors.Is(err, ErrInvalidInput)
}

// IsNotFound reports whether err is a *NotFoundError
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
