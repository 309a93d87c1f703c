package transition

import "errors"

var (
	// ErrInvalidState is returned when an operation is attempted in the
	// wrong controller state, e.g. Add after Start or a second Start.
	ErrInvalidState = errors.New("transition: invalid controller state")

	// ErrTypeMismatch is returned by Add when the destination value's type
	// differs from the property's current type.
	ErrTypeMismatch = errors.New("transition: destination type mismatch")
)
