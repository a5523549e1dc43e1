package validators

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrRequiredField     = errors.New("all fields are required")
	ErrPasswordsMismatch = errors.New("passwords need to match")
	ErrPasswordTooShort  = errors.New("password must be at least 8 characters")
)

// ValidationError reports which form field failed a client-side check.
// It unwraps to one of the sentinel errors above so callers can use
// [errors.Is] without caring about the field.
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %v", e.Field, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}
