package calculator

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is returned for any input the formulas cannot handle:
// non-positive impedance, non-finite values, or arithmetic that would
// produce a non-finite result.
var ErrInvalidInput = errors.New("invalid input")

// InvalidInputMessage is the user facing text for ErrInvalidInput
const InvalidInputMessage = "Invalid input values. Please check your inputs and try again."

// InputError describes which input field was rejected and why
type InputError struct {
	Field  string
	Reason string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("invalid input: %s %s", e.Field, e.Reason)
}

// Is lets errors.Is(err, ErrInvalidInput) match field-level errors
func (e *InputError) Is(target error) bool {
	return target == ErrInvalidInput
}

func invalidField(field, reason string) error {
	return &InputError{Field: field, Reason: reason}
}
