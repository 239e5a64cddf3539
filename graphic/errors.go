package graphic

import "errors"

// Sentinel errors for the graphic package.
var (
	// ErrMissingInput is returned when a required input (a Point, a Style
	// owner, an element) is nil.
	ErrMissingInput = errors.New("graphic: missing required input")

	// ErrNoContext is returned when drawing or measuring is requested
	// without a drawing context.
	ErrNoContext = errors.New("graphic: no drawing context available")

	// ErrNonFinite is returned when a coordinate or scalar is NaN or infinite.
	ErrNonFinite = errors.New("graphic: value is not finite")

	// ErrNegativeRadius is returned when a circle radius is below zero.
	ErrNegativeRadius = errors.New("graphic: negative radius")

	// ErrInvalidDirection is returned for an unknown arrow direction.
	ErrInvalidDirection = errors.New("graphic: invalid arrow direction")
)

// MissingInputError reports which input of which operation was absent.
// It unwraps to ErrMissingInput.
type MissingInputError struct {
	Op    string
	Input string
}

func (e *MissingInputError) Error() string {
	return "graphic: " + e.Op + ": missing " + e.Input
}

// Unwrap returns ErrMissingInput.
func (e *MissingInputError) Unwrap() error {
	return ErrMissingInput
}

func missing(op, input string) error {
	return &MissingInputError{Op: op, Input: input}
}
