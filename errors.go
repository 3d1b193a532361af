package lottie

import "fmt"

// DecodeError is returned when a JSON value does not have the shape of the
// requested vector type.
type DecodeError struct {
	// Type is the Go type being decoded, e.g. "Vector2D".
	Type string
	// Reason describes what was wrong with the input.
	Reason string
	// Err is the underlying error, if any.
	Err error
}

func (e *DecodeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("lottie: decode %s: %s: %v", e.Type, e.Reason, e.Err)
	}
	return fmt.Sprintf("lottie: decode %s: %s", e.Type, e.Reason)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// DomainError is returned when an operation is undefined for its input,
// such as inverting a singular transform.
type DomainError struct {
	Op     string
	Reason string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("lottie: %s: %s", e.Op, e.Reason)
}

// ErrNotInvertible is returned by [Transform.Inverted] when the matrix has
// a zero or non-finite determinant.
var ErrNotInvertible error = &DomainError{Op: "invert", Reason: "transform is not invertible"}
