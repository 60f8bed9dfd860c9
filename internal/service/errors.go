package service

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput is matched by every *InputError
	ErrInvalidInput = errors.New("invalid input")

	// ErrUndefined is returned when a model cannot produce an answer for the
	// given inputs, e.g. heart-rate zones without a resting heart rate
	ErrUndefined = errors.New("undefined for the given input")
)

// InputError names the input that failed to parse or is out of range
type InputError struct {
	Field  string // "pace", "mas", "reps", ...
	Value  string
	Reason string
}

func (e *InputError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Reason)
}

// Is makes errors.Is(err, ErrInvalidInput) true for any InputError
func (e *InputError) Is(target error) bool {
	return target == ErrInvalidInput
}

func invalid(field, value, reason string) error {
	return &InputError{Field: field, Value: value, Reason: reason}
}

func undefined(reason string) error {
	return fmt.Errorf("%w: %s", ErrUndefined, reason)
}

// FieldOf returns the offending field of an input error, or ""
func FieldOf(err error) string {
	var ie *InputError
	if errors.As(err, &ie) {
		return ie.Field
	}
	return ""
}
