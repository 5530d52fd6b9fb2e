package board

import (
	"errors"
	"fmt"
)

// Sentinel errors, checked with errors.Is.
var (
	// ErrMalformedPosition means the input cannot describe a legal board
	// layout, or a Board breaks one of its invariants.
	ErrMalformedPosition = errors.New("malformed position")

	// ErrOutOfBounds means a square name or index is off the board.
	ErrOutOfBounds = errors.New("square out of bounds")
)

// PositionError reports which part of a position was rejected.
type PositionError struct {
	Field string // "placement", "side", "castling", "en passant", ...
	Value string
	Err   error
}

func (e *PositionError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("%s: %v", e.Field, e.Err)
	}
	return fmt.Sprintf("%s %q: %v", e.Field, e.Value, e.Err)
}

func (e *PositionError) Unwrap() error {
	return e.Err
}

func malformed(field, value string) error {
	return &PositionError{Field: field, Value: value, Err: ErrMalformedPosition}
}
