package board

import "errors"

var (
	// ErrOutOfBounds is returned when a coordinate or linear index falls
	// outside the 8x8 grid.
	ErrOutOfBounds = errors.New("square out of bounds")
	// ErrInvalidFormat is returned when a string is not 2-character
	// algebraic notation.
	ErrInvalidFormat = errors.New("invalid square notation")
	// ErrNotSingleton is returned when a bitboard with zero or several
	// set bits is converted to a single square.
	ErrNotSingleton = errors.New("bitboard does not contain exactly one square")
)
