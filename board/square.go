package board

import "fmt"

// A Square identifies one of the 64 cells of an 8x8 board. The file (x)
// lives in the upper four bits and the rank (y) in the lower four bits,
// so a square is a single byte with value semantics; copying and
// comparing are trivial. Both coordinates are always in [0, 7] for any
// square produced by the constructors in this package.
type Square uint8

// NewSquare creates a square from a file (x) and rank (y) coordinate.
func NewSquare(x, y uint8) (Square, error) {
	if x > 7 || y > 7 {
		return 0, fmt.Errorf("coordinates (%d, %d): %w", x, y, ErrOutOfBounds)
	}
	return packSquare(x, y), nil
}

// SquareFromIndex creates a square from its linear index y*8 + x.
func SquareFromIndex(idx uint8) (Square, error) {
	if idx > 63 {
		return 0, fmt.Errorf("index %d: %w", idx, ErrOutOfBounds)
	}
	return squareAt(idx), nil
}

// ParseSquare parses 2-character algebraic notation such as "e4". The
// file letter is case-insensitive; "E4" and "e4" name the same square.
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return 0, fmt.Errorf("%q is not 2 characters: %w", s, ErrInvalidFormat)
	}
	file := s[0]
	if file >= 'A' && file <= 'H' {
		file += 'a' - 'A'
	}
	if file < 'a' || file > 'h' {
		return 0, fmt.Errorf("%q: file must be a-h: %w", s, ErrInvalidFormat)
	}
	rank := s[1]
	if rank < '1' || rank > '8' {
		return 0, fmt.Errorf("%q: rank must be 1-8: %w", s, ErrInvalidFormat)
	}
	return packSquare(file-'a', rank-'1'), nil
}

func packSquare(x, y uint8) Square {
	return Square(x<<4 | y)
}

// squareAt skips the bounds check; callers must pass idx < 64.
func squareAt(idx uint8) Square {
	return packSquare(idx%8, idx/8)
}

// X returns the file coordinate, in [0, 7].
func (sq Square) X() uint8 {
	return uint8(sq) >> 4
}

// Y returns the rank coordinate, in [0, 7].
func (sq Square) Y() uint8 {
	return uint8(sq) & 0x0F
}

// Index returns the linear index y*8 + x, in [0, 63].
func (sq Square) Index() uint8 {
	return sq.Y()*8 + sq.X()
}

func (sq Square) String() string {
	return string([]byte{'a' + sq.X(), '1' + sq.Y()})
}
