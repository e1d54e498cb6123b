package board

import (
	"fmt"
	"math/bits"
	"strings"
)

// A Bitboard is a set of squares packed into a single machine word. Bit i,
// counted from the least significant bit, is set iff the square with
// linear index i is a member. The zero value is the empty set. Because
// the whole set is one uint64, membership, popcount, and any bitwise
// combination of two boards are constant-time; union and intersection are
// just | and & on the values.
type Bitboard uint64

// BitboardFromSquare returns the singleton set containing only sq. Every
// square maps to a legal one-bit pattern, so this never fails.
func BitboardFromSquare(sq Square) Bitboard {
	return 1 << sq.Index()
}

// Get reports whether sq is a member of the set.
func (b Bitboard) Get(sq Square) bool {
	return b&(1<<sq.Index()) != 0
}

// Set adds sq to the set and returns the prior membership value, so a
// caller can tell whether the mutation was a no-op without a separate
// Get.
func (b *Bitboard) Set(sq Square) bool {
	prior := b.Get(sq)
	*b |= 1 << sq.Index()
	return prior
}

// Clear removes sq from the set and returns the prior membership value.
func (b *Bitboard) Clear(sq Square) bool {
	prior := b.Get(sq)
	*b &^= 1 << sq.Index()
	return prior
}

// Put sets sq's membership to value and returns the prior membership
// value.
func (b *Bitboard) Put(sq Square, value bool) bool {
	if value {
		return b.Set(sq)
	}
	return b.Clear(sq)
}

// Count returns the number of squares in the set.
func (b Bitboard) Count() int {
	return bits.OnesCount64(uint64(b))
}

// Any reports whether the set has at least one member.
func (b Bitboard) Any() bool {
	return b != 0
}

// None reports whether the set is empty.
func (b Bitboard) None() bool {
	return b == 0
}

// Square returns the single member of a singleton set. It fails with
// ErrNotSingleton when the set has zero or more than one member.
func (b Bitboard) Square() (Square, error) {
	if c := b.Count(); c != 1 {
		return 0, fmt.Errorf("%d squares set: %w", c, ErrNotSingleton)
	}
	return squareAt(uint8(bits.TrailingZeros64(uint64(b)))), nil
}

// Squares returns the members of the set in ascending index order.
func (b Bitboard) Squares() []Square {
	sqs := make([]Square, 0, b.Count())
	for rest := b; rest != 0; rest &= rest - 1 {
		sqs = append(sqs, squareAt(uint8(bits.TrailingZeros64(uint64(rest)))))
	}
	return sqs
}

// String renders the set as 8 rows of 8 cells of '0'/'1', one row per
// rank starting at rank 1, cells space-separated and each row
// newline-terminated. Diagnostic output only, not a parse format.
func (b Bitboard) String() string {
	var sb strings.Builder
	sb.Grow(128)
	for i := 0; i < 64; i++ {
		if b&(1<<i) != 0 {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
		if i%8 == 7 {
			sb.WriteByte('\n')
		} else {
			sb.WriteByte(' ')
		}
	}
	return sb.String()
}
