package zobrist

import (
	"lukechampine.com/frand"

	"github.com/domino14/bitgrid/board"
)

const bignum = 1<<63 - 2

// Zobrist generates hashes for square sets.
// https://en.wikipedia.org/wiki/Zobrist_hashing
// Each of the 64 squares gets a random key; the hash of a bitboard is the
// XOR of the keys of its members, so adding or removing a square is a
// single XOR rather than a full recompute.
type Zobrist struct {
	squareKeys [64]uint64
}

func (z *Zobrist) Initialize() {
	for i := range z.squareKeys {
		z.squareKeys[i] = frand.Uint64n(bignum) + 1
	}
}

// Hash computes the full hash of b from scratch.
func (z *Zobrist) Hash(b board.Bitboard) uint64 {
	key := uint64(0)
	for _, sq := range b.Squares() {
		key ^= z.squareKeys[sq.Index()]
	}
	return key
}

// AddRemove toggles sq's contribution to key. XOR is its own inverse, so
// the same call both adds a square to a hash and removes it again.
func (z *Zobrist) AddRemove(key uint64, sq board.Square) uint64 {
	return key ^ z.squareKeys[sq.Index()]
}
