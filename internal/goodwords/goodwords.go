// Package goodwords implements the bloom-filter-style exact-form
// membership set backing spelled-right queries.
package goodwords

import (
	"github.com/textgrain/spell/internal/codec"
	"github.com/textgrain/spell/internal/hashing"
)

// NumHashes is K, the number of independent seeded hashes used for
// both insertion and membership testing.
const NumHashes = 5

// Set is a bit array of length L bits, addressed as L/32 words (one
// word when L is below 32). Once
// a word's bits are set they are never cleared for the life of the
// set: there is no deletion.
type Set struct {
	bits []uint32
	mask uint32
}

// New creates a Set sized for length bits. length is rounded up to
// the next power of two internally by the caller (see Size); New
// itself takes the already-rounded size.
func New(length uint32) *Set {
	return &Set{
		bits: make([]uint32, (length+31)/32),
		mask: length - 1,
	}
}

// Size returns the smallest power of two >= n, the convention used to
// size both the GoodWordSet and the ReducedIndex from the primary
// dictionary's byte length.
func Size(n uint32) uint32 {
	size := uint32(1)
	for size < n {
		size <<= 1
	}

	return size
}

// Insert sets the K bits derived from cps under seeds 1..NumHashes.
func (s *Set) Insert(cps []codec.CodePoint) {
	for seed := uint32(1); seed <= NumHashes; seed++ {
		h := hashing.Hash(cps, seed) & s.mask
		s.bits[h>>5] |= 1 << (h & 0x1f)
	}
}

// Contains reports whether all K bits derived from cps are set. False
// positives are possible; false negatives are not.
func (s *Set) Contains(cps []codec.CodePoint) bool {
	for seed := uint32(1); seed <= NumHashes; seed++ {
		h := hashing.Hash(cps, seed) & s.mask
		if s.bits[h>>5]&(1<<(h&0x1f)) == 0 {
			return false
		}
	}

	return true
}
