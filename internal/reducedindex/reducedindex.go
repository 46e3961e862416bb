// Package reducedindex implements the open-addressed hash table that
// maps a reduced word form to the dictionary locator(s) it was
// derived from, using the quadratic-geometric probe sequence
// insertReducedWordTable uses.
package reducedindex

import (
	"errors"
	"fmt"

	"github.com/textgrain/spell/internal/codec"
	"github.com/textgrain/spell/internal/hashing"
)

// offsetBits is the number of bits of a packed locator given to the
// byte offset; the remaining high bits hold the file index.
const offsetBits = 29

const offsetMask uint32 = 1<<offsetBits - 1

// maxProbes bounds the probe chain length; exceeding it means the
// table is undersized for its load and the caller must abort.
const maxProbes = 100

// ErrTableTooSmall is returned when a probe chain exceeds maxProbes
// entries without finding an empty slot or a duplicate.
var ErrTableTooSmall = errors.New("reducedindex: table too small")

// Locator identifies a dictionary word by which file it came from and
// its byte offset within that file. FileIndex 0 is never produced by
// Pack; it is reserved internally by Index as the "empty slot"
// sentinel, per the REDESIGN FLAGS note that 0-as-empty is an
// internal encoding detail, not part of the public contract.
type Locator struct {
	FileIndex uint8
	Offset    uint32
}

// Pack encodes a Locator into the table's internal 32-bit
// representation.
func Pack(l Locator) uint32 {
	return (l.Offset & offsetMask) | uint32(l.FileIndex)<<offsetBits
}

// Unpack decodes the table's internal 32-bit representation back into
// a Locator.
func Unpack(v uint32) Locator {
	return Locator{
		FileIndex: uint8(v >> offsetBits), //nolint:gosec // file index is 3 bits, always fits uint8
		Offset:    v & offsetMask,
	}
}

// Index is the open-addressed probe table. Slot value 0 means empty;
// a real locator is never 0 because FileIndex is always >= 1.
type Index struct {
	slots []uint32
	mask  uint32
}

// New creates an Index sized for length slots (length must be a power
// of two; use goodwords.Size to compute it).
func New(length uint32) *Index {
	return &Index{
		slots: make([]uint32, length),
		mask:  length - 1,
	}
}

// Insert adds locator under the probe chain starting at
// hash(reduced, seed=1). A slot already holding the same locator is
// treated as a duplicate and left untouched. Returns ErrTableTooSmall
// if the chain exceeds maxProbes entries before finding an empty slot
// or a duplicate.
func (idx *Index) Insert(reduced []codec.CodePoint, locator Locator) error {
	packed := Pack(locator)

	h := hashing.Hash(reduced, 1) & idx.mask
	delta := uint32(1)

	for probes := 0; idx.slots[h] != 0; probes++ {
		// The whole packed locator (file index and offset) is
		// compared, so a word from another file that happens to sit
		// at the same byte offset is not mistaken for a duplicate.
		if idx.slots[h] == packed {
			return nil // duplicate
		}

		if probes >= maxProbes {
			return fmt.Errorf("%w: probe chain for %q exceeded %d entries",
				ErrTableTooSmall, string(codec.Encode(reduced)), maxProbes)
		}

		delta = (delta << 1) | 1
		h = (h + delta) & idx.mask
	}

	idx.slots[h] = packed

	return nil
}

// Lookup walks the probe chain starting at hash(reduced, seed=1),
// calling visit for every occupied slot until the first empty slot is
// reached.
func (idx *Index) Lookup(reduced []codec.CodePoint, visit func(Locator)) {
	h := hashing.Hash(reduced, 1) & idx.mask
	delta := uint32(1)

	for idx.slots[h] != 0 {
		visit(Unpack(idx.slots[h]))
		delta = (delta << 1) | 1
		h = (h + delta) & idx.mask
	}
}
