package hashing_test

import (
	"testing"

	"github.com/textgrain/spell/internal/codec"
	"github.com/textgrain/spell/internal/hashing"
)

func Test_Hash_Returns_SameValue_When_CalledTwiceWithSameInput(t *testing.T) {
	t.Parallel()

	cps := codec.Decode([]byte("hello"))

	a := hashing.Hash(cps, 1)
	b := hashing.Hash(cps, 1)

	if a != b {
		t.Errorf("Hash() not deterministic: %d != %d", a, b)
	}
}

func Test_Hash_Returns_DifferentValue_When_SeedDiffers(t *testing.T) {
	t.Parallel()

	cps := codec.Decode([]byte("hello"))

	seen := make(map[uint32]bool)
	for seed := uint32(1); seed <= 5; seed++ {
		seen[hashing.Hash(cps, seed)] = true
	}

	if len(seen) != 5 {
		t.Errorf("want 5 distinct hashes across 5 seeds, got %d", len(seen))
	}
}

func Test_Hash_Returns_DifferentValue_When_InputDiffersByOneCodePoint(t *testing.T) {
	t.Parallel()

	a := hashing.Hash(codec.Decode([]byte("hello")), 1)
	b := hashing.Hash(codec.Decode([]byte("hellp")), 1)

	if a == b {
		t.Error("want different hashes for different inputs (collision is allowed but vanishingly unlikely here)")
	}
}

func Test_Hash_Returns_Value_When_InputIsEmpty(t *testing.T) {
	t.Parallel()

	// must not panic on zero-length input
	_ = hashing.Hash(nil, 1)
}

func Test_Hash_Returns_Value_When_InputSpansMultipleTwelveByteBlocks(t *testing.T) {
	t.Parallel()

	// must not panic on inputs longer than one 12-byte mixing block
	_ = hashing.Hash(codec.Decode([]byte("abcdefghijklmnopqrstuvwxyz")), 1)
}
