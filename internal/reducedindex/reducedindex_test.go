package reducedindex_test

import (
	"testing"

	"github.com/textgrain/spell/internal/codec"
	"github.com/textgrain/spell/internal/goodwords"
	"github.com/textgrain/spell/internal/reducedindex"
)

func Test_Pack_Unpack_Returns_OriginalLocator_When_RoundTripped(t *testing.T) {
	t.Parallel()

	want := reducedindex.Locator{FileIndex: 3, Offset: 123456}

	got := reducedindex.Unpack(reducedindex.Pack(want))
	if got != want {
		t.Errorf("round trip = %+v, want %+v", got, want)
	}
}

func Test_Lookup_Finds_Locator_When_Inserted(t *testing.T) {
	t.Parallel()

	idx := reducedindex.New(goodwords.Size(1024))

	reduced := codec.Decode([]byte("hello"))
	want := reducedindex.Locator{FileIndex: 1, Offset: 42}

	if err := idx.Insert(reduced, want); err != nil {
		t.Fatalf("Insert() error = %v", err)
	}

	var found bool

	idx.Lookup(reduced, func(l reducedindex.Locator) {
		if l == want {
			found = true
		}
	})

	if !found {
		t.Error("want inserted locator to be found via Lookup")
	}
}

func Test_Lookup_Finds_AllInserted_When_TableIsSparse(t *testing.T) {
	t.Parallel()

	// sizing well under 50% fill, per the no-false-negative testable property
	idx := reducedindex.New(goodwords.Size(4096))

	words := []string{"hello", "world", "football", "foot", "ball", "phone", "fone"}

	locators := make(map[string]reducedindex.Locator)

	for i, w := range words {
		loc := reducedindex.Locator{FileIndex: 1, Offset: uint32(i * 10)} //nolint:gosec // test fixture
		locators[w] = loc

		if err := idx.Insert(codec.Decode([]byte(w)), loc); err != nil {
			t.Fatalf("Insert(%q) error = %v", w, err)
		}
	}

	for _, w := range words {
		want := locators[w]

		var found bool

		idx.Lookup(codec.Decode([]byte(w)), func(l reducedindex.Locator) {
			if l == want {
				found = true
			}
		})

		if !found {
			t.Errorf("want locator for %q to be found before first empty slot", w)
		}
	}
}

func Test_Insert_Returns_NoError_When_SameLocatorInsertedTwice(t *testing.T) {
	t.Parallel()

	idx := reducedindex.New(goodwords.Size(1024))
	reduced := codec.Decode([]byte("hello"))
	loc := reducedindex.Locator{FileIndex: 1, Offset: 7}

	if err := idx.Insert(reduced, loc); err != nil {
		t.Fatalf("first Insert() error = %v", err)
	}

	if err := idx.Insert(reduced, loc); err != nil {
		t.Fatalf("second (duplicate) Insert() error = %v", err)
	}
}

func Test_Insert_Returns_TableTooSmallError_When_ProbeChainExceedsLimit(t *testing.T) {
	t.Parallel()

	// table of length 1: every insert collides at slot 0.
	idx := reducedindex.New(1)

	var lastErr error

	for i := 0; i < 200; i++ {
		loc := reducedindex.Locator{FileIndex: 1, Offset: uint32(i)} //nolint:gosec // test fixture
		lastErr = idx.Insert(codec.Decode([]byte{byte(i), byte(i + 1)}), loc)

		if lastErr != nil {
			break
		}
	}

	if lastErr == nil {
		t.Fatal("want ErrTableTooSmall once probe chain exceeds limit on a single-slot table")
	}
}
