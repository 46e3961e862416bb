package reduce_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/textgrain/spell/internal/codec"
	"github.com/textgrain/spell/internal/reduce"
	"github.com/textgrain/spell/internal/transcribe"
)

func cps(s string) []codec.CodePoint {
	return codec.Decode([]byte(s))
}

func Test_Reduce_Returns_AccentStripped_When_WordIsPrecomposed(t *testing.T) {
	t.Parallel()

	got := reduce.Reduce(cps("café"), nil)
	want := cps("cafe")

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Reduce() mismatch (-want +got):\n%s", diff)
	}
}

func Test_Reduce_Returns_Transcribed_When_TranscriberProvided(t *testing.T) {
	t.Parallel()

	tr := transcribe.Build([]transcribe.Rule{
		{Left: cps("ph"), Right: cps("f")},
	}, nil)

	got := reduce.Reduce(cps("phone"), tr)
	want := cps("fone")

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Reduce() mismatch (-want +got):\n%s", diff)
	}
}

func Test_Reduce_Returns_Fixpoint_When_AppliedTwice(t *testing.T) {
	t.Parallel()

	tr := transcribe.Build([]transcribe.Rule{
		{Left: cps("ph"), Right: cps("f")},
	}, nil)

	once := reduce.Reduce(cps("phone"), tr)
	twice := reduce.Reduce(once, tr)

	if diff := cmp.Diff(once, twice); diff != "" {
		t.Errorf("Reduce() is not a fixpoint (-once +twice):\n%s", diff)
	}
}

func Test_Reduce_Returns_Unchanged_When_NoTranscriberOrCombiningMarks(t *testing.T) {
	t.Parallel()

	got := reduce.Reduce(cps("hello"), nil)
	want := cps("hello")

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Reduce() mismatch (-want +got):\n%s", diff)
	}
}
