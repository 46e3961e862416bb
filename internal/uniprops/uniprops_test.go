package uniprops_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/textgrain/spell/internal/codec"
	"github.com/textgrain/spell/internal/uniprops"
)

func Test_IsCombining_Returns_True_When_CodePointIsAccentMark(t *testing.T) {
	t.Parallel()

	if !uniprops.IsCombining(0x0301) { // combining acute accent
		t.Error("want combining mark to be detected")
	}
}

func Test_IsCombining_Returns_False_When_CodePointIsOrdinaryLetter(t *testing.T) {
	t.Parallel()

	if uniprops.IsCombining('a') {
		t.Error("want ordinary letter not to be combining")
	}
}

func Test_IsAlphabetic_Returns_True_When_CodePointIsLetter(t *testing.T) {
	t.Parallel()

	if !uniprops.IsAlphabetic('a') {
		t.Error("want letter to be alphabetic")
	}
}

func Test_IsAlphabetic_Returns_False_When_CodePointIsDigit(t *testing.T) {
	t.Parallel()

	if uniprops.IsAlphabetic('5') {
		t.Error("want digit not to be alphabetic")
	}
}

func Test_ToUpper_Returns_UppercaseForm_When_LetterHasCaseMapping(t *testing.T) {
	t.Parallel()

	got := uniprops.ToUpper([]codec.CodePoint{'h', 'i', 0x00F1})
	want := []codec.CodePoint{'H', 'I', 0x00D1}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ToUpper() mismatch (-want +got):\n%s", diff)
	}
}

func Test_UnPrecompose_Returns_BasePlusCombining_When_CharIsPrecomposed(t *testing.T) {
	t.Parallel()

	// U+00F1 (n with tilde) decomposes to 'n' + U+0303 (combining tilde)
	got := uniprops.UnPrecompose([]codec.CodePoint{0x00F1})
	want := []codec.CodePoint{'n', 0x0303}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("UnPrecompose() mismatch (-want +got):\n%s", diff)
	}
}

func Test_UnPrecompose_Returns_Unchanged_When_CharHasNoDecomposition(t *testing.T) {
	t.Parallel()

	got := uniprops.UnPrecompose([]codec.CodePoint{'h', 'e', 'l', 'l', 'o'})
	want := []codec.CodePoint{'h', 'e', 'l', 'l', 'o'}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("UnPrecompose() mismatch (-want +got):\n%s", diff)
	}
}

func Test_ToFinal_Returns_FinalKaf_When_GivenOrdinaryKaf(t *testing.T) {
	t.Parallel()

	got := uniprops.ToFinal(0x05DB)
	want := codec.CodePoint(0x05DA)

	if got != want {
		t.Errorf("ToFinal() = %x, want %x", got, want)
	}
}

func Test_ToFinal_Returns_Unchanged_When_NoFinalFormExists(t *testing.T) {
	t.Parallel()

	got := uniprops.ToFinal('a')
	want := codec.CodePoint('a')

	if got != want {
		t.Errorf("ToFinal() = %x, want %x", got, want)
	}
}
