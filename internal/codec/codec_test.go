package codec_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/textgrain/spell/internal/codec"
)

func Test_Decode_Returns_ASCII_CodePoints_When_InputIsASCII(t *testing.T) {
	t.Parallel()

	got := codec.Decode([]byte("hello"))
	want := []codec.CodePoint{'h', 'e', 'l', 'l', 'o'}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Decode() mismatch (-want +got):\n%s", diff)
	}
}

func Test_Decode_Returns_CodePoint_When_InputIsMultiByte(t *testing.T) {
	t.Parallel()

	// café, with é as U+00E9 (2-byte UTF-8: 0xC3 0xA9)
	got := codec.Decode([]byte("caf\xc3\xa9"))
	want := []codec.CodePoint{'c', 'a', 'f', 0x00E9}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Decode() mismatch (-want +got):\n%s", diff)
	}
}

func Test_Decode_Returns_StandInByte_When_LeadByteIsInvalid(t *testing.T) {
	t.Parallel()

	got := codec.Decode([]byte{0x80, 'x'})
	want := []codec.CodePoint{0x80, 'x'}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Decode() mismatch (-want +got):\n%s", diff)
	}
}

func Test_Decode_Returns_StandInByte_When_ContinuationIsBad(t *testing.T) {
	t.Parallel()

	// lead byte claims 2-byte sequence, but next byte isn't a continuation byte
	got := codec.Decode([]byte{0xC3, 'x'})
	want := []codec.CodePoint{0xC3, 'x'}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Decode() mismatch (-want +got):\n%s", diff)
	}
}

func Test_Encode_Drops_ZeroCodePoint_When_Present(t *testing.T) {
	t.Parallel()

	got := codec.Encode([]codec.CodePoint{'a', 0, 'b'})
	want := []byte("ab")

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Encode() mismatch (-want +got):\n%s", diff)
	}
}

func Test_RoundTrip_Returns_OriginalBytes_When_InputIsValidUTF8(t *testing.T) {
	t.Parallel()

	cases := []string{
		"hello",
		"café",
		"mañana",
		"כתב",
		"",
	}

	for _, s := range cases {
		got := codec.Encode(codec.Decode([]byte(s)))
		if string(got) != s {
			t.Errorf("round trip of %q produced %q", s, got)
		}
	}
}

func Test_RoundTrip_Returns_OriginalCodePoints_When_NoneAreZero(t *testing.T) {
	t.Parallel()

	cps := []codec.CodePoint{'h', 'e', 'l', 'l', 'o', 0x00F1, 0x0301}

	got := codec.Decode(codec.Encode(cps))

	if diff := cmp.Diff(cps, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}
