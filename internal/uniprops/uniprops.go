// Package uniprops supplies the small set of Unicode property lookups
// the reduction pipeline needs: combining-mark detection, alphabetic
// detection, case mapping, canonical decomposition, and final-form
// resolution for scripts such as Hebrew that carry word-final glyph
// variants.
package uniprops

import (
	"unicode"

	"golang.org/x/text/unicode/norm"

	"github.com/textgrain/spell/internal/codec"
)

// IsCombining reports whether c is a combining mark (Unicode general
// categories Mn, Mc, Me), composed directly from the stdlib unicode
// tables the same way ot.GeneralCategory does for HarfBuzz-style
// category checks.
func IsCombining(c codec.CodePoint) bool {
	r := rune(c)

	return unicode.Is(unicode.Mn, r) || unicode.Is(unicode.Mc, r) || unicode.Is(unicode.Me, r)
}

// IsAlphabetic reports whether c belongs to one of the Unicode letter
// categories (Lu, Ll, Lt, Lm, Lo).
func IsAlphabetic(c codec.CodePoint) bool {
	r := rune(c)

	return unicode.IsLetter(r)
}

// ToUpper maps every code point in cps to its uppercase equivalent,
// leaving code points with no case mapping unchanged.
func ToUpper(cps []codec.CodePoint) []codec.CodePoint {
	dest := make([]codec.CodePoint, len(cps))
	for i, c := range cps {
		dest[i] = codec.CodePoint(unicode.ToUpper(rune(c)))
	}

	return dest
}

// UnPrecompose expands every precomposed code point in cps into its
// canonical decomposition (base code point plus any combining marks),
// leaving already-decomposed code points untouched. It uses
// golang.org/x/text/unicode/norm's NFD form rather than a hand-rolled
// precomposition table.
func UnPrecompose(cps []codec.CodePoint) []codec.CodePoint {
	decomposed := norm.NFD.Bytes(codec.Encode(cps))

	return codec.Decode(decomposed)
}

// finalForms maps a handful of Hebrew letters to their word-final
// glyph variant. There is no ecosystem library for this - it is five
// codepoint pairs, matching the scale and contract of uniprops.h's
// toFinal.
var finalForms = map[codec.CodePoint]codec.CodePoint{ //nolint:gochecknoglobals
	0x05DB: 0x05DA, // kaf -> final kaf
	0x05DE: 0x05DD, // mem -> final mem
	0x05E0: 0x05DF, // nun -> final nun
	0x05E4: 0x05E3, // pe -> final pe
	0x05E6: 0x05E5, // tsadi -> final tsadi
}

// ToFinal returns the word-final form of c if one exists, else c
// unchanged.
func ToFinal(c codec.CodePoint) codec.CodePoint {
	if final, ok := finalForms[c]; ok {
		return final
	}

	return c
}
