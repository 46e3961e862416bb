// Package reduce composes the canonical "sounds-like / accent
// insensitive" projection used for fuzzy dictionary lookup.
package reduce

import (
	"github.com/textgrain/spell/internal/codec"
	"github.com/textgrain/spell/internal/transcribe"
	"github.com/textgrain/spell/internal/uniprops"
)

// Reduce decomposes cps, strips every combining mark, and - if t is
// non-nil and non-empty - applies its rules. The result is the
// canonical reduced form used to populate and probe the reduced-form
// index.
func Reduce(cps []codec.CodePoint, t *transcribe.Transcriber) []codec.CodePoint {
	decomposed := uniprops.UnPrecompose(cps)

	stripped := make([]codec.CodePoint, 0, len(decomposed))

	for _, c := range decomposed {
		if !uniprops.IsCombining(c) {
			stripped = append(stripped, c)
		}
	}

	if t == nil || t.Empty() {
		return stripped
	}

	return t.Apply(stripped)
}
