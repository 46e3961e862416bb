package spell

import "github.com/textgrain/spell/internal/uniprops"

// SpelledRight reports whether cps is a known word. It returns
// ErrWordTooLong, without consulting the GoodWordSet, if cps exceeds
// MaxWordLength code points.
func (e *Engine) SpelledRight(cps []CodePoint) (bool, error) {
	if len(cps) > MaxWordLength {
		return false, ErrWordTooLong
	}

	return e.good.Contains(cps), nil
}

// SpelledRightMultiple reports whether cps is spelled right on its
// own, or as the concatenation of two independently spelled-right
// words. It returns len(cps) if the whole word is correct, the length
// of the first word if a two-word split was found, or 0 if neither
// holds.
//
// Before checking each candidate split, the prefix's final character
// is resolved to its word-final form if it has one (scripts such as
// Hebrew use a distinct glyph for a letter at the end of a word); this
// substitution is tracked and undone as soon as a later character is
// seen that is not itself a final-form candidate, and - per the
// REDESIGN FLAGS note that the original restores inconsistently - is
// always undone before SpelledRightMultiple returns, including when
// no split is found.
func (e *Engine) SpelledRightMultiple(cps []CodePoint) int {
	if e.good.Contains(cps) {
		return len(cps)
	}

	// Work on a private copy: the original buffer must be left
	// bitwise identical to its entry state on return, in every exit
	// path.
	buf := append([]CodePoint(nil), cps...)

	finalIndex := -1
	var original CodePoint

	for divide := 1; divide < len(buf)-1; divide++ {
		lastChar := buf[divide-1]

		switch {
		case uniprops.ToFinal(lastChar) != lastChar:
			finalIndex = divide - 1
			original = lastChar
			buf[divide-1] = uniprops.ToFinal(original)
		case !uniprops.IsCombining(lastChar):
			if finalIndex != -1 {
				buf[finalIndex] = original
				finalIndex = -1
			}
		}

		if e.good.Contains(buf[:divide]) && e.good.Contains(buf[divide:]) {
			if finalIndex != -1 {
				buf[finalIndex] = original
			}

			return divide
		}
	}

	if finalIndex != -1 {
		buf[finalIndex] = original
	}

	return 0
}
