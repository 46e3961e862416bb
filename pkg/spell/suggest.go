package spell

import (
	"github.com/textgrain/spell/internal/reduce"
	"github.com/textgrain/spell/internal/reducedindex"
)

// maxDistance is the largest wordDiff goodness kept as a suggestion.
const maxDistance = 3

// spread bounds how far from its source position wordDiff will look
// for a matching character in the other word.
const spread = 2

// bufLen bounds the suggestion buffer, matching the documented engine
// limit from the original implementation.
const bufLen = 100

const infinity = 1 << 30

// ShowAlternatives returns up to max ranked spelling alternatives for
// probe, which the caller must already know is misspelled. If max is
// 0, maxAlternatives is used. Each returned word has a wordDiff of at
// most maxDistance against probe's reduced form, and the list is
// sorted nondecreasing by that distance. It returns ErrWordTooLong if
// probe exceeds MaxWordLength code points.
func (e *Engine) ShowAlternatives(probe []CodePoint, max int) ([]Suggestion, error) {
	if len(probe) > MaxWordLength {
		return nil, ErrWordTooLong
	}

	if e.good.Contains(probe) {
		return nil, nil // defensive: caller should have checked already
	}

	if max <= 0 {
		max = maxAlternatives
	}

	reduced := reduce.Reduce(probe, e.tr)

	e.suggestBuf = e.suggestBuf[:0]

	if err := e.addMatches(reduced, reduced); err != nil {
		return nil, err
	}

	// Omit seriatim each position of the reduction.
	for i := range reduced {
		omitted := make([]CodePoint, 0, len(reduced)-1)
		omitted = append(omitted, reduced[:i]...)
		omitted = append(omitted, reduced[i+1:]...)

		if err := e.addMatches(omitted, reduced); err != nil {
			return nil, err
		}
	}

	// Swap each adjacent pair of the reduction.
	for i := 1; i < len(reduced); i++ {
		swapped := append([]CodePoint(nil), reduced...)
		swapped[i-1], swapped[i] = swapped[i], swapped[i-1]

		if err := e.addMatches(swapped, reduced); err != nil {
			return nil, err
		}
	}

	count := len(e.suggestBuf)
	if count > max {
		count = max
	}

	out := make([]Suggestion, 0, count)

	for i := 0; i < count; i++ {
		slot := e.suggestBuf[i]

		raw, err := e.wordAt(Locator(slot.locator))
		if err != nil {
			return nil, err
		}

		out = append(out, Suggestion{Word: string(raw), Goodness: slot.goodness})
	}

	return out, nil
}

// addMatches walks the reduced-index probe chain for probe, scoring
// every match it finds against target via wordDiff.
func (e *Engine) addMatches(probe, target []CodePoint) error {
	var addErr error

	e.idx.Lookup(probe, func(loc reducedindex.Locator) {
		if addErr != nil {
			return
		}

		word, err := e.decodeWordAt(Locator(loc))
		if err != nil {
			addErr = err

			return
		}

		reducedWord := reduce.Reduce(word, e.tr)
		addErr = e.addSuggestion(Locator(loc), wordDiff(reducedWord, target))
	})

	return addErr
}

// addSuggestion inserts locator into the ordered suggestion buffer at
// the position matching goodness, keeping the buffer sorted
// nondecreasing by goodness. A duplicate locator keeps whichever
// goodness is smaller. Suggestions worse than maxDistance are
// rejected outright.
func (e *Engine) addSuggestion(locator Locator, goodness int) error {
	if goodness > maxDistance {
		return nil
	}

	if len(e.suggestBuf) >= bufLen {
		return ErrTableOverflow
	}

	index := 0
	for index < len(e.suggestBuf) && goodness >= e.suggestBuf[index].goodness {
		if e.suggestBuf[index].locator == locator {
			if e.suggestBuf[index].goodness > goodness {
				e.suggestBuf[index].goodness = goodness
			}

			return nil
		}

		index++
	}

	e.suggestBuf = append(e.suggestBuf, suggestionSlot{})
	copy(e.suggestBuf[index+1:], e.suggestBuf[index:])
	e.suggestBuf[index] = suggestionSlot{locator: locator, goodness: goodness}

	return nil
}

// wordDiff computes a positional symmetric difference between a and
// b: for each position in a, it searches for that code point in b
// within a window of spread positions around the same index (and
// vice versa), counting 1 for every code point that cannot be found
// nearby. This rewards order-preserving near-matches with small local
// transpositions; it is not true edit distance.
func wordDiff(a, b []CodePoint) int {
	answer := 0

	answer += countUnmatched(a, b)
	answer += countUnmatched(b, a)

	return answer
}

func countUnmatched(from, against []CodePoint) int {
	tmp := append([]CodePoint(nil), against...)

	answer := 0

	for i, c := range from {
		answer++

		lo := i - spread
		if lo < 0 {
			lo = 0
		}

		hi := i + spread
		if hi >= len(tmp) {
			hi = len(tmp) - 1
		}

		for j := lo; j <= hi; j++ {
			if tmp[j] == c {
				tmp[j] = 0
				answer--

				break
			}
		}
	}

	return answer
}
