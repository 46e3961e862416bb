package cli

import (
	"fmt"

	"github.com/textgrain/spell/internal/codec"
	"github.com/textgrain/spell/internal/uniprops"
	"github.com/textgrain/spell/pkg/spell"
)

const maxAlternatives = 4

// classifyWord reproduces the fallback chain the driver.cpp sample
// program applies to a candidate word: try it as-is, then
// upper-cased, then with precomposed characters expanded, then as a
// two-word compound, and finally fall back to suggestions. A
// classified-wrong word is accepted afterwards so a batch run never
// repeats the same complaint for it.
func classifyWord(engine *spell.Engine, word []byte) (string, error) {
	cps := codec.Decode(word)

	ok, err := engine.SpelledRight(cps)
	if err != nil {
		return "", fmt.Errorf("checking %s: %w", word, err)
	}

	if ok {
		return fmt.Sprintf("%s is ok", word), nil
	}

	upper := uniprops.ToUpper(cps)

	ok, err = engine.SpelledRight(upper)
	if err != nil {
		return "", fmt.Errorf("checking %s: %w", word, err)
	}

	if ok {
		return fmt.Sprintf("%s is ok once converted to upper case", word), nil
	}

	decomposed := uniprops.UnPrecompose(upper)

	ok, err = engine.SpelledRight(decomposed)
	if err != nil {
		return "", fmt.Errorf("checking %s: %w", word, err)
	}

	if ok {
		return fmt.Sprintf("%s is ok once precomposed letters expanded", word), nil
	}

	splitLength := engine.SpelledRightMultiple(append([]spell.CodePoint(nil), decomposed...))
	if splitLength != 0 {
		return fmt.Sprintf("%s is ok as two words with %d, %d chars", word, splitLength, len(decomposed)-splitLength), nil
	}

	suggestions, err := engine.ShowAlternatives(decomposed, maxAlternatives)
	if err != nil {
		return "", fmt.Errorf("finding alternatives for %s: %w", word, err)
	}

	result := fmt.Sprintf("%s ->", word)
	for _, s := range suggestions {
		result += " " + s.Word
	}

	if err := engine.AcceptWord(word); err != nil {
		return "", fmt.Errorf("accepting %s to avoid repeat complaints: %w", word, err)
	}

	return result, nil
}
