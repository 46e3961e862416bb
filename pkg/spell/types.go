package spell

import "github.com/textgrain/spell/internal/codec"

// CodePoint is a single Unicode scalar value, extended to the 31-bit
// range the codec's banded encoding supports.
type CodePoint = codec.CodePoint

// Word is a finite ordered sequence of code points. The engine treats
// any sequence longer than MaxWordLength as invalid input.
type Word = []CodePoint

// MaxWordLength is the longest word the suggestion buffer and
// compound splitter are sized for.
const MaxWordLength = 99

// Locator identifies a dictionary word by which file it came from and
// its byte offset within that file.
type Locator struct {
	FileIndex uint8
	Offset    uint32
}

// Suggestion is a single ranked spelling alternative.
type Suggestion struct {
	Word     string
	Goodness int
}
