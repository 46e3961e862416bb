package spell

import (
	"fmt"
	"io"
	"os"

	"github.com/textgrain/spell/internal/codec"
	"github.com/textgrain/spell/internal/uniprops"
)

// AcceptWord records the UTF-8 encoded word as correctly spelled and
// makes it available as a suggestion for future misspellings. The
// first call lazily creates an unlinked scratch file at file index
// numDictFiles to back this and all subsequent calls; the file
// disappears from the filesystem as soon as it is unlinked, but stays
// readable through the Engine's open handle for the Engine's
// lifetime.
func (e *Engine) AcceptWord(word []byte) error {
	df := e.files[scratchFileIndex]
	if df == nil {
		file, err := os.CreateTemp("", "spell-scratch-*")
		if err != nil {
			return fmt.Errorf("%w: %w", ErrFileOpen, err)
		}

		if err := os.Remove(file.Name()); err != nil {
			_ = file.Close()

			return fmt.Errorf("%w: %w", ErrFileOpen, err)
		}

		df = &dictFile{path: file.Name(), file: file}
		e.files[scratchFileIndex] = df
	}

	offset, err := df.file.Seek(0, io.SeekEnd)
	if err != nil {
		return fmt.Errorf("seeking scratch file: %w", err)
	}

	if _, err := df.file.Write(word); err != nil {
		return fmt.Errorf("writing scratch file: %w", err)
	}

	if _, err := df.file.Write([]byte("\n")); err != nil {
		return fmt.Errorf("writing scratch file: %w", err)
	}

	return e.acceptGoodWord(codec.Decode(word), uint32(offset), scratchFileIndex) //nolint:gosec // scratch file bounded by process lifetime
}

// IgnoreWord records cps as correctly spelled but never offers it as
// a suggestion for a misspelling: it is added only to the GoodWordSet,
// not the reduced-form index.
func (e *Engine) IgnoreWord(cps []CodePoint) {
	if e.flags.Has(ExpandPrecomposed) {
		cps = uniprops.UnPrecompose(cps)
	}

	e.good.Insert(cps)
}

// IgnoreWordUTF8 decodes word and calls IgnoreWord.
func (e *Engine) IgnoreWordUTF8(word []byte) {
	e.IgnoreWord(codec.Decode(word))
}
