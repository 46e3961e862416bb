package spell

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/textgrain/spell/internal/codec"
	"github.com/textgrain/spell/internal/reduce"
	"github.com/textgrain/spell/internal/reducedindex"
	"github.com/textgrain/spell/internal/uniprops"
)

// Assimilate opens path as a dictionary file, assigns it the next
// file index, and indexes every LF-terminated UTF-8 line it contains.
// It fails if all dictionary file slots (2..numDictFiles-1 for
// supplemental files) are already in use.
func (e *Engine) Assimilate(path string) error {
	if e.highestFile >= numDictFiles-1 {
		return ErrTooManyFiles
	}

	file, err := os.Open(path) //nolint:gosec // path is caller-controlled, like the original
	if err != nil {
		return fmt.Errorf("%w: %s", ErrNoSuchFile, path)
	}

	e.highestFile++
	fileIndex := e.highestFile
	e.files[fileIndex] = &dictFile{path: path, file: file}

	reader := bufio.NewReader(file)

	var offset uint32

	for {
		line, readErr := reader.ReadBytes('\n')
		if len(line) == 0 && readErr != nil {
			break
		}

		lineLen := uint32(len(line)) //nolint:gosec // dictionary lines are short

		trimmed := line
		if len(trimmed) > 0 && trimmed[len(trimmed)-1] == '\n' {
			trimmed = trimmed[:len(trimmed)-1]
		}

		if len(trimmed) > 0 {
			if err := e.acceptGoodWord(codec.Decode(trimmed), offset, fileIndex); err != nil {
				return err
			}
		}

		offset += lineLen

		if readErr != nil {
			if readErr != io.EOF {
				return fmt.Errorf("reading %s: %w", path, readErr)
			}

			break
		}
	}

	return nil
}

// acceptGoodWord is the shared ingest path for both Assimilate and
// AcceptWord: it records cps as a known exact form, then indexes its
// reduced form (and every single-position deletion of it) for fuzzy
// lookup. It rejects cps longer than MaxWordLength with
// ErrWordTooLong rather than indexing a truncated or oversized entry.
func (e *Engine) acceptGoodWord(cps []CodePoint, offset uint32, fileIndex uint8) error {
	if len(cps) > MaxWordLength {
		return ErrWordTooLong
	}

	if e.flags.Has(ExpandPrecomposed) {
		cps = uniprops.UnPrecompose(cps)
	}

	if e.good.Contains(cps) {
		return nil // already known
	}

	e.good.Insert(cps)

	reduced := reduce.Reduce(cps, e.tr)
	locator := reducedindex.Locator{FileIndex: fileIndex, Offset: offset}

	if err := e.idx.Insert(reduced, locator); err != nil {
		return fmt.Errorf("%w: %w", ErrTableOverflow, err)
	}

	// Index every single-position deletion too, so the suggestion
	// search finds insertion/deletion variants with a single probe
	// each.
	for i := range reduced {
		omitted := make([]CodePoint, 0, len(reduced)-1)
		omitted = append(omitted, reduced[:i]...)
		omitted = append(omitted, reduced[i+1:]...)

		if err := e.idx.Insert(omitted, locator); err != nil {
			return fmt.Errorf("%w: %w", ErrTableOverflow, err)
		}
	}

	return nil
}
