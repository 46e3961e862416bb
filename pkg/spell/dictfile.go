package spell

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/textgrain/spell/internal/codec"
)

// numDictFiles is the number of open dictionary file slots per
// Engine, indexed 1..numDictFiles. Slot 1 is the primary dictionary;
// 2..numDictFiles-1 are supplemental; numDictFiles is a process-scoped
// scratch file backing AcceptWord.
const numDictFiles = 7

// scratchFileIndex is the reserved slot for AcceptWord's unlinked
// scratch file.
const scratchFileIndex = numDictFiles

type dictFile struct {
	path string
	file *os.File
}

// readLineAt seeks to offset and reads one LF-terminated line,
// stripping the trailing newline.
func (d *dictFile) readLineAt(offset uint32) ([]byte, error) {
	if _, err := d.file.Seek(int64(offset), io.SeekStart); err != nil {
		return nil, fmt.Errorf("seeking %s at %d: %w", d.path, offset, err)
	}

	reader := bufio.NewReader(d.file)

	line, err := reader.ReadBytes('\n')
	if err != nil && len(line) == 0 {
		return nil, fmt.Errorf("reading %s at %d: %w", d.path, offset, err)
	}

	if len(line) > 0 && line[len(line)-1] == '\n' {
		line = line[:len(line)-1]
	}

	return line, nil
}

// wordAt reads the raw UTF-8 bytes of the word stored at loc.
func (e *Engine) wordAt(loc Locator) ([]byte, error) {
	df := e.files[loc.FileIndex]
	if df == nil {
		return nil, fmt.Errorf("%w: file index %d not open", ErrNoSuchFile, loc.FileIndex)
	}

	return df.readLineAt(loc.Offset)
}

// decodeWordAt reads the word at loc and decodes it to code points.
func (e *Engine) decodeWordAt(loc Locator) ([]CodePoint, error) {
	raw, err := e.wordAt(loc)
	if err != nil {
		return nil, err
	}

	return codec.Decode(raw), nil
}
