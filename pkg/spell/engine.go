package spell

import (
	"fmt"
	"os"

	"github.com/textgrain/spell/internal/goodwords"
	"github.com/textgrain/spell/internal/reducedindex"
	"github.com/textgrain/spell/internal/transcribe"
)

// maxAlternatives is the default suggestion bound applied when a
// caller passes 0 to ShowAlternatives.
const maxAlternatives = 4

// Engine is a loaded dictionary ready to answer spelling queries. The
// zero value is not usable; construct one with New.
//
// An Engine owns its dictionary file handles, its GoodWordSet and
// ReducedIndex tables, its transcriber, and a transient suggestion
// buffer exclusively; no method is safe to call concurrently with
// another, including from other goroutines.
type Engine struct {
	flags Flags

	good *goodwords.Set
	idx  *reducedindex.Index
	tr   *transcribe.Transcriber

	files       [numDictFiles + 1]*dictFile // files[0] unused
	highestFile uint8

	suggestBuf []suggestionSlot
}

type suggestionSlot struct {
	locator  Locator
	goodness int
}

// New constructs an Engine from a primary dictionary file and an
// optional transcription file. transcriptionPath may be empty, in
// which case the transcriber is empty and reduce() is a pass-through
// beyond decomposition and combining-mark removal.
//
// The primary dictionary file's byte length determines the size of
// the GoodWordSet and ReducedIndex tables, per the sizing rule in the
// data model: both are sized to the smallest power of two at least as
// large as that byte length.
func New(primaryPath, transcriptionPath string, flags Flags) (*Engine, error) {
	info, err := os.Stat(primaryPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNoSuchFile, primaryPath)
	}

	size := goodwords.Size(uint32(info.Size())) //nolint:gosec // dictionary files are not multi-GB

	var tr *transcribe.Transcriber

	if transcriptionPath != "" {
		data, readErr := os.ReadFile(transcriptionPath) //nolint:gosec // path is caller-controlled, like the original
		if readErr != nil {
			return nil, fmt.Errorf("%w: %s", ErrNoSuchFile, transcriptionPath)
		}

		rules := transcribe.ParseRules(data, func(format string, args ...any) {
			fmt.Fprintf(os.Stderr, "spell: "+format+"\n", args...) //nolint:forbidigo // warning matches original's fprintf(stderr,...)
		})
		tr = transcribe.Build(rules, func(format string, args ...any) {
			fmt.Fprintf(os.Stderr, "spell: "+format+"\n", args...) //nolint:forbidigo // warning matches original's fprintf(stdout,...)
		})
	} else {
		tr = transcribe.Build(nil, nil)
	}

	e := &Engine{
		flags: flags,
		good:  goodwords.New(size),
		idx:   reducedindex.New(size),
		tr:    tr,
	}

	if err := e.Assimilate(primaryPath); err != nil {
		return nil, err
	}

	return e, nil
}

// Close releases every open dictionary file handle. The scratch file
// created lazily by AcceptWord was already unlinked at creation, so
// closing it reclaims its storage.
func (e *Engine) Close() error {
	var firstErr error

	for i := 1; i <= numDictFiles; i++ {
		df := e.files[i]
		if df == nil {
			continue
		}

		if err := df.file.Close(); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("closing %s: %w", df.path, err)
		}

		e.files[i] = nil
	}

	return firstErr
}

// Flags returns the flags the Engine was constructed with.
func (e *Engine) Flags() Flags {
	return e.flags
}
