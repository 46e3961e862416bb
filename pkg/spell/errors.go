package spell

import "errors"

var (
	// ErrNoSuchFile is returned when a dictionary file cannot be
	// opened.
	ErrNoSuchFile = errors.New("spell: no such file")
	// ErrOutOfMemory is returned when the internal tables cannot be
	// allocated.
	ErrOutOfMemory = errors.New("spell: out of memory")
	// ErrFileOpen is returned when the scratch file backing
	// AcceptWord cannot be created.
	ErrFileOpen = errors.New("spell: cannot open file")
	// ErrTableOverflow is returned when a probe chain or the
	// suggestion buffer exceeds its static size. Per the error
	// handling design, this is otherwise a fatal condition - callers
	// that hit it should treat the Engine as no longer usable.
	ErrTableOverflow = errors.New("spell: table too small")
	// ErrTooManyFiles is returned by Assimilate once dictionary file
	// slots 1..6 (the primary and five supplemental files) are in use;
	// slot 7 is reserved for AcceptWord's scratch file.
	ErrTooManyFiles = errors.New("spell: too many dictionary files")
	// ErrWordTooLong is returned when a word exceeds the maximum
	// supported length of 99 code points.
	ErrWordTooLong = errors.New("spell: word too long")
)
