// Package spell implements a Unicode-aware, language-parameterized
// spell-checking engine. Given one or more dictionary files of known
// words, an optional set of pronunciation-equivalence rules
// ("transcriptions"), and a sequence of candidate words, an Engine
// classifies each candidate as correctly spelled, correctly spelled
// after normalization, correctly spelled when split into two words,
// or misspelled - producing, in the last case, a short ranked list of
// plausible corrections drawn from the dictionaries.
//
// An Engine is single-threaded and non-reentrant: callers wanting
// parallelism must construct one Engine per goroutine, each owning
// its own dictionary file handles.
package spell
