// Package transcribe implements the byte-trie finite-state automaton
// that rewrites "sounds-like" substitutions (e.g. "ph" -> "f") in a
// code-point sequence, using longest-match, leftmost-first semantics.
package transcribe

import (
	"github.com/textgrain/spell/internal/codec"
)

// Rule is a single left-to-right substitution: every leftmost, longest
// occurrence of Left is replaced by Right.
type Rule struct {
	Left  []codec.CodePoint
	Right []codec.CodePoint
}

// node is one state of the trie. It has up to 256 children, keyed by
// the next raw byte of a rule's left side, plus an optional
// replacement payload recorded when a rule terminates here.
type node struct {
	children    [256]*node
	replacement []codec.CodePoint
	hasRule     bool
}

// Transcriber is a compiled set of rules. The zero value is an empty
// transcriber whose Apply is the identity function.
type Transcriber struct {
	root node
}

// Build compiles rules into a Transcriber. Rules are added in order;
// if two rules share the same left side, the first one wins and the
// conflict is reported through warn (nil warn silently keeps the
// first rule).
func Build(rules []Rule, warn func(format string, args ...any)) *Transcriber {
	t := &Transcriber{}

	for _, r := range rules {
		t.addRule(r, warn)
	}

	return t
}

func (t *Transcriber) addRule(r Rule, warn func(format string, args ...any)) {
	current := &t.root

	for _, b := range codec.Encode(r.Left) {
		child := current.children[b]
		if child == nil {
			child = &node{}
			current.children[b] = child
		}

		current = child
	}

	if current.hasRule {
		if warn != nil {
			warn("conflict: rule for %q already exists, ignoring %q -> %q",
				string(codec.Encode(r.Left)), string(codec.Encode(r.Left)), string(codec.Encode(r.Right)))
		}

		return
	}

	current.replacement = r.Right
	current.hasRule = true
}

// Empty reports whether the transcriber has no compiled rules, in
// which case Apply is the identity function.
func (t *Transcriber) Empty() bool {
	for _, c := range t.root.children {
		if c != nil {
			return false
		}
	}

	return !t.root.hasRule
}

// Apply rewrites every leftmost, longest match of a compiled rule in
// input and returns the resulting code-point sequence. Bytes that
// match no rule are copied through unchanged.
//
// The automaton walks the underlying UTF-8 byte representation of
// input (per the edge rule in the component's contract): a forward
// cursor descends the trie as far as it can, and a retreat cursor
// marks the start of the run not yet emitted. On a dead end, if the
// node reached carries a rule, its replacement is emitted (re-encoded
// to bytes), the retreat cursor jumps to the forward cursor and the
// walk restarts at the root; otherwise the retreat cursor's single
// byte is copied through verbatim, both cursors move to the byte after
// it, and a shorter rule passed on the way down is not applied. dest
// accumulates raw bytes rather than code points
// throughout - a passthrough run is only ever a contiguous slice of
// the original, valid UTF-8, so decoding it one byte at a time would
// split multi-byte characters; the whole byte stream is decoded back
// to code points once, at the end.
func (t *Transcriber) Apply(input []codec.CodePoint) []codec.CodePoint {
	if t.Empty() {
		return append([]codec.CodePoint(nil), input...)
	}

	source := codec.Encode(input)
	dest := make([]byte, 0, len(source))

	current := &t.root
	fore := 0
	aft := 0

	for fore < len(source) {
		idx := source[fore]
		if child := current.children[idx]; child != nil {
			current = child
			fore++

			continue
		}

		if current.hasRule {
			dest = append(dest, codec.Encode(current.replacement)...)
			aft = fore
			current = &t.root

			continue
		}

		dest = append(dest, source[aft])
		aft++
		fore = aft
		current = &t.root
	}

	if current.hasRule {
		dest = append(dest, codec.Encode(current.replacement)...)
	} else {
		dest = append(dest, source[aft:fore]...)
	}

	return codec.Decode(dest)
}

// ParseRules parses a transcription file's contents: one rule per
// line, LF-terminated, UTF-8. Lines beginning with '#' and empty
// lines are skipped. A rule line has a left side, a single ASCII
// space (the last space on the line is the separator), then a right
// side; either side may contain non-ASCII code points. Lines without
// a space are skipped with a warning.
func ParseRules(data []byte, warn func(format string, args ...any)) []Rule {
	var rules []Rule

	for _, line := range splitLines(data) {
		if len(line) == 0 || line[0] == '#' {
			continue
		}

		divide := lastIndexByte(line, ' ')
		if divide < 0 {
			if warn != nil {
				warn("bad transcription line, no separator: %q", string(line))
			}

			continue
		}

		rules = append(rules, Rule{
			Left:  codec.Decode(line[:divide]),
			Right: codec.Decode(line[divide+1:]),
		})
	}

	return rules
}

func splitLines(data []byte) [][]byte {
	var lines [][]byte

	start := 0

	for i, b := range data {
		if b == '\n' {
			lines = append(lines, data[start:i])
			start = i + 1
		}
	}

	if start < len(data) {
		lines = append(lines, data[start:])
	}

	return lines
}

func lastIndexByte(b []byte, c byte) int {
	for i := len(b) - 1; i >= 0; i-- {
		if b[i] == c {
			return i
		}
	}

	return -1
}
