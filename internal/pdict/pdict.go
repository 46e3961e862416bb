// Package pdict manages the personal dictionary file a spell-checking
// CLI appends accepted words to, guarded by a cross-process file lock
// the same way the teacher's lock.go guards ticket file writes.
package pdict

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"syscall"
	"time"

	"github.com/natefinch/atomic"
)

// LockTimeout is the timeout for acquiring the personal dictionary's
// file lock.
const LockTimeout = 5 * time.Second

var (
	ErrLockTimeout  = errors.New("personal dictionary lock timeout")
	ErrLockFileOpen = errors.New("failed to open personal dictionary lock file")
)

const filePerms = 0o600

type fileLock struct {
	path string
	file *os.File
}

func acquireLockWithTimeout(path string, timeout time.Duration) (*fileLock, error) {
	lockPath := path + ".lock"

	file, err := os.OpenFile(lockPath, os.O_CREATE|os.O_RDWR, filePerms) //nolint:gosec // path is caller-controlled
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLockFileOpen, err)
	}

	deadline := time.Now().Add(timeout)

	const retryInterval = 10 * time.Millisecond

	for {
		flockErr := syscall.Flock(int(file.Fd()), syscall.LOCK_EX|syscall.LOCK_NB)
		if flockErr == nil {
			return &fileLock{path: lockPath, file: file}, nil
		}

		if time.Now().After(deadline) {
			_ = file.Close()

			return nil, fmt.Errorf("%w: %s", ErrLockTimeout, path)
		}

		time.Sleep(retryInterval)
	}
}

func acquireLock(path string) (*fileLock, error) {
	return acquireLockWithTimeout(path, LockTimeout)
}

func (l *fileLock) release() {
	if l.file != nil {
		_ = syscall.Flock(int(l.file.Fd()), syscall.LOCK_UN)
		_ = l.file.Close()
	}
}

// AppendWord appends word as a new line to the personal dictionary at
// path under an exclusive lock, creating the file if it does not
// exist yet. The lock is always released before AppendWord returns.
func AppendWord(path, word string) error {
	lock, err := acquireLock(path)
	if err != nil {
		return fmt.Errorf("acquiring personal dictionary lock: %w", err)
	}
	defer lock.release()

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, filePerms) //nolint:gosec // path is caller-controlled
	if err != nil {
		return fmt.Errorf("opening personal dictionary: %w", err)
	}
	defer file.Close()

	if _, err := file.WriteString(word + "\n"); err != nil {
		return fmt.Errorf("writing personal dictionary: %w", err)
	}

	return nil
}

// Compact rewrites the personal dictionary at path with its words
// deduplicated and sorted, under the same lock as AppendWord, using
// an atomic rename so a reader never observes a partially-written
// file.
func Compact(path string) error {
	lock, err := acquireLock(path)
	if err != nil {
		return fmt.Errorf("acquiring personal dictionary lock: %w", err)
	}
	defer lock.release()

	words, err := readWords(path)
	if err != nil {
		return err
	}

	words = dedupSorted(words)

	var builder strings.Builder
	for _, w := range words {
		builder.WriteString(w)
		builder.WriteByte('\n')
	}

	if err := atomic.WriteFile(path, strings.NewReader(builder.String())); err != nil {
		return fmt.Errorf("writing personal dictionary: %w", err)
	}

	return nil
}

func readWords(path string) ([]string, error) {
	file, err := os.Open(path) //nolint:gosec // path is caller-controlled
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}

		return nil, fmt.Errorf("reading personal dictionary: %w", err)
	}
	defer file.Close()

	var words []string

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()
		if line != "" {
			words = append(words, line)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading personal dictionary: %w", err)
	}

	return words, nil
}

func dedupSorted(words []string) []string {
	sort.Strings(words)

	out := words[:0]

	var prev string

	first := true

	for _, w := range words {
		if !first && w == prev {
			continue
		}

		out = append(out, w)
		prev = w
		first = false
	}

	return out
}
