package pdict_test

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/textgrain/spell/internal/pdict"
)

func Test_AppendWord_Creates_File_When_Missing(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "personal.txt")

	if err := pdict.AppendWord(path, "gruntled"); err != nil {
		t.Fatalf("AppendWord() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading personal dictionary: %v", err)
	}

	if string(data) != "gruntled\n" {
		t.Errorf("file content = %q, want %q", data, "gruntled\n")
	}
}

func Test_AppendWord_Appends_When_FileAlreadyExists(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "personal.txt")

	if err := pdict.AppendWord(path, "alpha"); err != nil {
		t.Fatalf("first AppendWord() error = %v", err)
	}

	if err := pdict.AppendWord(path, "beta"); err != nil {
		t.Fatalf("second AppendWord() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading personal dictionary: %v", err)
	}

	if string(data) != "alpha\nbeta\n" {
		t.Errorf("file content = %q, want %q", data, "alpha\nbeta\n")
	}
}

func Test_AppendWord_Serializes_When_CalledConcurrently(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "personal.txt")

	const n = 20

	var wg sync.WaitGroup

	for i := 0; i < n; i++ {
		wg.Add(1)

		go func() {
			defer wg.Done()

			if err := pdict.AppendWord(path, "word"); err != nil {
				t.Errorf("AppendWord() error = %v", err)
			}
		}()
	}

	wg.Wait()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading personal dictionary: %v", err)
	}

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) != n {
		t.Errorf("got %d lines, want %d (concurrent appends must not corrupt the file)", len(lines), n)
	}
}

func Test_Compact_Dedupes_And_Sorts(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "personal.txt")

	for _, w := range []string{"zebra", "apple", "zebra", "mango"} {
		if err := pdict.AppendWord(path, w); err != nil {
			t.Fatalf("AppendWord(%q) error = %v", w, err)
		}
	}

	if err := pdict.Compact(path); err != nil {
		t.Fatalf("Compact() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading personal dictionary: %v", err)
	}

	want := "apple\nmango\nzebra\n"
	if string(data) != want {
		t.Errorf("file content = %q, want %q", data, want)
	}
}

func Test_Compact_Returns_NoError_When_FileDoesNotExist(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "missing.txt")

	if err := pdict.Compact(path); err != nil {
		t.Fatalf("Compact() error = %v", err)
	}
}
