package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/textgrain/spell/internal/config"
	"github.com/textgrain/spell/pkg/spell"

	flag "github.com/spf13/pflag"
)

var errSampleFileRequired = errors.New("check requires exactly one sample file argument")

// CheckCmd returns the batch "check" command: it classifies every
// LF-terminated line of a sample file, mirroring driver.cpp's
// treat()-in-a-loop.
func CheckCmd(profile config.Profile) *Command {
	return &Command{
		Flags: flag.NewFlagSet("check", flag.ContinueOnError),
		Usage: "check <samplefile>",
		Short: "Classify each word in a sample file",
		Long:  "Read samplefile one word per line and print whether each is spelled right, right after a fallback (upper-case, precomposed expansion, two-word split), or wrong with suggestions.",
		Exec: func(_ context.Context, o *IO, args []string) error {
			if len(args) != 1 {
				return errSampleFileRequired
			}

			engine, err := loadEngine(profile)
			if err != nil {
				return err
			}
			defer engine.Close()

			return execCheck(o, engine, args[0])
		},
	}
}

func execCheck(o *IO, engine *spell.Engine, path string) error {
	file, err := os.Open(path) //nolint:gosec // path is caller-controlled
	if err != nil {
		return fmt.Errorf("opening sample file: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word == "" {
			continue
		}

		result, err := classifyWord(engine, []byte(word))
		if err != nil {
			return err
		}

		o.Println(result)
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading sample file: %w", err)
	}

	return nil
}
