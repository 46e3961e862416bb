package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/textgrain/spell/internal/config"
	"github.com/textgrain/spell/internal/pdict"
	"github.com/textgrain/spell/pkg/spell"

	flag "github.com/spf13/pflag"
	"github.com/peterh/liner"
)

// ReplCmd returns the interactive "repl" command, modeled directly on
// cmd/sloty's REPL: a peterh/liner prompt with history and
// tab-completion of the subcommand names.
func ReplCmd(profile config.Profile, stdin io.Reader) *Command {
	return &Command{
		Flags: flag.NewFlagSet("repl", flag.ContinueOnError),
		Usage: "repl",
		Short: "Start an interactive spell-checking session",
		Exec: func(_ context.Context, o *IO, _ []string) error {
			engine, err := loadEngine(profile)
			if err != nil {
				return err
			}
			defer engine.Close()

			repl := &replState{engine: engine, profile: profile, o: o}

			return repl.run()
		},
	}
}

type replState struct {
	engine  *spell.Engine
	profile config.Profile
	o       *IO
	liner   *liner.State
}

func historyFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	return filepath.Join(home, ".spellcheck_history")
}

func (r *replState) run() error {
	r.liner = liner.NewLiner()
	defer r.liner.Close()

	r.liner.SetCtrlCAborts(true)
	r.liner.SetCompleter(r.completer)

	if f, err := os.Open(historyFile()); err == nil {
		_, _ = r.liner.ReadHistory(f)
		f.Close()
	}

	r.o.Println("spellcheck repl - type 'help' for commands")

	for {
		line, err := r.liner.Prompt("spellcheck> ")
		if err != nil {
			if err == liner.ErrPromptAborted || err == io.EOF {
				r.o.Println("bye")

				break
			}

			return fmt.Errorf("reading input: %w", err)
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		r.liner.AppendHistory(line)

		parts := strings.Fields(line)
		cmd := strings.ToLower(parts[0])
		args := parts[1:]

		switch cmd {
		case "exit", "quit", "q":
			r.saveHistory()

			return nil
		case "help", "?":
			r.printHelp()
		case "check":
			r.cmdCheck(args)
		case "accept":
			r.cmdAccept(args)
		case "ignore":
			r.cmdIgnore(args)
		case "suggest":
			r.cmdSuggest(args)
		default:
			r.o.Println("unknown command:", cmd, "(type 'help' for commands)")
		}
	}

	r.saveHistory()

	return nil
}

func (r *replState) saveHistory() {
	path := historyFile()
	if path == "" {
		return
	}

	if f, err := os.Create(path); err == nil { //nolint:gosec // fixed, user-owned history path
		_, _ = r.liner.WriteHistory(f)
		f.Close()
	}
}

func (r *replState) completer(line string) []string {
	commands := []string{"check", "accept", "ignore", "suggest", "help", "exit", "quit", "q"}

	var completions []string

	lower := strings.ToLower(line)

	for _, cmd := range commands {
		if strings.HasPrefix(cmd, lower) {
			completions = append(completions, cmd)
		}
	}

	return completions
}

func (r *replState) printHelp() {
	r.o.Println("Commands:")
	r.o.Println("  check <word>    Classify a word, trying fallbacks before suggesting alternatives")
	r.o.Println("  accept <word>   Record a word as correctly spelled")
	r.o.Println("  ignore <word>   Silence complaints about a word without suggesting it")
	r.o.Println("  suggest <word>  Show ranked spelling alternatives")
	r.o.Println("  exit            Leave the session")
}

func (r *replState) cmdCheck(args []string) {
	if len(args) != 1 {
		r.o.Println("usage: check <word>")

		return
	}

	result, err := classifyWord(r.engine, []byte(args[0]))
	if err != nil {
		r.o.Println("error:", err)

		return
	}

	r.o.Println(result)
}

func (r *replState) cmdAccept(args []string) {
	if len(args) != 1 {
		r.o.Println("usage: accept <word>")

		return
	}

	if err := r.engine.AcceptWord([]byte(args[0])); err != nil {
		r.o.Println("error:", err)

		return
	}

	if r.profile.Personal != "" {
		if err := pdict.AppendWord(r.profile.Personal, args[0]); err != nil {
			r.o.Println("error:", err)

			return
		}
	}

	r.o.Println("accepted:", args[0])
}

func (r *replState) cmdIgnore(args []string) {
	if len(args) != 1 {
		r.o.Println("usage: ignore <word>")

		return
	}

	r.engine.IgnoreWordUTF8([]byte(args[0]))
	r.o.Println("ignored:", args[0])
}

func (r *replState) cmdSuggest(args []string) {
	if len(args) != 1 {
		r.o.Println("usage: suggest <word>")

		return
	}

	if err := suggestWithEngine(r.o, r.engine, r.profile, args[0], 0); err != nil {
		r.o.Println("error:", err)
	}
}
