package cli

import (
	"context"

	"github.com/textgrain/spell/internal/config"

	flag "github.com/spf13/pflag"
)

// IgnoreCmd returns the "ignore" command: it records word as known
// but, unlike accept, never offers it as a suggestion for a
// misspelling.
func IgnoreCmd(profile config.Profile) *Command {
	return &Command{
		Flags: flag.NewFlagSet("ignore", flag.ContinueOnError),
		Usage: "ignore <word>",
		Short: "Mark a word as known for this run without suggesting it",
		Long:  "Marks word as known for this run's GoodWordSet only; it will never appear in another word's suggestion list, unlike accept.",
		Exec: func(_ context.Context, o *IO, args []string) error {
			if len(args) != 1 {
				return errWordRequired
			}

			return execIgnore(o, profile, args[0])
		},
	}
}

func execIgnore(o *IO, profile config.Profile, word string) error {
	engine, err := loadEngine(profile)
	if err != nil {
		return err
	}
	defer engine.Close()

	engine.IgnoreWordUTF8([]byte(word))
	o.Println("ignored:", word)

	return nil
}
