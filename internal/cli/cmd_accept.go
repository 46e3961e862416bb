package cli

import (
	"context"
	"errors"

	"github.com/textgrain/spell/internal/config"
	"github.com/textgrain/spell/internal/pdict"

	flag "github.com/spf13/pflag"
)

var errWordRequired = errors.New("exactly one word argument is required")

// AcceptCmd returns the "accept" command: it records word as correctly
// spelled and, if a personal dictionary is configured, persists it
// under lock so future invocations pick it up too.
func AcceptCmd(profile config.Profile) *Command {
	return &Command{
		Flags: flag.NewFlagSet("accept", flag.ContinueOnError),
		Usage: "accept <word>",
		Short: "Record a word as correctly spelled",
		Long:  "Marks word as good and, when a personal dictionary is configured, appends it there under an exclusive lock so it survives future invocations.",
		Exec: func(_ context.Context, o *IO, args []string) error {
			if len(args) != 1 {
				return errWordRequired
			}

			return execAccept(o, profile, args[0])
		},
	}
}

func execAccept(o *IO, profile config.Profile, word string) error {
	engine, err := loadEngine(profile)
	if err != nil {
		return err
	}
	defer engine.Close()

	if err := engine.AcceptWord([]byte(word)); err != nil {
		return err
	}

	if profile.Personal != "" {
		if err := pdict.AppendWord(profile.Personal, word); err != nil {
			return err
		}
	}

	o.Println("accepted:", word)

	return nil
}
