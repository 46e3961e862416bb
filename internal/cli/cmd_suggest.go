package cli

import (
	"context"
	"errors"

	"github.com/textgrain/spell/internal/codec"
	"github.com/textgrain/spell/internal/config"
	"github.com/textgrain/spell/pkg/spell"

	flag "github.com/spf13/pflag"
)

var errProbeRequired = errors.New("exactly one probe word argument is required")

// SuggestCmd returns the "suggest" command: it prints ranked spelling
// alternatives for a single misspelled word, without the upper-case /
// precomposed / compound fallbacks that check applies first.
func SuggestCmd(profile config.Profile) *Command {
	flags := flag.NewFlagSet("suggest", flag.ContinueOnError)
	max := flags.IntP("max", "n", 0, "Maximum number of suggestions (0 uses the configured default)")

	return &Command{
		Flags: flags,
		Usage: "suggest <word> [flags]",
		Short: "Show ranked spelling alternatives for a word",
		Exec: func(_ context.Context, o *IO, args []string) error {
			if len(args) != 1 {
				return errProbeRequired
			}

			return execSuggest(o, profile, args[0], *max)
		},
	}
}

func execSuggest(o *IO, profile config.Profile, word string, max int) error {
	engine, err := loadEngine(profile)
	if err != nil {
		return err
	}
	defer engine.Close()

	return suggestWithEngine(o, engine, profile, word, max)
}

func suggestWithEngine(o *IO, engine *spell.Engine, profile config.Profile, word string, max int) error {
	cps := codec.Decode([]byte(word))

	ok, err := engine.SpelledRight(cps)
	if err != nil {
		return err
	}

	if ok {
		o.Println(word, "is ok")

		return nil
	}

	if max == 0 {
		max = profile.MaxAlternatives
	}

	suggestions, err := engine.ShowAlternatives(cps, max)
	if err != nil {
		return err
	}

	if len(suggestions) == 0 {
		o.Println(word, "-> (no suggestions)")

		return nil
	}

	result := word + " ->"
	for _, s := range suggestions {
		result += " " + s.Word
	}

	o.Println(result)

	return nil
}
