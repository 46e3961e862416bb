package cli

import (
	"context"
	"errors"

	"github.com/textgrain/spell/internal/config"
	"github.com/textgrain/spell/internal/pdict"

	flag "github.com/spf13/pflag"
)

var errNoPersonalDictionary = errors.New("no personal dictionary configured")

// CompactCmd returns the "compact" command: it dedups and sorts the
// personal dictionary file in place, matching the SaveBinaryCache
// merge-then-atomic-write pattern the personal dictionary's append
// path is also grounded on.
func CompactCmd(profile config.Profile) *Command {
	return &Command{
		Flags: flag.NewFlagSet("compact", flag.ContinueOnError),
		Usage: "compact",
		Short: "Dedup and sort the personal dictionary file",
		Long:  "Rewrites the configured personal dictionary atomically with duplicate words removed and the rest sorted; if the file does not yet exist, it is created empty.",
		Exec: func(_ context.Context, o *IO, _ []string) error {
			if profile.Personal == "" {
				return errNoPersonalDictionary
			}

			if err := pdict.Compact(profile.Personal); err != nil {
				return err
			}

			o.Println("compacted:", profile.Personal)

			return nil
		},
	}
}
