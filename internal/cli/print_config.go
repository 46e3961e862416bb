package cli

import (
	"context"
	"fmt"

	"github.com/textgrain/spell/internal/config"

	flag "github.com/spf13/pflag"
)

// PrintConfigCmd returns the "config" command.
func PrintConfigCmd(profile config.Profile, sources config.Sources) *Command {
	return &Command{
		Flags: flag.NewFlagSet("config", flag.ContinueOnError),
		Usage: "config",
		Short: "Show the effective configuration",
		Long:  "Display the effective configuration as JSON and which files it was loaded from.",
		Exec: func(_ context.Context, o *IO, _ []string) error {
			return execPrintConfig(o, profile, sources)
		},
	}
}

func execPrintConfig(o *IO, profile config.Profile, sources config.Sources) error {
	formatted, err := config.Format(profile)
	if err != nil {
		return err
	}

	o.Println(formatted)
	o.Println()
	o.Println("# sources")

	if sources.Global == "" && sources.Project == "" {
		o.Println("(defaults only)")

		return nil
	}

	if sources.Global != "" {
		o.Println(fmt.Sprintf("global_config=%s", sources.Global))
	}

	if sources.Project != "" {
		o.Println(fmt.Sprintf("project_config=%s", sources.Project))
	}

	return nil
}
