package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/textgrain/spell/internal/config"

	flag "github.com/spf13/pflag"
)

// configExitCode is the exit code for a config-loading failure,
// distinct from the generic command-failure exit code.
const configExitCode = 2

// Run is the main entry point. Returns exit code.
// sigCh can be nil if signal handling is not needed (e.g., in tests).
func Run(stdin io.Reader, out io.Writer, errOut io.Writer, args []string, env map[string]string, sigCh <-chan os.Signal) int {
	// Create fresh global flags for this invocation
	globalFlags := flag.NewFlagSet("spellcheck", flag.ContinueOnError)
	globalFlags.SetInterspersed(false)
	globalFlags.Usage = func() {}
	globalFlags.SetOutput(&strings.Builder{})
	flagHelp := globalFlags.BoolP("help", "h", false, "Show help")
	flagCwd := globalFlags.StringP("cwd", "C", "", "Run as if started in `dir`")
	flagConfig := globalFlags.StringP("config", "c", "", "Use specified config `file`")
	flagPrimary := globalFlags.String("dict", "", "Override primary dictionary `file`")
	flagTranscribe := globalFlags.String("transcribe", "", "Override transcription rules `file`")
	flagPersonal := globalFlags.String("personal", "", "Override personal dictionary `file`")
	flagMaxAlt := globalFlags.Int("max-alternatives", 0, "Override maximum suggestions returned")
	flagExpand := globalFlags.Bool("expand-precomposed", false, "Expand precomposed characters in the dictionary")

	// Validate global flags.
	if err := globalFlags.Parse(args[1:]); err != nil {
		fprintln(errOut, "error:", err)
		printGlobalOptions(errOut)

		return 1
	}

	workDir := *flagCwd
	if workDir == "" {
		if wd, err := os.Getwd(); err == nil {
			workDir = wd
		}
	}

	overrides := config.Profile{
		Primary:           *flagPrimary,
		Transcription:     *flagTranscribe,
		Personal:          *flagPersonal,
		ExpandPrecomposed: *flagExpand,
		MaxAlternatives:   *flagMaxAlt,
	}

	overrideSet := func(field string) bool {
		switch field {
		case "primary":
			return globalFlags.Changed("dict")
		case "transcription":
			return globalFlags.Changed("transcribe")
		case "personal":
			return globalFlags.Changed("personal")
		case "expand_precomposed":
			return globalFlags.Changed("expand-precomposed")
		case "max_alternatives":
			return globalFlags.Changed("max-alternatives")
		default:
			return false
		}
	}

	// Ensure that configuration can be loaded and is valid.
	profile, sources, cfgErr := config.LoadConfig(workDir, *flagConfig, overrides, overrideSet, environSlice(env))
	if cfgErr != nil {
		fprintln(errOut, "error:", cfgErr)
		printGlobalOptions(errOut)

		return configExitCode
	}

	profile = resolveProfilePaths(profile, workDir)

	// Create all commands so that from now on, we can show
	// all of them inside error output/help.
	commands := allCommands(profile, sources, stdin)

	commandMap := make(map[string]*Command, len(commands))
	for _, cmd := range commands {
		commandMap[cmd.Name()] = cmd
	}

	commandAndArgs := globalFlags.Args()

	// Show help: explicit --help or bare `spellcheck` with no args
	if *flagHelp || (len(commandAndArgs) == 0 && globalFlags.NFlag() == 0) {
		printUsage(out, commands)

		return 0
	}

	// Flags provided but no command: `spellcheck --cwd /tmp`
	if len(commandAndArgs) == 0 {
		fprintln(errOut, "error: no command provided")
		printUsage(errOut, commands)

		return 1
	}

	// Dispatch to command
	cmdName := commandAndArgs[0]

	cmd, ok := commandMap[cmdName]
	if !ok {
		fprintln(errOut, "error: unknown command:", cmdName)
		printUsage(errOut, commands)

		return 1
	}

	cmdIO := NewIO(out, errOut)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Run command in goroutine so we can handle signals
	done := make(chan int, 1)

	go func() {
		done <- cmd.Run(ctx, cmdIO, commandAndArgs[1:])
	}()

	// Wait for completion or first signal (nil channel never fires)
	select {
	case exitCode := <-done:
		if exitCode != 0 {
			return exitCode
		}

		return cmdIO.Finish()
	case <-sigCh:
		fprintln(errOut, "shutting down with 5s timeout...")
		cancel()
	}

	// Wait for completion, timeout, or second signal
	select {
	case <-done:
		fprintln(errOut, "graceful shutdown ok (130)")

		return 130
	case <-time.After(5 * time.Second):
		fprintln(errOut, "graceful shutdown timed out, forced exit (130)")

		return 130
	case <-sigCh:
		fprintln(errOut, "graceful shutdown interrupted, forced exit (130)")

		return 130
	}
}

// allCommands returns all commands in display order.
// Dependencies are captured via closures in each command constructor.
func allCommands(profile config.Profile, sources config.Sources, stdin io.Reader) []*Command {
	return []*Command{
		CheckCmd(profile),
		ReplCmd(profile, stdin),
		AcceptCmd(profile),
		IgnoreCmd(profile),
		SuggestCmd(profile),
		CompactCmd(profile),
		PrintConfigCmd(profile, sources),
	}
}

func environSlice(env map[string]string) []string {
	out := make([]string, 0, len(env))
	for k, v := range env {
		out = append(out, k+"="+v)
	}

	return out
}

func fprintln(w io.Writer, a ...any) {
	_, _ = fmt.Fprintln(w, a...)
}

const globalOptionsHelp = `  -h, --help                    Show help
  -C, --cwd <dir>               Run as if started in <dir>
  -c, --config <file>           Use specified config file
  --dict <file>                 Override primary dictionary file
  --transcribe <file>           Override transcription rules file
  --personal <file>             Override personal dictionary file
  --max-alternatives <n>        Override maximum suggestions returned
  --expand-precomposed          Expand precomposed characters in the dictionary`

func printGlobalOptions(w io.Writer) {
	fprintln(w, "Usage: spellcheck [flags] <command> [args]")
	fprintln(w)
	fprintln(w, "Global flags:")
	fprintln(w, globalOptionsHelp)
	fprintln(w)
	fprintln(w, "Run 'spellcheck --help' for a list of commands.")
}

func printUsage(w io.Writer, commands []*Command) {
	fprintln(w, "spellcheck - Unicode-aware spelling checker")
	fprintln(w)
	fprintln(w, "Usage: spellcheck [flags] <command> [args]")
	fprintln(w)
	fprintln(w, "Flags:")
	fprintln(w, globalOptionsHelp)
	fprintln(w)
	fprintln(w, "Commands:")

	for _, cmd := range commands {
		fprintln(w, cmd.HelpLine())
	}
}
