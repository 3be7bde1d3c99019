package cli

import (
	"flag"
	"fmt"
	"io"

	"quizmark/internal/config"
)

// runConfig builds the handler for the config command.
func runConfig(cmd *Command) Handler {
	return func(args []string, _ io.Reader, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		configPath := fs.String("config", "", "Path to config file (default: search for .quizmark/config.yml)")
		if code, ok := parseFlags(cmd, fs, args, stdout, stderr); !ok {
			return code
		}
		if !requireArgs(cmd, fs, 0, 0, stderr) {
			return ExitUsage
		}

		cfg, path, err := config.Discover(*configPath, "")
		if err != nil {
			fmt.Fprintf(stderr, "Validation failed:\n%v\n", err)
			return ExitError
		}
		if path == "" {
			fmt.Fprintln(stdout, "# no config file found, using defaults")
		} else {
			fmt.Fprintf(stdout, "# %s\n", path)
		}
		if err := writeDocument(stdout, "yaml", cfg); err != nil {
			fmt.Fprintf(stderr, "Config failed: %v\n", err)
			return ExitError
		}
		return ExitOK
	}
}
