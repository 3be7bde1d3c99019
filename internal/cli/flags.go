package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"
)

// parseFlags parses args and reports a usage error on failure. ok is false
// when the command should return code.
func parseFlags(cmd *Command, fs *flag.FlagSet, args []string, stdout, stderr io.Writer) (code int, ok bool) {
	fs.SetOutput(stderr)
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			printCommandUsage(cmd, stdout)
			return ExitOK, false
		}
		fmt.Fprintf(stderr, "invalid arguments: %v\n", err)
		printCommandUsage(cmd, stderr)
		return ExitUsage, false
	}
	return ExitOK, true
}

// requireArgs checks the positional argument count.
func requireArgs(cmd *Command, fs *flag.FlagSet, minArgs, maxArgs int, stderr io.Writer) bool {
	n := fs.NArg()
	if n < minArgs {
		fmt.Fprintln(stderr, "missing quiz file")
		printCommandUsage(cmd, stderr)
		return false
	}
	if maxArgs >= 0 && n > maxArgs {
		fmt.Fprintf(stderr, "unexpected arguments: %s\n", strings.Join(fs.Args()[maxArgs:], " "))
		printCommandUsage(cmd, stderr)
		return false
	}
	return true
}

// flagSet reports whether a flag was given explicitly.
func flagSet(fs *flag.FlagSet, name string) bool {
	found := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}
