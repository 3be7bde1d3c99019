package cli

import (
	"fmt"
	"io"
)

const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

// Handler runs a command with its remaining arguments.
type Handler func(args []string, stdin io.Reader, stdout, stderr io.Writer) int

type Command struct {
	Name    string
	Summary string
	Usage   []string
	Run     Handler
}

// Run dispatches args to a command and returns the process exit code.
func Run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		printUsage(stdout)
		return ExitUsage
	}
	if isHelpArg(args[0]) {
		printUsage(stdout)
		return ExitOK
	}

	cmd := findCommand(args[0])
	if cmd == nil {
		fmt.Fprintf(stderr, "Unknown command: %s\n\n", args[0])
		printUsage(stderr)
		return ExitUsage
	}

	return cmd.Run(args[1:], stdin, stdout, stderr)
}

func findCommand(name string) *Command {
	for _, cmd := range commands {
		if cmd.Name == name {
			return cmd
		}
	}
	return nil
}

func isHelpArg(arg string) bool {
	switch arg {
	case "-h", "--help", "help":
		return true
	default:
		return false
	}
}

func wantsHelp(args []string) bool {
	for _, arg := range args {
		switch arg {
		case "-h", "--help":
			return true
		}
	}
	return false
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  quizmark <command> [options]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	for _, cmd := range commands {
		fmt.Fprintf(w, "  %-8s %s\n", cmd.Name, cmd.Summary)
	}
	fmt.Fprintln(w, "\nUse \"quizmark <command> --help\" for more information.")
}

func printCommandUsage(cmd *Command, w io.Writer) {
	fmt.Fprintln(w, "Usage:")
	for _, line := range cmd.Usage {
		fmt.Fprintf(w, "  %s\n", line)
	}
	if cmd.Summary != "" {
		fmt.Fprintf(w, "\n%s\n", cmd.Summary)
	}
}

func command(name, summary string, usage []string, runner func(cmd *Command) Handler) *Command {
	cmd := &Command{
		Name:    name,
		Summary: summary,
		Usage:   usage,
	}
	cmd.Run = runner(cmd)
	return cmd
}

var commands = []*Command{
	command("take", "Take a quiz interactively", []string{
		"quizmark take [--config <path>] [--ui auto|live|plain] [--no-color] [--seed <n>] [--log <path>] [--out <dir>] <quiz-file>",
	}, runTake),
	command("check", "Parse quiz files and report errors", []string{
		"quizmark check <quiz-file>...",
	}, runCheck),
	command("show", "Print a parsed quiz", []string{
		"quizmark show [--format json|yaml] <quiz-file>",
	}, runShow),
	command("init", "Scaffold .quizmark/config.yml", []string{
		"quizmark init [--config <path>]",
	}, runInit),
	command("config", "Validate and print tool settings", []string{
		"quizmark config [--config <path>]",
	}, runConfig),
}
