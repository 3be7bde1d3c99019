package cli

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"quizmark/internal/config"
)

// defaultResultsDir is offered by init for result records.
const defaultResultsDir = ".quizmark/results"

// runInit builds the handler for the init command.
func runInit(cmd *Command) Handler {
	return func(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		configPath := fs.String("config", "", "Path to config file (default: ./.quizmark/config.yml)")
		if code, ok := parseFlags(cmd, fs, args, stdout, stderr); !ok {
			return code
		}
		if !requireArgs(cmd, fs, 0, 0, stderr) {
			return ExitUsage
		}

		target := strings.TrimSpace(*configPath)
		if target == "" {
			wd, err := os.Getwd()
			if err != nil {
				fmt.Fprintf(stderr, "Init failed: %v\n", err)
				return ExitError
			}
			target = config.ConfigPath(wd)
		}
		target, err := filepath.Abs(target)
		if err != nil {
			fmt.Fprintf(stderr, "Init failed: %v\n", err)
			return ExitError
		}
		if _, err := os.Stat(target); err == nil {
			fmt.Fprintf(stderr, "Init failed: config file already exists at %q\n", target)
			return ExitError
		}

		reader := bufio.NewReader(stdin)
		cfg := config.Defaults()
		mode, err := promptChoice(reader, stdout, "UI mode", []string{config.UIModeAuto, config.UIModeLive, config.UIModePlain}, config.UIModeAuto)
		if err != nil {
			fmt.Fprintf(stderr, "Init failed: %v\n", err)
			return ExitError
		}
		cfg.UI.Mode = mode

		feedback, err := promptYesNo(reader, stdout, "Show feedback after each question?", true)
		if err != nil {
			fmt.Fprintf(stderr, "Init failed: %v\n", err)
			return ExitError
		}
		cfg.Session.ShowFeedback = &feedback

		keep, err := promptYesNo(reader, stdout, "Save session results?", true)
		if err != nil {
			fmt.Fprintf(stderr, "Init failed: %v\n", err)
			return ExitError
		}
		if keep {
			dir, err := promptString(reader, stdout, "Results folder", defaultResultsDir)
			if err != nil {
				fmt.Fprintf(stderr, "Init failed: %v\n", err)
				return ExitError
			}
			cfg.Results.OutputDir = dir
		}

		if err := config.Scaffold(target, cfg); err != nil {
			fmt.Fprintf(stderr, "Init failed: %v\n", err)
			return ExitError
		}
		fmt.Fprintf(stdout, "Wrote %s\n", target)
		return ExitOK
	}
}
