package cli

import (
	"flag"
	"fmt"
	"io"
	"strconv"

	"quizmark/internal/quiz"
)

// runCheck builds the handler for the check command.
func runCheck(cmd *Command) Handler {
	return func(args []string, _ io.Reader, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		if code, ok := parseFlags(cmd, fs, args, stdout, stderr); !ok {
			return code
		}
		if !requireArgs(cmd, fs, 1, -1, stderr) {
			return ExitUsage
		}

		code := ExitOK
		for _, path := range fs.Args() {
			parsed, err := quiz.LoadFile(path)
			if err != nil {
				fmt.Fprintln(stderr, describeLoadError(path, err))
				code = ExitError
				continue
			}
			fmt.Fprintf(stdout, "%s: OK (%d questions, total %s)\n",
				path, parsed.Len(), strconv.FormatFloat(parsed.TotalScore, 'f', -1, 64))
		}
		return code
	}
}
