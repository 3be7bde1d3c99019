package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"

	"quizmark/internal/config"
	"quizmark/internal/logging"
	"quizmark/internal/quiz"
	"quizmark/internal/results"
	"quizmark/internal/session"
	"quizmark/internal/ui/console"
	"quizmark/internal/ui/live"
)

// sessionPresenter shows questions and the final score.
type sessionPresenter interface {
	session.Presenter
	Summary(result session.Result)
}

// now is replaced in tests.
var now = time.Now

// runTake builds the handler for the take command.
func runTake(cmd *Command) Handler {
	return func(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		configPath := fs.String("config", "", "Path to config file (default: search for .quizmark/config.yml)")
		uiMode := fs.String("ui", "", "UI mode: auto|live|plain")
		noColor := fs.Bool("no-color", false, "Disable colored output")
		seed := fs.Uint64("seed", 0, "Shuffle seed (0 picks one at random)")
		logPath := fs.String("log", "", "Write a JSON log to this file")
		outputDir := fs.String("out", "", "Write results under this directory")
		if code, ok := parseFlags(cmd, fs, args, stdout, stderr); !ok {
			return code
		}
		if !requireArgs(cmd, fs, 1, 1, stderr) {
			return ExitUsage
		}

		cfg, _, err := config.Discover(*configPath, "")
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load config:\n%v\n", err)
			return ExitError
		}
		if *uiMode != "" {
			cfg.UI.Mode = *uiMode
		}
		if flagSet(fs, "no-color") {
			cfg.UI.NoColor = *noColor
		}
		if flagSet(fs, "seed") {
			cfg.Session.Seed = *seed
		}
		if *logPath != "" {
			cfg.Log.Path = *logPath
		}
		if *outputDir != "" {
			cfg.Results.OutputDir = *outputDir
		}

		decision, err := resolveUIMode(cfg.UI.Mode, stdout)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return ExitUsage
		}
		if decision.warning != "" {
			fmt.Fprintln(stderr, decision.warning)
		}

		logger, closeLog, err := logging.New(logging.Options{Path: cfg.Log.Path, Level: cfg.Log.Level})
		if err != nil {
			fmt.Fprintf(stderr, "Failed to open log: %v\n", err)
			return ExitError
		}
		defer func() { _ = closeLog() }()

		return takeQuiz(fs.Arg(0), cfg, decision, logger, stdin, stdout, stderr)
	}
}

// takeQuiz loads the quiz, runs a session and records the result.
func takeQuiz(path string, cfg config.Config, decision uiModeDecision, logger *zap.Logger, stdin io.Reader, stdout, stderr io.Writer) int {
	parsed, err := quiz.LoadFile(path)
	if err != nil {
		var quizErr *quiz.QuizError
		if errors.As(err, &quizErr) {
			logger.Error("quiz parse failed",
				zap.String("path", path),
				zap.Int("line", quizErr.Line()),
				zap.String("context", quizErr.Context()),
			)
		}
		fmt.Fprintln(stderr, describeLoadError(path, err))
		return ExitError
	}

	startedAt := now()
	runID, err := results.NewRunID(startedAt)
	if err != nil {
		fmt.Fprintf(stderr, "Failed to create run id: %v\n", err)
		return ExitError
	}
	logger = logger.With(zap.String("run_id", runID))
	logger.Info("quiz loaded",
		zap.String("path", path),
		zap.Int("questions", parsed.Len()),
		zap.Float64("total", parsed.TotalScore),
	)

	var (
		presenter sessionPresenter
		source    session.LineSource
	)
	if decision.useLive {
		presenter = live.NewPresenter(stdout, cfg.UI.NoColor)
		source = live.NewLineSource(stdin, stdout, cfg.UI.NoColor)
	} else {
		presenter = console.NewPresenter(stdout, cfg.UI.NoColor)
		source = console.NewReaderSource(stdin)
	}

	runner, err := session.NewRunner(source, presenter, session.Options{
		Seed:         cfg.Session.Seed,
		ShowFeedback: cfg.Session.Feedback(),
		Logger:       logger,
	})
	if err != nil {
		fmt.Fprintf(stderr, "Failed to start session: %v\n", err)
		return ExitError
	}

	result, runErr := runner.Run(context.Background(), parsed)
	presenter.Summary(result)

	code := ExitOK
	if runErr != nil {
		fmt.Fprintf(stderr, "Session ended early: %v\n", runErr)
		code = ExitError
	}

	if cfg.Results.OutputDir != "" {
		record := results.NewRecord(runID, path, startedAt, now(), result, runErr == nil)
		written, err := results.Write(cfg.Results.OutputDir, record)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to write results: %v\n", err)
			return ExitError
		}
		logger.Info("results written", zap.String("path", written))
		fmt.Fprintf(stdout, "Results: %s\n", written)
	}
	return code
}
