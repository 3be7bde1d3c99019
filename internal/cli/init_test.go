package cli

import (
	"path/filepath"
	"strings"
	"testing"

	"quizmark/internal/config"
)

// TestInitCommandCreatesConfig verifies prompted answers land in the config.
func TestInitCommandCreatesConfig(t *testing.T) {
	dir := t.TempDir()
	target := config.ConfigPath(dir)

	code, out, errOut := run([]string{"init", "--config", target}, "plain\nn\ny\n\n")
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d (%s)", ExitOK, code, errOut)
	}
	if !strings.Contains(out, "Wrote "+target) {
		t.Fatalf("expected write notice, got %q", out)
	}
	cfg, err := config.Load(target)
	if err != nil {
		t.Fatalf("load scaffolded config: %v", err)
	}
	if cfg.UI.Mode != config.UIModePlain {
		t.Fatalf("expected plain mode, got %q", cfg.UI.Mode)
	}
	if cfg.Session.Feedback() {
		t.Fatalf("expected feedback disabled")
	}
	if cfg.Results.OutputDir != filepath.Join(dir, ".quizmark", "results") {
		t.Fatalf("unexpected output dir %q", cfg.Results.OutputDir)
	}
}

// TestInitCommandDefaults verifies empty answers accept the defaults.
func TestInitCommandDefaults(t *testing.T) {
	target := config.ConfigPath(t.TempDir())
	code, _, errOut := run([]string{"init", "--config", target}, "\n\nn\n")
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d (%s)", ExitOK, code, errOut)
	}
	cfg, err := config.Load(target)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.UI.Mode != config.UIModeAuto || !cfg.Session.Feedback() || cfg.Results.OutputDir != "" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}

// TestInitCommandRefusesOverwrite verifies existing configs are kept.
func TestInitCommandRefusesOverwrite(t *testing.T) {
	dir := t.TempDir()
	target := writePlainConfig(t, dir)

	code, out, errOut := run([]string{"init", "--config", target}, "")
	if code != ExitError {
		t.Fatalf("expected exit %d, got %d", ExitError, code)
	}
	if out != "" {
		t.Fatalf("expected no stdout output, got %q", out)
	}
	if !strings.Contains(errOut, "already exists") {
		t.Fatalf("expected overwrite warning, got %q", errOut)
	}
}

// TestInitCommandRejectsBadChoice verifies invalid answers at end of input fail.
func TestInitCommandRejectsBadChoice(t *testing.T) {
	target := config.ConfigPath(t.TempDir())
	code, _, errOut := run([]string{"init", "--config", target}, "fancy")
	if code != ExitError {
		t.Fatalf("expected exit %d, got %d", ExitError, code)
	}
	if !strings.Contains(errOut, "invalid response") {
		t.Fatalf("unexpected stderr %q", errOut)
	}
}

// TestConfigCommandPrintsSettings verifies the effective settings are shown.
func TestConfigCommandPrintsSettings(t *testing.T) {
	path := writePlainConfig(t, t.TempDir())
	code, out, errOut := run([]string{"config", "--config", path}, "")
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d (%s)", ExitOK, code, errOut)
	}
	for _, want := range []string{"# " + path, "mode: plain", "no_color: true", "level: info"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
}

// TestConfigCommandValidationFailure verifies invalid configs fail.
func TestConfigCommandValidationFailure(t *testing.T) {
	path := writeFile(t, t.TempDir(), "config.yml", "version: 3\n")
	code, _, errOut := run([]string{"config", "--config", path}, "")
	if code != ExitError {
		t.Fatalf("expected exit %d, got %d", ExitError, code)
	}
	if !strings.Contains(errOut, "unsupported version 3") {
		t.Fatalf("unexpected stderr %q", errOut)
	}
}
