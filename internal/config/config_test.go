package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, root, payload string) string {
	t.Helper()
	dir := filepath.Join(root, ConfigDirName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	path := filepath.Join(dir, ConfigFileName)
	if err := os.WriteFile(path, []byte(payload), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

// TestParseRejectsUnknownFields verifies strict decoding.
func TestParseRejectsUnknownFields(t *testing.T) {
	_, err := Parse([]byte("version: 1\nui:\n  colour: red\n"))
	if err == nil || !strings.Contains(err.Error(), "colour") {
		t.Fatalf("expected unknown field error, got %v", err)
	}
}

// TestParseRejectsMultipleDocuments verifies only one document is accepted.
func TestParseRejectsMultipleDocuments(t *testing.T) {
	_, err := Parse([]byte("version: 1\n---\nversion: 1\n"))
	if err == nil || !strings.Contains(err.Error(), "multiple YAML documents") {
		t.Fatalf("expected multiple documents error, got %v", err)
	}
}

// TestDefaults verifies defaults validate and enable feedback.
func TestDefaults(t *testing.T) {
	cfg := Defaults()
	if err := Validate(&cfg); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
	if cfg.UI.Mode != UIModeAuto || cfg.Log.Level != DefaultLogLevel {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if !cfg.Session.Feedback() {
		t.Fatalf("expected feedback on by default")
	}
}

// TestNormalizeLowercasesEnums verifies enum fields are normalized.
func TestNormalizeLowercasesEnums(t *testing.T) {
	cfg := Config{Version: 1, UI: UIConfig{Mode: "  Plain "}, Log: LogConfig{Level: "DEBUG"}}
	Normalize(&cfg)
	if cfg.UI.Mode != UIModePlain || cfg.Log.Level != "debug" {
		t.Fatalf("unexpected normalized config: %+v", cfg)
	}
}

// TestValidateReportsAllIssues verifies issues are aggregated.
func TestValidateReportsAllIssues(t *testing.T) {
	cfg := Config{Version: 2, UI: UIConfig{Mode: "fancy"}, Log: LogConfig{Level: "loud", Path: "logs/"}}
	err := Validate(&cfg)
	var validation *ValidationError
	if !errors.As(err, &validation) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	fields := map[string]bool{}
	for _, issue := range validation.Issues {
		fields[issue.Field] = true
	}
	for _, field := range []string{"version", "ui.mode", "log.level", "log.path"} {
		if !fields[field] {
			t.Fatalf("expected issue for %s, got %v", field, validation.Issues)
		}
	}
}

// TestLoadResolvesRelativePaths verifies paths resolve against the project root.
func TestLoadResolvesRelativePaths(t *testing.T) {
	root := t.TempDir()
	path := writeConfig(t, root, `version: 1
ui:
  mode: live
  no_color: true
session:
  seed: 42
  show_feedback: false
log:
  path: logs/quizmark.log
  level: warn
results:
  output_dir: results
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.UI.Mode != UIModeLive || !cfg.UI.NoColor {
		t.Fatalf("unexpected ui config: %+v", cfg.UI)
	}
	if cfg.Session.Seed != 42 || cfg.Session.Feedback() {
		t.Fatalf("unexpected session config: %+v", cfg.Session)
	}
	if cfg.Log.Path != filepath.Join(root, "logs", "quizmark.log") {
		t.Fatalf("unexpected log path %q", cfg.Log.Path)
	}
	if cfg.Results.OutputDir != filepath.Join(root, "results") {
		t.Fatalf("unexpected output dir %q", cfg.Results.OutputDir)
	}
}

// TestLoadValidationFailure verifies invalid configs are rejected.
func TestLoadValidationFailure(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "version: 1\nui:\n  mode: fancy\n")
	if _, err := Load(path); err == nil || !strings.Contains(err.Error(), "ui.mode") {
		t.Fatalf("expected ui.mode error, got %v", err)
	}
}

// TestFindConfigPathWalksUp verifies discovery from a nested directory.
func TestFindConfigPathWalksUp(t *testing.T) {
	root := t.TempDir()
	path := writeConfig(t, root, "version: 1\n")
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	found, err := FindConfigPath(nested)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if found != path {
		t.Fatalf("expected %q, got %q", path, found)
	}
}

// TestDiscoverWithoutConfigUsesDefaults verifies a missing file means defaults.
func TestDiscoverWithoutConfigUsesDefaults(t *testing.T) {
	cfg, path, err := Discover("", t.TempDir())
	if err != nil {
		t.Fatalf("discover: %v", err)
	}
	if path != "" {
		t.Fatalf("expected no path, got %q", path)
	}
	if cfg.UI.Mode != UIModeAuto {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
}

// TestDiscoverExplicitMissing verifies an explicit path must exist.
func TestDiscoverExplicitMissing(t *testing.T) {
	_, _, err := Discover(filepath.Join(t.TempDir(), "nope.yml"), "")
	if err == nil || !strings.Contains(err.Error(), "read config") {
		t.Fatalf("expected read error, got %v", err)
	}
}

// TestScaffoldRoundTrip verifies a scaffolded file loads back.
func TestScaffoldRoundTrip(t *testing.T) {
	root := t.TempDir()
	path := ConfigPath(root)
	cfg := Defaults()
	cfg.UI.Mode = UIModePlain
	cfg.Results.OutputDir = "results"
	if err := Scaffold(path, cfg); err != nil {
		t.Fatalf("scaffold: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.UI.Mode != UIModePlain || loaded.Results.OutputDir != filepath.Join(root, "results") {
		t.Fatalf("unexpected loaded config: %+v", loaded)
	}
	if err := Scaffold(path, cfg); err == nil || !strings.Contains(err.Error(), "already exists") {
		t.Fatalf("expected overwrite refusal, got %v", err)
	}
}
