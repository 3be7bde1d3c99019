package config

// Config holds tool settings read from .quizmark/config.yml.
type Config struct {
	Version int           `yaml:"version"`
	UI      UIConfig      `yaml:"ui"`
	Session SessionConfig `yaml:"session"`
	Log     LogConfig     `yaml:"log"`
	Results ResultsConfig `yaml:"results"`
}

// UIConfig selects how sessions are presented.
type UIConfig struct {
	Mode    string `yaml:"mode"`
	NoColor bool   `yaml:"no_color"`
}

// SessionConfig tunes the quiz session.
type SessionConfig struct {
	Seed         uint64 `yaml:"seed"`
	ShowFeedback *bool  `yaml:"show_feedback"`
}

// LogConfig enables file logging.
type LogConfig struct {
	Path  string `yaml:"path"`
	Level string `yaml:"level"`
}

// ResultsConfig controls where result records are written.
type ResultsConfig struct {
	OutputDir string `yaml:"output_dir"`
}

// Supported UI modes and log levels.
const (
	UIModeAuto  = "auto"
	UIModeLive  = "live"
	UIModePlain = "plain"

	DefaultLogLevel = "info"
)

var (
	uiModes   = []string{UIModeAuto, UIModeLive, UIModePlain}
	logLevels = []string{"debug", "info", "warn", "error"}
)

// Defaults returns the settings used when no config file exists.
func Defaults() Config {
	cfg := Config{Version: 1}
	Normalize(&cfg)
	return cfg
}

// Feedback reports whether outcomes are shown after each question.
func (s SessionConfig) Feedback() bool {
	return s.ShowFeedback == nil || *s.ShowFeedback
}
