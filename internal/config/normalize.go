package config

import "strings"

// Normalize trims enum fields and fills defaults.
func Normalize(cfg *Config) {
	cfg.UI.Mode = strings.ToLower(strings.TrimSpace(cfg.UI.Mode))
	if cfg.UI.Mode == "" {
		cfg.UI.Mode = UIModeAuto
	}
	cfg.Log.Path = strings.TrimSpace(cfg.Log.Path)
	cfg.Log.Level = strings.ToLower(strings.TrimSpace(cfg.Log.Level))
	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}
	cfg.Results.OutputDir = strings.TrimSpace(cfg.Results.OutputDir)
}
