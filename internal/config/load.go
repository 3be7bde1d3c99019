package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Load reads, parses, normalizes, and validates a config file. Relative
// log and result paths are resolved against the config's base directory.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, err
	}
	Normalize(&cfg)
	if err := Validate(&cfg); err != nil {
		return Config{}, err
	}
	base := BaseDir(path)
	cfg.Log.Path = resolve(base, cfg.Log.Path)
	cfg.Results.OutputDir = resolve(base, cfg.Results.OutputDir)
	return cfg, nil
}

// Discover loads an explicit config path, or searches upward from startDir.
// A missing discovered config yields Defaults and an empty path.
func Discover(explicit, startDir string) (Config, string, error) {
	if explicit != "" {
		cfg, err := Load(explicit)
		return cfg, explicit, err
	}
	path, err := FindConfigPath(startDir)
	if errors.Is(err, ErrConfigNotFound) {
		return Defaults(), "", nil
	}
	if err != nil {
		return Config{}, "", err
	}
	cfg, err := Load(path)
	return cfg, path, err
}

func resolve(base, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(base, path)
}
