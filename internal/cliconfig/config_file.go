package cliconfig

import (
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// FileConfig mirrors Config but uses strings for durations to make TOML friendly.
type FileConfig struct {
	OutputDir    string   `toml:"output_dir"`
	Suffix       string   `toml:"suffix"`
	DefaultTitle string   `toml:"default_title"`
	Tags         []string `toml:"tags"`
	FrontMatter  *bool    `toml:"front_matter"`
	LogLevel     string   `toml:"log_level"`
	Debounce     string   `toml:"debounce"`
	PreviewLines *int     `toml:"preview_lines"`
	NoColor      *bool    `toml:"no_color"`
}

// LoadFileConfig reads and parses a TOML config file from the given path.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := toml.Unmarshal(b, &fc); err != nil {
		return fc, err
	}
	return fc, nil
}

// DefaultConfigPath returns the default configuration file path.
// Returns ~/.mdmedium/config.toml if user home directory is accessible.
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".mdmedium", "config.toml")
	}
	return ""
}

// ApplyFileConfig applies configuration from a file to the Config struct.
// It respects flags that have been explicitly set (changed map).
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("output-dir", fc.OutputDir, &cfg.OutputDir)
	s.setString("suffix", fc.Suffix, &cfg.Suffix)
	s.setString("default-title", fc.DefaultTitle, &cfg.DefaultTitle)
	s.setString("log-level", fc.LogLevel, &cfg.LogLevel)
	s.setStrings("tags", fc.Tags, &cfg.Tags)

	if err := s.setDuration("debounce", fc.Debounce, &cfg.Debounce); err != nil {
		return err
	}

	s.setIntPtr("preview-lines", fc.PreviewLines, &cfg.PreviewLines)

	s.setBool("front-matter", fc.FrontMatter, &cfg.FrontMatter)
	s.setBool("no-color", fc.NoColor, &cfg.NoColor)

	return nil
}

// FileExists checks if a file exists at the given path.
func FileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
