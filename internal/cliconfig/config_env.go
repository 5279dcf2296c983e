package cliconfig

import (
	"errors"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// EnvPrefix is the prefix of every environment variable mdmedium reads.
const EnvPrefix = "MDMEDIUM_"

// LoadDotEnv loads variables from a .env file without overriding variables
// already set in the environment. A missing file is not an error.
func LoadDotEnv(path string) error {
	if path == "" {
		path = ".env"
	}
	err := godotenv.Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// ApplyEnvConfig applies configuration from environment variables (MDMEDIUM_*).
// It respects flags that have been explicitly set (changed map).
// Returns error if any environment variable has an invalid format.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("output-dir", os.Getenv(EnvPrefix+"OUTPUT_DIR"), &cfg.OutputDir)
	s.setString("suffix", os.Getenv(EnvPrefix+"SUFFIX"), &cfg.Suffix)
	s.setString("default-title", os.Getenv(EnvPrefix+"DEFAULT_TITLE"), &cfg.DefaultTitle)
	s.setString("log-level", os.Getenv(EnvPrefix+"LOG_LEVEL"), &cfg.LogLevel)
	s.setTags("tags", os.Getenv(EnvPrefix+"TAGS"), &cfg.Tags)

	if err := s.setDuration("debounce", os.Getenv(EnvPrefix+"DEBOUNCE"), &cfg.Debounce); err != nil {
		return err
	}
	if err := s.setIntFromString("preview-lines", os.Getenv(EnvPrefix+"PREVIEW_LINES"), &cfg.PreviewLines); err != nil {
		return err
	}

	s.setBoolFromString("front-matter", os.Getenv(EnvPrefix+"FRONT_MATTER"), &cfg.FrontMatter)
	s.setBoolFromString("no-color", os.Getenv(EnvPrefix+"NO_COLOR"), &cfg.NoColor)

	return nil
}
