package cliconfig

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/rs/zerolog"

	"github.com/bft-labs/mdmedium/internal/domain"
	"github.com/bft-labs/mdmedium/internal/markdown"
)

// Defaults for fields that are not set anywhere.
const (
	DefaultPreviewLines = 10
	DefaultDebounce     = 100 * time.Millisecond
	DefaultLogLevel     = "info"

	maxPreviewLines = 1000
)

// Config holds CLI configuration for mdmedium.
type Config struct {
	OutputDir    string
	Suffix       string
	DefaultTitle string
	Tags         []string
	FrontMatter  bool

	LogLevel     string
	Debounce     time.Duration
	PreviewLines int
	NoColor      bool
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		Suffix:       domain.DefaultOutputSuffix,
		DefaultTitle: domain.DefaultTitle,
		LogLevel:     DefaultLogLevel,
		Debounce:     DefaultDebounce,
		PreviewLines: DefaultPreviewLines,
	}
}

var suffixPattern = regexp.MustCompile(`^[^/\\]+$`)

// Validate checks the configuration and fills derived defaults.
// Failures match domain.ErrInvalidConfig.
func (c *Config) Validate() error {
	if c.DefaultTitle == "" {
		c.DefaultTitle = domain.DefaultTitle
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
	c.LogLevel = strings.ToLower(c.LogLevel)

	err := validation.ValidateStruct(c,
		validation.Field(&c.Suffix,
			validation.Required,
			validation.Match(suffixPattern).Error("must not contain a path separator"),
		),
		validation.Field(&c.PreviewLines, validation.Min(0), validation.Max(maxPreviewLines)),
		validation.Field(&c.Debounce, validation.Required, validation.Min(time.Millisecond)),
		validation.Field(&c.LogLevel, validation.By(validLogLevel)),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidConfig, err)
	}
	return nil
}

func validLogLevel(value interface{}) error {
	s, _ := value.(string)
	if _, err := zerolog.ParseLevel(s); err != nil {
		return fmt.Errorf("unknown level %q", s)
	}
	return nil
}

// Level returns the zerolog level for LogLevel, falling back to info.
func (c Config) Level() zerolog.Level {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil || c.LogLevel == "" {
		return zerolog.InfoLevel
	}
	return level
}

// configSetter helps apply configuration values while respecting flag precedence.
// It only applies values if the corresponding flag hasn't been explicitly set.
type configSetter struct {
	changed map[string]bool
}

// newConfigSetter creates a new setter with the given changed flags map.
func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

// setStrings sets a list if non-empty and flag not changed.
func (s *configSetter) setStrings(flag string, value []string, dst *[]string) {
	if len(value) == 0 || s.changed[flag] {
		return
	}
	*dst = append([]string(nil), value...)
}

// setTags parses a comma-separated tag list.
func (s *configSetter) setTags(flag, value string, dst *[]string) {
	s.setStrings(flag, markdown.ParseTags(value), dst)
}

// setIntPtr sets an int from a pointer if not nil and flag not changed.
// Zero is a valid value.
func (s *configSetter) setIntPtr(flag string, value *int, dst *int) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setDuration parses and sets a duration from string if valid and flag not changed.
func (s *configSetter) setDuration(flag, value string, dst *time.Duration) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = d
	return nil
}

// setBool sets a bool value from a pointer if not nil and flag not changed.
func (s *configSetter) setBool(flag string, value *bool, dst *bool) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setIntFromString parses an int and sets the destination. Range checks
// are left to Validate. Used for environment variables that come as strings.
func (s *configSetter) setIntFromString(flag, value string, dst *int) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = i
	return nil
}

// setBoolFromString parses a string to bool and sets the destination.
// Accepts "true", "1" as true, anything else as false.
// Used for environment variables that come as strings.
func (s *configSetter) setBoolFromString(flag, value string, dst *bool) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value == "true" || value == "1"
}
