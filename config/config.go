// Package config loads extractor settings from YAML.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/sevigo/semseg/annotate"
	"github.com/sevigo/semseg/boundaries"
)

// Config mirrors the YAML file layout.
type Config struct {
	Granularities      []string `yaml:"granularities"`
	SentenceDelimiters []string `yaml:"sentence_delimiters,omitempty"`
	TokenDelimiters    []string `yaml:"token_delimiters,omitempty"`
	Annotator          string   `yaml:"annotator,omitempty"`
	Logging            Logging  `yaml:"logging"`
}

type Logging struct {
	Level string `yaml:"level"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	names := make([]string, 0, 4)
	for _, g := range boundaries.DefaultGranularities() {
		names = append(names, string(g))
	}
	return Config{
		Granularities: names,
		Annotator:     annotate.PlainName,
		Logging:       Logging{Level: "info"},
	}
}

// Parse decodes raw YAML on top of Default. Unknown fields are rejected.
func Parse(raw []byte) (Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Load reads and parses the YAML file at path.
func Load(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return Parse(raw)
}

// Validate checks granularity names, delimiters and the log level by building
// an extractor from the configuration.
func (c Config) Validate() error {
	if _, err := boundaries.NewExtractor(c.Options(nil)...); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if _, err := parseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Options converts the configuration into extractor options.
func (c Config) Options(logger *slog.Logger) []boundaries.Option {
	opts := []boundaries.Option{
		boundaries.WithGranularityNames(c.Granularities...),
		boundaries.WithSentenceDelimiters(c.SentenceDelimiters...),
		boundaries.WithTokenDelimiters(c.TokenDelimiters...),
	}
	if logger != nil {
		opts = append(opts, boundaries.WithLogger(logger))
	}
	return opts
}

// LogLevel returns the configured level, info when unset.
func (c Config) LogLevel() slog.Level {
	level, err := parseLevel(c.Logging.Level)
	if err != nil {
		return slog.LevelInfo
	}
	return level
}

func parseLevel(s string) (slog.Level, error) {
	if strings.TrimSpace(s) == "" {
		return slog.LevelInfo, nil
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo, fmt.Errorf("%w: log level %q", boundaries.ErrInvalidArgument, s)
	}
	return level, nil
}
