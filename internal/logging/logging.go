// Package logging configures the process-wide slog logger.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

type Sink string

const (
	SinkStderr Sink = "stderr"
	SinkFile   Sink = "file"
	SinkNone   Sink = "none"
)

const (
	EnvLogLevel  = "PAGELINKS_LOG_LEVEL"
	EnvLogFormat = "PAGELINKS_LOG_FORMAT"
	EnvLogFile   = "PAGELINKS_LOG_FILE"
)

type Config struct {
	Level  string `yaml:"level,omitempty"`
	Format string `yaml:"format,omitempty"`
	Sink   string `yaml:"sink,omitempty"`
	File   string `yaml:"file,omitempty"`

	MaxSizeMB  int `yaml:"max_size_mb,omitempty"`
	MaxBackups int `yaml:"max_backups,omitempty"`
}

// DefaultConfig is quiet: warnings and errors as text on stderr.
func DefaultConfig() Config {
	return Config{
		Level:      "warn",
		Format:     string(FormatText),
		Sink:       string(SinkStderr),
		MaxSizeMB:  10,
		MaxBackups: 3,
	}
}

// Merge returns c with every non-empty field of override applied
func (c Config) Merge(override Config) Config {
	if override.Level != "" {
		c.Level = override.Level
	}
	if override.Format != "" {
		c.Format = override.Format
	}
	if override.Sink != "" {
		c.Sink = override.Sink
	}
	if override.File != "" {
		c.File = override.File
		if override.Sink == "" {
			c.Sink = string(SinkFile)
		}
	}
	if override.MaxSizeMB > 0 {
		c.MaxSizeMB = override.MaxSizeMB
	}
	if override.MaxBackups > 0 {
		c.MaxBackups = override.MaxBackups
	}
	return c
}

// WithEnv applies PAGELINKS_LOG_* overrides
func (c Config) WithEnv() Config {
	return c.Merge(Config{
		Level:  strings.TrimSpace(os.Getenv(EnvLogLevel)),
		Format: strings.TrimSpace(os.Getenv(EnvLogFormat)),
		File:   strings.TrimSpace(os.Getenv(EnvLogFile)),
	})
}

// Validate checks the enumerated fields
func (c Config) Validate() error {
	if _, err := ParseLevel(c.Level); err != nil {
		return err
	}
	switch Format(strings.ToLower(c.Format)) {
	case FormatText, FormatJSON, "":
	default:
		return fmt.Errorf("logging: unknown format %q", c.Format)
	}
	switch Sink(strings.ToLower(c.Sink)) {
	case SinkStderr, SinkNone, "":
	case SinkFile:
		if strings.TrimSpace(c.File) == "" {
			return fmt.Errorf("logging: file sink needs a file path")
		}
	default:
		return fmt.Errorf("logging: unknown sink %q", c.Sink)
	}
	return nil
}

// ParseLevel maps a level name to a slog level; empty means warn
func ParseLevel(value string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning", "":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelWarn, fmt.Errorf("logging: unknown level %q", value)
	}
}

// New builds a logger from cfg. The returned close function releases the sink.
func New(cfg Config) (*slog.Logger, func() error, error) {
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	level, _ := ParseLevel(cfg.Level)

	writer, closeFn := resolveWriter(cfg)
	handlerOpts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	switch Format(strings.ToLower(cfg.Format)) {
	case FormatJSON:
		handler = slog.NewJSONHandler(writer, handlerOpts)
	default:
		handler = slog.NewTextHandler(writer, handlerOpts)
	}
	return slog.New(handler), closeFn, nil
}

// Init builds a logger from cfg and installs it as the slog default
func Init(cfg Config) (func() error, error) {
	logger, closeFn, err := New(cfg)
	if err != nil {
		return nil, err
	}
	slog.SetDefault(logger)
	return closeFn, nil
}

func resolveWriter(cfg Config) (io.Writer, func() error) {
	switch Sink(strings.ToLower(cfg.Sink)) {
	case SinkNone:
		return io.Discard, func() error { return nil }
	case SinkFile:
		rot := &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
		}
		return rot, rot.Close
	default:
		return os.Stderr, func() error { return nil }
	}
}
