// Package config loads pagination settings from YAML.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gompdf/pagelinks/internal/logging"
	"github.com/gompdf/pagelinks/pkg/api"
	"gopkg.in/yaml.v3"
)

// Config holds the controller options that can be set from a file.
type Config struct {
	// Items is a selector string or an item count
	Items             any
	ItemsPerPage      int
	StartingPage      int
	PaginateContainer string

	ClassName           string
	Prefix              string
	SkipLabels          []string // nil hides the skip buttons
	SkipLabelsInclusive bool
	IncrementLabels     []string // nil hides the increment buttons
	IncrementStep       int
	Divider             string
	AlwaysShowControl   bool
	MarginPageCount     int
	CenterPageCount     int
	ElementTag          string
	Debug               bool

	Logging logging.Config
}

// DefaultConfig returns the default configuration values.
func DefaultConfig() *Config {
	opts := api.DefaultOptions()
	return &Config{
		ItemsPerPage:        opts.ItemsPerPage,
		StartingPage:        opts.StartingPage,
		ClassName:           opts.ClassName,
		Prefix:              opts.Prefix,
		SkipLabels:          opts.SkipLabels,
		SkipLabelsInclusive: opts.SkipLabelsInclusive,
		IncrementLabels:     opts.IncrementLabels,
		IncrementStep:       opts.IncrementStep,
		Divider:             opts.Divider,
		AlwaysShowControl:   opts.AlwaysShowControl,
		MarginPageCount:     opts.MarginPageCount,
		CenterPageCount:     opts.CenterPageCount,
		ElementTag:          opts.ElementTag,
	}
}

// Options converts the configuration into controller options
func (c *Config) Options() []api.Option {
	opts := []api.Option{
		api.WithItemsPerPage(c.ItemsPerPage),
		api.WithStartingPage(c.StartingPage),
		api.WithClassName(c.ClassName),
		api.WithPrefix(c.Prefix),
		api.WithSkipLabels(c.SkipLabels...),
		api.WithSkipLabelsInclusive(c.SkipLabelsInclusive),
		api.WithIncrementLabels(c.IncrementLabels...),
		api.WithIncrementStep(c.IncrementStep),
		api.WithDivider(c.Divider),
		api.WithAlwaysShowControl(c.AlwaysShowControl),
		api.WithMarginPageCount(c.MarginPageCount),
		api.WithCenterPageCount(c.CenterPageCount),
		api.WithElementTag(c.ElementTag),
		api.WithDebug(c.Debug),
	}
	if c.Items != nil {
		opts = append(opts, api.WithItems(c.Items))
	}
	if c.PaginateContainer != "" {
		opts = append(opts, api.WithPaginateContainer(c.PaginateContainer))
	}
	return opts
}

// normalizeLabels reads a label list. false hides the labels.
func normalizeLabels(value any, defaultVal []string) []string {
	switch v := value.(type) {
	case nil:
		return defaultVal
	case bool:
		if v {
			return defaultVal
		}
		return nil
	case string:
		// "First|Last"
		parts := strings.Split(v, "|")
		if len(parts) < 2 {
			return defaultVal
		}
		return []string{strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])}
	case []any:
		labels := make([]string, 0, len(v))
		for _, item := range v {
			if item == nil {
				continue
			}
			labels = append(labels, fmt.Sprintf("%v", item))
		}
		if len(labels) < 2 {
			return defaultVal
		}
		return labels[:2]
	}
	return defaultVal
}

func coerceBool(value any, defaultVal bool) bool {
	if value == nil {
		return defaultVal
	}

	switch v := value.(type) {
	case bool:
		return v
	case int:
		return v != 0
	case string:
		text := strings.ToLower(strings.TrimSpace(v))
		switch text {
		case "1", "true", "yes", "y", "on":
			return true
		case "0", "false", "no", "n", "off":
			return false
		}
	}
	return defaultVal
}

func coerceInt(value any, defaultVal int) int {
	if value == nil {
		return defaultVal
	}

	switch v := value.(type) {
	case bool:
		return defaultVal
	case int:
		return v
	case float64:
		return int(v)
	case string:
		text := strings.TrimSpace(v)
		if text == "" {
			return defaultVal
		}
		if i, err := strconv.Atoi(text); err == nil {
			return i
		}
	}
	return defaultVal
}

func trimmedString(data map[string]any, key string) (string, bool) {
	s, ok := data[key].(string)
	if !ok {
		return "", false
	}
	s = strings.TrimSpace(s)
	return s, s != ""
}

func parseLogging(data map[string]any) logging.Config {
	var cfg logging.Config
	if level, ok := trimmedString(data, "level"); ok {
		cfg.Level = strings.ToLower(level)
	}
	if format, ok := trimmedString(data, "format"); ok {
		cfg.Format = strings.ToLower(format)
	}
	if sink, ok := trimmedString(data, "sink"); ok {
		cfg.Sink = strings.ToLower(sink)
	}
	if file, ok := trimmedString(data, "file"); ok {
		cfg.File = file
	}
	cfg.MaxSizeMB = coerceInt(data["max_size_mb"], 0)
	cfg.MaxBackups = coerceInt(data["max_backups"], 0)
	return cfg
}

func parseConfig(data map[string]any) *Config {
	cfg := DefaultConfig()

	switch items := data["items"].(type) {
	case int:
		cfg.Items = items
	case string:
		if s := strings.TrimSpace(items); s != "" {
			cfg.Items = s
		}
	}

	cfg.ItemsPerPage = coerceInt(data["items_per_page"], cfg.ItemsPerPage)
	cfg.StartingPage = coerceInt(data["starting_page"], cfg.StartingPage)

	if container, ok := trimmedString(data, "paginate_container"); ok {
		cfg.PaginateContainer = container
	}
	if className, ok := data["class_name"].(string); ok {
		cfg.ClassName = strings.TrimSpace(className)
	}
	if prefix, ok := data["prefix"].(string); ok {
		cfg.Prefix = strings.TrimSpace(prefix)
	}

	cfg.SkipLabels = normalizeLabels(data["skip_labels"], cfg.SkipLabels)
	cfg.SkipLabelsInclusive = coerceBool(data["skip_labels_inclusive"], cfg.SkipLabelsInclusive)
	cfg.IncrementLabels = normalizeLabels(data["increment_labels"], cfg.IncrementLabels)
	cfg.IncrementStep = coerceInt(data["increment_step"], cfg.IncrementStep)

	switch divider := data["divider"].(type) {
	case bool:
		if !divider {
			cfg.Divider = ""
		}
	case string:
		cfg.Divider = divider
	}

	cfg.AlwaysShowControl = coerceBool(data["always_show_control"], cfg.AlwaysShowControl)

	// margin_pages: false disables the margins
	if margin, ok := data["margin_pages"].(bool); ok {
		if !margin {
			cfg.MarginPageCount = 0
		}
	} else {
		cfg.MarginPageCount = coerceInt(data["margin_pages"], cfg.MarginPageCount)
	}
	cfg.CenterPageCount = coerceInt(data["center_pages"], cfg.CenterPageCount)

	if tag, ok := trimmedString(data, "element"); ok {
		cfg.ElementTag = strings.ToLower(tag)
	}
	cfg.Debug = coerceBool(data["debug"], false)

	if raw, ok := data["logging"].(map[string]any); ok {
		cfg.Logging = parseLogging(raw)
	}

	return cfg
}

// Parse decodes a YAML document into a configuration
func Parse(data []byte) (*Config, error) {
	var yamlData map[string]any
	if err := yaml.Unmarshal(data, &yamlData); err != nil {
		return DefaultConfig(), fmt.Errorf("failed to parse config: %w", err)
	}
	return parseConfig(yamlData), nil
}

func getConfigDir() string {
	if xdgConfigHome := os.Getenv("XDG_CONFIG_HOME"); xdgConfigHome != "" {
		return xdgConfigHome
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config")
}

// Load reads the configuration from configPath. With an empty path it looks
// for config.yaml in the user config directory; a missing file yields the
// defaults.
func Load(configPath string) (*Config, error) {
	var paths []string
	if configPath != "" {
		expanded, err := expandPath(configPath)
		if err != nil {
			return DefaultConfig(), err
		}
		data, err := os.ReadFile(expanded)
		if err != nil {
			return DefaultConfig(), fmt.Errorf("failed to read config: %w", err)
		}
		return Parse(data)
	}

	configBase := filepath.Join(getConfigDir(), "pagelinks")
	paths = []string{
		filepath.Join(configBase, "config.yaml"),
		filepath.Join(configBase, "config.yml"),
	}
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return DefaultConfig(), fmt.Errorf("failed to read config: %w", err)
		}
		return Parse(data)
	}
	return DefaultConfig(), nil
}

func expandPath(path string) (string, error) {
	if strings.HasPrefix(path, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		path = filepath.Join(home, path[1:])
	}
	return os.ExpandEnv(path), nil
}
