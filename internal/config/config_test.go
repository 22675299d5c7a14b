package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gompdf/pagelinks/pkg/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Nil(t, cfg.Items)
	assert.Equal(t, 10, cfg.ItemsPerPage)
	assert.Equal(t, "page-link", cfg.ClassName)
	assert.Equal(t, "page-", cfg.Prefix)
	assert.Equal(t, []string{"First", "Last"}, cfg.SkipLabels)
	assert.True(t, cfg.SkipLabelsInclusive)
	assert.Equal(t, []string{"Prev", "Next"}, cfg.IncrementLabels)
	assert.Equal(t, "...", cfg.Divider)
	assert.Equal(t, 2, cfg.MarginPageCount)
	assert.Equal(t, 5, cfg.CenterPageCount)
	assert.Equal(t, "span", cfg.ElementTag)
	assert.Empty(t, cfg.PaginateContainer)
}

func TestNormalizeLabels(t *testing.T) {
	def := []string{"A", "B"}
	tests := []struct {
		name     string
		input    interface{}
		expected []string
	}{
		{name: "nil input", input: nil, expected: def},
		{name: "false hides", input: false, expected: nil},
		{name: "true keeps default", input: true, expected: def},
		{name: "pipe string", input: "« | »", expected: []string{"«", "»"}},
		{name: "single string", input: "Only", expected: def},
		{name: "list", input: []interface{}{"Start", "End"}, expected: []string{"Start", "End"}},
		{name: "long list", input: []interface{}{"a", nil, "b", "c"}, expected: []string{"a", "b"}},
		{name: "short list", input: []interface{}{"a"}, expected: def},
		{name: "number", input: 3, expected: def},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, normalizeLabels(tt.input, def))
		})
	}
}

func TestCoerceInt(t *testing.T) {
	assert.Equal(t, 7, coerceInt(7, 1))
	assert.Equal(t, 3, coerceInt(3.9, 1))
	assert.Equal(t, 12, coerceInt(" 12 ", 1))
	assert.Equal(t, 1, coerceInt("twelve", 1))
	assert.Equal(t, 1, coerceInt(true, 1))
	assert.Equal(t, 1, coerceInt(nil, 1))
}

func TestParse(t *testing.T) {
	cfg, err := Parse([]byte(`
items: "#results li"
items_per_page: 25
starting_page: "2"
paginate_container: "#pager"
class_name: btn
prefix: btn-
skip_labels: false
increment_labels: ["<", ">"]
increment_step: 5
divider: false
always_show_control: yes
margin_pages: false
center_pages: 7
element: LI
debug: true
logging:
  level: DEBUG
  format: json
  file: /tmp/pagelinks.log
  max_backups: 5
`))
	require.NoError(t, err)

	assert.Equal(t, "#results li", cfg.Items)
	assert.Equal(t, 25, cfg.ItemsPerPage)
	assert.Equal(t, 2, cfg.StartingPage)
	assert.Equal(t, "#pager", cfg.PaginateContainer)
	assert.Equal(t, "btn", cfg.ClassName)
	assert.Equal(t, "btn-", cfg.Prefix)
	assert.Nil(t, cfg.SkipLabels)
	assert.Equal(t, []string{"<", ">"}, cfg.IncrementLabels)
	assert.Equal(t, 5, cfg.IncrementStep)
	assert.Empty(t, cfg.Divider)
	assert.True(t, cfg.AlwaysShowControl)
	assert.Equal(t, 0, cfg.MarginPageCount)
	assert.Equal(t, 7, cfg.CenterPageCount)
	assert.Equal(t, "li", cfg.ElementTag)
	assert.True(t, cfg.Debug)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "/tmp/pagelinks.log", cfg.Logging.File)
	assert.Equal(t, 5, cfg.Logging.MaxBackups)
}

func TestParseItemCount(t *testing.T) {
	cfg, err := Parse([]byte("items: 95\nmargin_pages: 1\n"))
	require.NoError(t, err)
	assert.Equal(t, 95, cfg.Items)
	assert.Equal(t, 1, cfg.MarginPageCount)
	assert.Equal(t, "...", cfg.Divider)
}

func TestParseInvalid(t *testing.T) {
	cfg, err := Parse([]byte("items: [unclosed"))
	assert.Error(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestOptions(t *testing.T) {
	cfg, err := Parse([]byte("items: 95\nitems_per_page: 20\nstarting_page: 3\nskip_labels: false\n"))
	require.NoError(t, err)

	c := api.New(cfg.Options()...)
	info := c.Info()
	assert.Equal(t, 95, info.TotalItemCount)
	assert.Equal(t, 5, info.TotalPages)
	assert.Equal(t, 3, info.CurrentPage)

	for _, e := range c.Entries() {
		assert.NotEqual(t, "First", e.Label)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pagelinks.yaml")
	require.NoError(t, os.WriteFile(path, []byte("items_per_page: 15\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 15, cfg.ItemsPerPage)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadFromConfigDir(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	require.NoError(t, os.MkdirAll(filepath.Join(dir, "pagelinks"), 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "pagelinks", "config.yml"), []byte("center_pages: 3\n"), 0o600))

	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.CenterPageCount)
}
