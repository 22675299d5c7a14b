package pdf

import (
	"bytes"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/gompdf/pagelinks/internal/pagination"
	"github.com/gompdf/pagelinks/internal/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func samplePage(total, page int) Page {
	cfg := pagination.DefaultConfig()
	cfg.TotalItemCount = total
	info := pagination.ComputeInfo(cfg, page)
	entries := render.BuildEntries(info, pagination.ComputeLayout(info, cfg), render.Style{
		Prefix:          "page-",
		SkipLabels:      []string{"First", "Last"},
		IncrementLabels: []string{"Prev", "Next"},
		Divider:         "...",
	})

	var items []string
	for i := info.FirstItemIndex; i <= info.LastItemIndex && i < total; i++ {
		items = append(items, "Item "+strconv.Itoa(i+1))
	}
	return Page{Heading: "Résumés", Info: info, Items: items, Entries: entries}
}

func TestRender(t *testing.T) {
	var buf bytes.Buffer
	err := NewRenderer().Render(&buf, samplePage(95, 9), RenderOptions{Title: "Results"})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
}

func TestRenderManyItemsTruncates(t *testing.T) {
	page := samplePage(1000, 3)
	for i := 0; i < 200; i++ {
		page.Items = append(page.Items, "extra")
	}
	r := NewRenderer()
	r.Debug = true

	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, page, RenderOptions{Orientation: "L"}))
	assert.NotZero(t, buf.Len())
}

func TestRenderFile(t *testing.T) {
	out := filepath.Join(t.TempDir(), "nested", "page.pdf")
	require.NoError(t, NewRenderer().RenderFile(out, samplePage(0, 0), RenderOptions{}))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
}

func TestSummary(t *testing.T) {
	cfg := pagination.DefaultConfig()
	cfg.TotalItemCount = 95
	assert.Equal(t, "Items 91-95 of 95, page 10 of 10", summary(pagination.ComputeInfo(cfg, 9)))

	cfg.TotalItemCount = 0
	assert.Equal(t, "No items, page 1 of 1", summary(pagination.ComputeInfo(cfg, 0)))
}
