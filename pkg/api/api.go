package api

import (
	"io"
	"log/slog"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/gompdf/pagelinks/internal/items"
	"github.com/gompdf/pagelinks/internal/pagination"
	dom "github.com/gompdf/pagelinks/internal/parser/html"
	"github.com/gompdf/pagelinks/internal/render"
	htmlrender "github.com/gompdf/pagelinks/internal/render/html"
	xhtml "golang.org/x/net/html"
)

// PageInfo describes the current page
type PageInfo = pagination.Info

// PageLayout lists the page numbers shown by the control
type PageLayout = pagination.Layout

// ControlEntry is a single element of the page-link control
type ControlEntry = render.Entry

// Document is a parsed HTML document
type Document = dom.Document

// ParseHTML parses an HTML document from r
func ParseHTML(r io.Reader) (*Document, error) {
	return dom.NewParser().Parse(r)
}

// ParseHTMLString parses an HTML document from a string
func ParseHTMLString(content string) (*Document, error) {
	return dom.NewParser().ParseString(content)
}

// ControlRenderer draws the page-link control for a page
type ControlRenderer interface {
	RenderControl(info PageInfo, layout PageLayout)
}

// Controller owns the pagination state. It is not safe for concurrent use;
// callers driven by events must serialize them.
type Controller struct {
	options   Options
	engine    *pagination.Engine
	source    items.Source
	container *xhtml.Node
	renderer  ControlRenderer
	info      PageInfo
}

// New creates a controller from the default options and opts, then selects
// the starting page
func New(opts ...Option) *Controller {
	options := DefaultOptions()
	for _, opt := range opts {
		opt(&options)
	}
	return NewWithOptions(options)
}

// NewWithOptions creates a controller with the specified options
func NewWithOptions(options Options) *Controller {
	c := &Controller{
		options: options,
		engine:  pagination.NewEngine(),
	}
	c.configure(0)
	c.info = c.engine.Info(0)

	if c.options.OnPagesCreated != nil {
		c.options.OnPagesCreated(c.info.TotalPages)
	}

	c.SetPage(c.options.StartingPage)
	return c
}

// configure resolves the item source and container and rebuilds the engine
// configuration. An unusable item source keeps the previous source.
func (c *Controller) configure(previousTotal int) {
	src, ok := items.Resolve(c.options.Items, c.options.Document)
	if !ok {
		// Keep whatever was paginated before, elements included
		src = c.source
		if src.Kind == items.KindNone {
			src = items.Count(previousTotal)
		}
	}
	c.source = src
	// Later redos reuse the resolved source rather than querying again
	c.options.Items = src

	c.options.ElementTag = render.ValidateTag(c.options.ElementTag)

	c.engine.SetConfig(pagination.Config{
		TotalItemCount:  src.Total,
		ItemsPerPage:    c.options.ItemsPerPage,
		MarginPageCount: c.options.MarginPageCount,
		CenterPageCount: c.options.CenterPageCount,
		IncrementStep:   c.options.IncrementStep,
	})

	c.container = resolveContainer(c.options.PaginateContainer, c.options.Document)
	if c.container != nil {
		c.options.PaginateContainer = c.container
	}

	c.renderer = c.options.Renderer
	if c.renderer == nil && c.container != nil {
		c.renderer = &htmlControl{
			renderer: htmlrender.NewRenderer(c.container, c.options.ElementTag),
			style:    c.options.style(),
		}
	}

	if c.options.Debug {
		slog.Debug("pagination configured",
			"source", src.Kind.String(),
			"total_items", src.Total,
			"items_per_page", c.engine.Config().ItemsPerPage,
			"container", c.container != nil)
	}
}

// resolveContainer returns the node the control is rendered into, or nil
func resolveContainer(container any, doc *Document) *xhtml.Node {
	switch v := container.(type) {
	case nil:
		return nil
	case bool:
		if v {
			slog.Warn("paginate container must be a selector or a node", "value", v)
		}
		return nil
	case *xhtml.Node:
		return v
	case string:
		if v == "" {
			return nil
		}
		if doc == nil {
			slog.Warn("paginate container not found", "selector", v, "err", dom.ErrNoDocument)
			return nil
		}
		n := doc.QuerySelector(v)
		if n == nil {
			slog.Warn("paginate container not found", "selector", v)
		}
		return n
	default:
		slog.Warn("paginate container must be a selector or a node", "type", reflect.TypeOf(container).String())
		return nil
	}
}

// Info returns the current page information
func (c *Controller) Info() PageInfo {
	return c.info
}

// Options returns a copy of the normalized options
func (c *Controller) Options() Options {
	return c.options
}

// Layout returns the page numbers the control shows for the current page
func (c *Controller) Layout() PageLayout {
	return c.engine.Layout(c.info)
}

// Entries returns the control entries for the current page
func (c *Controller) Entries() []ControlEntry {
	return render.BuildEntries(c.info, c.Layout(), c.options.style())
}

// CurrentItems returns the elements on the current page. It is empty when
// the item source is a plain count.
func (c *Controller) CurrentItems() []*xhtml.Node {
	return c.source.Slice(c.info.FirstItemIndex, c.info.LastItemIndex)
}

// SetPage selects page n, clamped to the valid range. It redraws the
// control, calls the page selected hook and shows the page's elements.
func (c *Controller) SetPage(n int) {
	c.info = c.engine.Info(n)

	if c.renderer != nil && (c.info.TotalPages > 1 || c.options.AlwaysShowControl) {
		c.renderer.RenderControl(c.info, c.engine.Layout(c.info))
	}

	if c.options.Debug {
		slog.Debug("page selected", "requested", n, "page", c.info.CurrentPage, "total_pages", c.info.TotalPages)
	}

	if c.options.OnPageSelected != nil {
		c.options.OnPageSelected(c.info)
	}

	// Read c.info again: the hook may have selected another page
	if c.source.Kind == items.KindElements && c.source.Total > 0 {
		c.source.Show(c.info.FirstItemIndex, c.info.LastItemIndex)
	}
}

// SetPageValue selects the page given by an untyped value such as a page
// tag read from markup. Values that are not integer-like select page 0.
func (c *Controller) SetPageValue(v any) {
	c.SetPage(coercePage(v))
}

// Next selects the page after the current one. It always moves by one page,
// whatever the increment step of the buttons.
func (c *Controller) Next() {
	c.SetPage(c.info.CurrentPage + 1)
}

// Prev selects the page before the current one
func (c *Controller) Prev() {
	c.SetPage(c.info.CurrentPage - 1)
}

// Redo applies opts on top of the current options, resolves the item source
// again and returns to the first page
func (c *Controller) Redo(opts ...Option) {
	previousTotal := c.info.TotalItemCount
	for _, opt := range opts {
		opt(&c.options)
	}
	c.configure(previousTotal)
	c.SetPage(0)
}

// HandleClick handles a click on target inside the control container. It
// selects the page tagged on target and reports whether it did.
func (c *Controller) HandleClick(target *xhtml.Node) bool {
	page, ok := htmlrender.PageFromClick(c.container, target)
	if !ok {
		return false
	}
	c.SetPageValue(page)
	return true
}

// coercePage converts v to a page number, defaulting to 0
func coercePage(v any) int {
	switch n := v.(type) {
	case int:
		return n
	case int8, int16, int32, int64:
		return int(reflect.ValueOf(n).Int())
	case uint, uint8, uint16, uint32, uint64:
		return int(reflect.ValueOf(n).Uint())
	case float32:
		return truncate(float64(n))
	case float64:
		return truncate(n)
	case string:
		return leadingInt(n)
	}
	return 0
}

func truncate(f float64) int {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return int(f)
}

// leadingInt parses the optionally signed integer prefix of s, like "12px" -> 12
func leadingInt(s string) int {
	s = strings.TrimSpace(s)
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0
	}
	return n
}
