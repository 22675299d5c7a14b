package api

import (
	"github.com/gompdf/pagelinks/internal/pagination"
	"github.com/gompdf/pagelinks/internal/render"
)

// Options represents the configuration of a pagination controller
type Options struct {
	// Items is the item source: a selector string (resolved against
	// Document), a []*html.Node collection, a slice or array of anything, or
	// an integer count.
	Items any
	// Document is queried for selector strings in Items and PaginateContainer
	Document *Document

	ItemsPerPage int
	StartingPage int

	// PaginateContainer is where the page-link control is rendered: a
	// selector string or an *html.Node. Nil renders nothing, which suits
	// callers that only read Info.
	PaginateContainer any

	// ClassName is applied to every control element
	ClassName string
	// Prefix is prepended to the secondary classes (skip, increment, divider, active, disabled)
	Prefix string

	// SkipLabels are the First/Last labels; nil hides the skip buttons
	SkipLabels []string
	// SkipLabelsInclusive keeps the numeric first and last page entries next to the skip buttons
	SkipLabelsInclusive bool
	// IncrementLabels are the Prev/Next labels; nil hides the increment buttons
	IncrementLabels []string
	// IncrementStep is how far the Prev/Next buttons jump
	IncrementStep int
	// Divider is placed between split page groups; empty hides it
	Divider string

	// AlwaysShowControl renders the control even for a single page
	AlwaysShowControl bool

	MarginPageCount int
	// CenterPageCount should be 3 or more
	CenterPageCount int

	// ElementTag is the element kind of control entries: div, span, a, li, th or td
	ElementTag string

	// Renderer replaces the built-in HTML control renderer
	Renderer ControlRenderer

	// Debug enables verbose logging
	Debug bool

	// Hooks
	OnPagesCreated func(totalPages int)
	OnPageSelected func(info PageInfo)
}

// Option is a function that modifies Options
type Option func(*Options)

// DefaultOptions returns the default options
func DefaultOptions() Options {
	return Options{
		ItemsPerPage: pagination.DefaultItemsPerPage,
		StartingPage: 0,

		ClassName: "page-link",
		Prefix:    "page-",

		SkipLabels:          []string{"First", "Last"},
		SkipLabelsInclusive: true,
		IncrementLabels:     []string{"Prev", "Next"},
		IncrementStep:       pagination.DefaultIncrementStep,
		Divider:             "...",

		AlwaysShowControl: false,

		MarginPageCount: pagination.DefaultMarginPageCount,
		CenterPageCount: pagination.DefaultCenterPageCount,

		ElementTag: render.DefaultTag,
	}
}

// WithItems sets the item source
func WithItems(items any) Option {
	return func(o *Options) {
		o.Items = items
	}
}

// WithItemCount sets the item source to a plain count
func WithItemCount(n int) Option {
	return WithItems(n)
}

// WithDocument sets the document selectors are resolved against
func WithDocument(doc *Document) Option {
	return func(o *Options) {
		o.Document = doc
	}
}

// WithItemsPerPage sets the page size
func WithItemsPerPage(n int) Option {
	return func(o *Options) {
		o.ItemsPerPage = n
	}
}

// WithStartingPage sets the page selected on construction
func WithStartingPage(page int) Option {
	return func(o *Options) {
		o.StartingPage = page
	}
}

// WithPaginateContainer sets where the control is rendered
func WithPaginateContainer(container any) Option {
	return func(o *Options) {
		o.PaginateContainer = container
	}
}

// WithClassName sets the class applied to every control element
func WithClassName(className string) Option {
	return func(o *Options) {
		o.ClassName = className
	}
}

// WithPrefix sets the prefix of the secondary classes
func WithPrefix(prefix string) Option {
	return func(o *Options) {
		o.Prefix = prefix
	}
}

// WithSkipLabels sets the First/Last labels. Called with no labels it hides them.
func WithSkipLabels(labels ...string) Option {
	return func(o *Options) {
		o.SkipLabels = labels
	}
}

// WithSkipLabelsInclusive sets whether page 1 and page n stay next to the skip buttons
func WithSkipLabelsInclusive(inclusive bool) Option {
	return func(o *Options) {
		o.SkipLabelsInclusive = inclusive
	}
}

// WithIncrementLabels sets the Prev/Next labels. Called with no labels it hides them.
func WithIncrementLabels(labels ...string) Option {
	return func(o *Options) {
		o.IncrementLabels = labels
	}
}

// WithIncrementStep sets how far the Prev/Next buttons jump
func WithIncrementStep(step int) Option {
	return func(o *Options) {
		o.IncrementStep = step
	}
}

// WithDivider sets the divider label; empty hides dividers
func WithDivider(divider string) Option {
	return func(o *Options) {
		o.Divider = divider
	}
}

// WithAlwaysShowControl renders the control even for a single page
func WithAlwaysShowControl(always bool) Option {
	return func(o *Options) {
		o.AlwaysShowControl = always
	}
}

// WithMarginPageCount sets how many pages are pinned at each end
func WithMarginPageCount(n int) Option {
	return func(o *Options) {
		o.MarginPageCount = n
	}
}

// WithCenterPageCount sets the width of the sliding window around the current page
func WithCenterPageCount(n int) Option {
	return func(o *Options) {
		o.CenterPageCount = n
	}
}

// WithElementTag sets the element kind of control entries
func WithElementTag(tag string) Option {
	return func(o *Options) {
		o.ElementTag = tag
	}
}

// WithRenderer sets a custom control renderer
func WithRenderer(r ControlRenderer) Option {
	return func(o *Options) {
		o.Renderer = r
	}
}

// WithDebug sets the debug mode
func WithDebug(debug bool) Option {
	return func(o *Options) {
		o.Debug = debug
	}
}

// WithOnPagesCreated sets the hook called once with the page count on construction
func WithOnPagesCreated(fn func(totalPages int)) Option {
	return func(o *Options) {
		o.OnPagesCreated = fn
	}
}

// WithOnPageSelected sets the hook called after every page change
func WithOnPageSelected(fn func(info PageInfo)) Option {
	return func(o *Options) {
		o.OnPageSelected = fn
	}
}
