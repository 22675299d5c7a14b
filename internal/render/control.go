// Package render turns a computed page layout into the ordered entries of a
// page-link control. Output formats live in the html and pdf subpackages.
package render

import (
	"slices"
	"strconv"

	"github.com/gompdf/pagelinks/internal/pagination"
)

// EntryKind identifies the role of a control entry
type EntryKind int

const (
	EntryPage EntryKind = iota
	EntrySkip
	EntryIncrement
	EntryDivider
)

// DefaultTag is the element kind used when the configured one is not allowed
const DefaultTag = "span"

var allowedTags = []string{"div", "span", "a", "li", "th", "td"}

// ValidateTag returns tag if it is an allowed element kind, DefaultTag otherwise
func ValidateTag(tag string) string {
	if slices.Contains(allowedTags, tag) {
		return tag
	}
	return DefaultTag
}

// Style holds the labels and class names used to build entries
type Style struct {
	ClassName string
	Prefix    string
	// SkipLabels are the First/Last labels; fewer than two hides them.
	SkipLabels []string
	// SkipLabelsInclusive keeps the numeric first and last page entries
	// when the skip buttons are shown.
	SkipLabelsInclusive bool
	// IncrementLabels are the Prev/Next labels; fewer than two hides them.
	IncrementLabels []string
	// Divider is the label placed between split groups; empty hides it.
	Divider string
}

// Entry is a single element of the page-link control
type Entry struct {
	Kind  EntryKind
	Label string
	// Page is the target page; only meaningful when Clickable.
	Page      int
	Clickable bool
	Disabled  bool
	Active    bool
	Classes   []string
}

// BuildEntries lays out the control in display order:
// first, prev, left margin, divider, center, divider, right margin, next, last.
func BuildEntries(info pagination.Info, layout pagination.Layout, style Style) []Entry {
	b := builder{info: info, style: style}
	showSkip := len(style.SkipLabels) >= 2
	showIncrement := len(style.IncrementLabels) >= 2

	if showSkip {
		b.button(EntrySkip, 0, style.SkipLabels[0], style.Prefix+"skip", info.IsFirstPage)
	}
	if showIncrement {
		b.button(EntryIncrement, info.PrevTarget, style.IncrementLabels[0], style.Prefix+"increment", info.IsFirstPage)
	}

	hideEnds := showSkip && !style.SkipLabelsInclusive

	if !info.IsNearStart {
		b.pages(layout.LeftMarginPages, hideEnds)
		b.divider()
	}

	b.pages(layout.CenterPages, hideEnds)

	if !info.IsNearEnd {
		b.divider()
		b.pages(layout.RightMarginPages, hideEnds)
	}

	if showIncrement {
		b.button(EntryIncrement, info.NextTarget, style.IncrementLabels[1], style.Prefix+"increment", info.IsLastPage)
	}
	if showSkip {
		b.button(EntrySkip, info.TotalPages-1, style.SkipLabels[1], style.Prefix+"skip", info.IsLastPage)
	}

	return b.entries
}

type builder struct {
	info    pagination.Info
	style   Style
	entries []Entry
}

func (b *builder) pages(pages []int, hideEnds bool) {
	for _, p := range pages {
		if hideEnds && (p == 0 || p == b.info.TotalPages-1) {
			continue
		}
		b.add(Entry{Kind: EntryPage, Label: strconv.Itoa(p + 1), Page: p, Clickable: true}, "")
	}
}

func (b *builder) button(kind EntryKind, page int, label, class string, disabled bool) {
	b.add(Entry{Kind: kind, Label: label, Page: page, Clickable: !disabled, Disabled: disabled}, class)
}

func (b *builder) divider() {
	if b.style.Divider == "" {
		return
	}
	b.add(Entry{Kind: EntryDivider, Label: b.style.Divider}, b.style.Prefix+"divider")
}

func (b *builder) add(e Entry, class string) {
	if b.style.ClassName != "" {
		e.Classes = append(e.Classes, b.style.ClassName)
	}
	if class != "" {
		e.Classes = append(e.Classes, class)
	}
	if e.Disabled {
		e.Classes = append(e.Classes, b.style.Prefix+"disabled")
	} else if e.Clickable && e.Page == b.info.CurrentPage {
		e.Active = true
		e.Classes = append(e.Classes, b.style.Prefix+"active")
	}
	if !e.Clickable {
		e.Page = 0
	}
	b.entries = append(b.entries, e)
}

// Labels returns the label of every entry, marking the active one with brackets
func Labels(entries []Entry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.Active {
			out = append(out, "["+e.Label+"]")
			continue
		}
		out = append(out, e.Label)
	}
	return out
}
