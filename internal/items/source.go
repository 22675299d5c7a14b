// Package items resolves the item source of a pagination into a count and,
// for element collections, the nodes that make up each page.
package items

import (
	"fmt"
	"log/slog"
	"math"
	"reflect"

	dom "github.com/gompdf/pagelinks/internal/parser/html"
	"golang.org/x/net/html"
)

// Kind identifies what an item source resolved to
type Kind int

const (
	// KindNone is an unusable source
	KindNone Kind = iota
	// KindCount only knows how many items there are
	KindCount
	// KindElements holds the element nodes being paginated
	KindElements
)

func (k Kind) String() string {
	switch k {
	case KindCount:
		return "count"
	case KindElements:
		return "elements"
	default:
		return "none"
	}
}

// Source is a resolved item source
type Source struct {
	Kind  Kind
	Total int

	nodes []*html.Node
	// parent of the first element at resolution time
	parent *html.Node
}

// Count returns a source of n items with no elements attached
func Count(n int) Source {
	if n < 0 {
		n = 0
	}
	return Source{Kind: KindCount, Total: n}
}

// Elements returns a source over nodes. The container shown pages are moved
// into is the parent of the first node.
func Elements(nodes []*html.Node) Source {
	s := Source{Kind: KindElements, Total: len(nodes), nodes: nodes}
	if len(nodes) > 0 {
		s.parent = nodes[0].Parent
	}
	return s
}

// Resolve normalizes items into a Source. Accepted values are a selector
// string (queried against doc), a []*html.Node collection, an integer count,
// a pre-resolved Source, or any other slice or array (counted by length).
// Anything else logs a warning and reports false.
func Resolve(items any, doc *dom.Document) (Source, bool) {
	switch v := items.(type) {
	case Source:
		return v, v.Kind != KindNone
	case *Source:
		if v == nil {
			break
		}
		return *v, v.Kind != KindNone
	case string:
		if doc == nil {
			slog.Warn("nothing to show for items", "selector", v, "err", dom.ErrNoDocument)
			return Source{}, false
		}
		return Elements(doc.QuerySelectorAll(v)), true
	case []*html.Node:
		return Elements(v), true
	case int:
		return Count(v), true
	case int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return Count(int(reflect.ValueOf(v).Convert(reflect.TypeOf(0)).Int())), true
	case float32:
		return countFromFloat(float64(v))
	case float64:
		return countFromFloat(v)
	}

	if items != nil {
		rv := reflect.ValueOf(items)
		if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
			return Count(rv.Len()), true
		}
	}

	slog.Warn("nothing to show for items", "type", fmt.Sprintf("%T", items))
	return Source{}, false
}

func countFromFloat(f float64) (Source, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		slog.Warn("nothing to show for items", "value", f)
		return Source{}, false
	}
	return Count(int(f)), true
}

// Len returns the number of elements held, zero for count sources
func (s Source) Len() int {
	return len(s.nodes)
}

// At returns the element at index i, or nil when out of range
func (s Source) At(i int) *html.Node {
	if i < 0 || i >= len(s.nodes) {
		return nil
	}
	return s.nodes[i]
}

// Parent returns the container the elements are shown in
func (s Source) Parent() *html.Node {
	return s.parent
}

// Slice returns the elements in the inclusive range [first, last]
func (s Source) Slice(first, last int) []*html.Node {
	first = max(first, 0)
	last = min(last, len(s.nodes)-1)
	if first > last {
		return nil
	}
	out := make([]*html.Node, 0, last-first+1)
	out = append(out, s.nodes[first:last+1]...)
	return out
}

// Show replaces the contents of the parent container with the elements in
// [first, last]. It does nothing for count sources or empty collections.
func (s Source) Show(first, last int) {
	if s.Kind != KindElements || len(s.nodes) == 0 || s.parent == nil {
		return
	}
	dom.Empty(s.parent)
	for _, n := range s.Slice(first, last) {
		dom.Detach(n)
		s.parent.AppendChild(n)
	}
}
