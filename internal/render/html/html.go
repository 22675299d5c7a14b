package html

import (
	"strconv"

	dom "github.com/gompdf/pagelinks/internal/parser/html"
	"github.com/gompdf/pagelinks/internal/render"
	xhtml "golang.org/x/net/html"
)

// PageAttr is the attribute carrying the target page of a clickable element
const PageAttr = "data-page"

// Renderer writes page-link controls into a container element
type Renderer struct {
	Container *xhtml.Node
	// Tag is the element kind created for each entry
	Tag string
}

// NewRenderer creates a renderer for container, validating tag
func NewRenderer(container *xhtml.Node, tag string) *Renderer {
	return &Renderer{
		Container: container,
		Tag:       render.ValidateTag(tag),
	}
}

// Render replaces the contents of the container with one element per entry
func (r *Renderer) Render(entries []render.Entry) {
	if r.Container == nil {
		return
	}
	dom.Empty(r.Container)
	for _, e := range entries {
		r.Container.AppendChild(r.element(e))
	}
}

// element creates the node for a single entry
func (r *Renderer) element(e render.Entry) *xhtml.Node {
	tag := r.Tag
	if tag == "" {
		tag = render.DefaultTag
	}
	el := dom.NewElement(tag)
	if len(e.Classes) > 0 {
		dom.AddClass(el, e.Classes...)
	}
	if e.Clickable {
		dom.SetAttr(el, PageAttr, strconv.Itoa(e.Page))
	}
	el.AppendChild(dom.NewText(e.Label))
	return el
}

// PageFromClick returns the page tag of target when the click happened
// inside container. Only the clicked node itself is inspected.
func PageFromClick(container, target *xhtml.Node) (string, bool) {
	if container == nil || target == nil || !dom.Contains(container, target) {
		return "", false
	}
	return dom.Attr(target, PageAttr)
}
