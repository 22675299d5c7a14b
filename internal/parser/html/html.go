package html

import (
	"bytes"
	"errors"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// ErrNoDocument is returned when a query needs a document and none was given
var ErrNoDocument = errors.New("no document")

// Parser represents an HTML parser
type Parser struct{}

// Document represents a parsed HTML document.
// Nodes are the x/net/html nodes themselves so they can be moved in place.
type Document struct {
	Root *html.Node
}

// NewParser creates a new HTML parser
func NewParser() *Parser {
	return &Parser{}
}

// NewDocument wraps an existing node tree
func NewDocument(root *html.Node) *Document {
	return &Document{Root: root}
}

// ParseString parses HTML from a string
func (p *Parser) ParseString(content string) (*Document, error) {
	return p.Parse(strings.NewReader(content))
}

// Parse parses HTML from an io.Reader
func (p *Parser) Parse(r io.Reader) (*Document, error) {
	node, err := html.Parse(r)
	if err != nil {
		return nil, err
	}
	return &Document{Root: node}, nil
}

// QuerySelectorAll returns the elements matching selector in document order
func (d *Document) QuerySelectorAll(selector string) []*html.Node {
	if d == nil || d.Root == nil {
		return nil
	}
	selectors := parseSelectors(selector)
	if len(selectors) == 0 {
		return nil
	}

	var found []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			for _, sel := range selectors {
				if selectorMatches(n, sel) {
					found = append(found, n)
					break
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(d.Root)
	return found
}

// QuerySelector returns the first element matching selector, or nil
func (d *Document) QuerySelector(selector string) *html.Node {
	all := d.QuerySelectorAll(selector)
	if len(all) == 0 {
		return nil
	}
	return all[0]
}

// Render renders the document back to HTML
func (d *Document) Render(w io.Writer) error {
	if d == nil || d.Root == nil {
		return ErrNoDocument
	}
	return html.Render(w, d.Root)
}

// String renders the document to a string
func (d *Document) String() (string, error) {
	var buf bytes.Buffer
	if err := d.Render(&buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderNode renders a single node and its subtree
func RenderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
