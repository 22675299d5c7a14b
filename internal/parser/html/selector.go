package html

import (
	"strings"

	"golang.org/x/net/html"
)

// parseSelectors splits a comma-separated selector list
func parseSelectors(selectorStr string) []string {
	selectors := strings.Split(selectorStr, ",")
	result := make([]string, 0, len(selectors))

	for _, selector := range selectors {
		selector = strings.TrimSpace(selector)
		if selector != "" {
			result = append(result, selector)
		}
	}

	return result
}

// Matches reports whether node matches any selector in the list
func Matches(node *html.Node, selector string) bool {
	for _, sel := range parseSelectors(selector) {
		if selectorMatches(node, sel) {
			return true
		}
	}
	return false
}

// selectorMatches checks if an element matches a descendant selector
func selectorMatches(node *html.Node, selector string) bool {
	parts := strings.Fields(selector)
	if len(parts) == 0 || node == nil {
		return false
	}
	if !matchCompoundSelector(node, parts[len(parts)-1]) {
		return false
	}

	current := node.Parent
	for i := len(parts) - 2; i >= 0; i-- {
		found := false
		for anc := current; anc != nil; anc = anc.Parent {
			if anc.Type == html.ElementNode && matchCompoundSelector(anc, parts[i]) {
				found = true
				current = anc.Parent
				break
			}
		}
		if !found {
			return false
		}
	}

	return true
}

// matchCompoundSelector matches a single compound selector against a node.
// Compound selectors can be forms like:
//   - tag
//   - .class
//   - #id
//   - tag.class
//   - tag#id.class1.class2
//   - .class1.class2
//
// It does not support attributes, pseudo-classes, or combinators.
func matchCompoundSelector(node *html.Node, sel string) bool {
	if node == nil || node.Type != html.ElementNode || sel == "" {
		return false
	}

	var wantTag string
	var wantID string
	var wantClasses []string

	i := 0
	if sel[i] != '.' && sel[i] != '#' {
		j := i
		for j < len(sel) && sel[j] != '#' && sel[j] != '.' {
			j++
		}
		wantTag = strings.ToLower(sel[i:j])
		i = j
	}
	for i < len(sel) {
		j := i + 1
		for j < len(sel) && sel[j] != '.' && sel[j] != '#' {
			j++
		}
		switch sel[i] {
		case '#':
			wantID = sel[i+1 : j]
		case '.':
			wantClasses = append(wantClasses, sel[i+1:j])
		default:
			return false
		}
		i = j
	}

	if wantTag != "" && wantTag != node.Data && wantTag != "*" {
		return false
	}

	if wantID != "" {
		if id, ok := Attr(node, "id"); !ok || id != wantID {
			return false
		}
	}

	for _, need := range wantClasses {
		if !HasClass(node, need) {
			return false
		}
	}

	return true
}
