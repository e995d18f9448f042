package testsupport

import (
	"strings"
	"testing"

	"golang.org/x/net/html"
)

// ParseHTML parses a fragment or document, failing the test on error.
func ParseHTML(t *testing.T, markup []byte) *html.Node {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(string(markup)))
	if err != nil {
		t.Fatalf("parse html: %v", err)
	}
	return doc
}

// CountElements counts elements with the given tag name below root, limited
// to descendants of the first element matching within (empty means root).
func CountElements(root *html.Node, within, tag string) int {
	scope := root
	if within != "" {
		scope = FindElement(root, within)
		if scope == nil {
			return 0
		}
	}
	count := 0
	walk(scope, func(n *html.Node) {
		if n != scope && n.Type == html.ElementNode && n.Data == tag {
			count++
		}
	})
	return count
}

// FindElement returns the first element with the given tag name.
func FindElement(root *html.Node, tag string) *html.Node {
	var found *html.Node
	walk(root, func(n *html.Node) {
		if found == nil && n.Type == html.ElementNode && n.Data == tag {
			found = n
		}
	})
	return found
}

// FindByAttr returns elements whose attribute key equals value.
func FindByAttr(root *html.Node, key, value string) []*html.Node {
	var out []*html.Node
	walk(root, func(n *html.Node) {
		if n.Type != html.ElementNode {
			return
		}
		for _, attr := range n.Attr {
			if attr.Key == key && attr.Val == value {
				out = append(out, n)
				return
			}
		}
	})
	return out
}

// Attr returns the attribute value of n, if any.
func Attr(n *html.Node, key string) (string, bool) {
	if n == nil {
		return "", false
	}
	for _, attr := range n.Attr {
		if attr.Key == key {
			return attr.Val, true
		}
	}
	return "", false
}

// Text returns the whitespace-normalised text content of n.
func Text(n *html.Node) string {
	if n == nil {
		return ""
	}
	var b strings.Builder
	walk(n, func(node *html.Node) {
		if node.Type == html.TextNode {
			b.WriteString(node.Data)
			b.WriteByte(' ')
		}
	})
	return strings.Join(strings.Fields(b.String()), " ")
}

func walk(n *html.Node, fn func(*html.Node)) {
	if n == nil {
		return
	}
	fn(n)
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c, fn)
	}
}
