// internal/markup/flatten.go
//
// Flattens HTML fragments from the dictionaries into Discord markdown.
// The walk is depth-first pre-order: element nodes fold their tag and
// class declarations onto the running style, text nodes are emitted with
// the resolved style. Comments, doctypes and the like are skipped.

package markup

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Flatten parses fragment as HTML body content and renders it with
// initial as the outermost declaration.
func Flatten(fragment string, initial Style) string {
	s, _ := flatten(fragment, initial, 0)
	return s
}

// FlattenLimit is Flatten keeping at most n bytes of text. Styles open at
// the cut are closed. It reports whether text was dropped.
func FlattenLimit(fragment string, initial Style, n int) (string, bool) {
	return flatten(fragment, initial, n)
}

func flatten(fragment string, initial Style, limit int) (string, bool) {
	ctx := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(strings.NewReader(fragment), ctx)
	if err != nil {
		// The HTML5 parser only fails on reader errors; a strings.Reader has none.
		return fragment, false
	}
	var b TextBuilder
	b.SetLimit(limit)
	for _, n := range nodes {
		walk(&b, n, initial)
	}
	return b.String(), b.Truncated()
}

// FlattenChildren renders the children of an already parsed node.
func FlattenChildren(n *html.Node, initial Style) string {
	var b TextBuilder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(&b, c, initial)
	}
	return b.String()
}

func walk(b *TextBuilder, n *html.Node, style Style) {
	switch n.Type {
	case html.TextNode:
		b.WriteString(n.Data, style.Calculate())
	case html.ElementNode:
		el := ElementStyle(n, style)
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(b, c, el)
		}
		if el.NewlineFollows {
			b.WriteString("\n", el.Calculate())
		}
	}
}

// ElementStyle computes the declaration in effect inside element n whose
// parent declaration is parent. Class declarations apply after the tag's.
func ElementStyle(n *html.Node, parent Style) Style {
	tag := FromElementName(n.Data)
	s := tag.Over(parent)
	newline := tag.NewlineFollows
	for _, class := range Classes(n) {
		c := FromClass(class)
		s = c.Over(s)
		newline = newline || c.NewlineFollows
	}
	s.NewlineFollows = newline
	return s
}

// Classes returns the whitespace-separated class names of n.
func Classes(n *html.Node) []string {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == "class" {
			return strings.Fields(a.Val)
		}
	}
	return nil
}

// HasClass reports whether element n carries class.
func HasClass(n *html.Node, class string) bool {
	for _, c := range Classes(n) {
		if c == class {
			return true
		}
	}
	return false
}
