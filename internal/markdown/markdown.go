// Package markdown provides goldmark-based analysis of Markdown bodies.
// It is an analysis API only; guidegen never re-renders Markdown.
package markdown

import (
	"strings"

	"github.com/yuin/goldmark"
	gmast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Heading is one ATX/setext heading found in a body.
type Heading struct {
	Level int
	Text  string
	Line  int // 1-based line of the heading's first segment, 0 if unknown
}

// ParseBody parses a Markdown body (frontmatter already removed) into a
// goldmark AST.
func ParseBody(body []byte) gmast.Node {
	md := goldmark.New()
	return md.Parser().Parse(text.NewReader(body))
}

// ExtractHeadings parses a Markdown body and returns its headings in
// document order.
func ExtractHeadings(body []byte) []Heading {
	root := ParseBody(body)

	headings := make([]Heading, 0)
	_ = gmast.Walk(root, func(n gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if !entering {
			return gmast.WalkContinue, nil
		}
		h, ok := n.(*gmast.Heading)
		if !ok {
			return gmast.WalkContinue, nil
		}
		headings = append(headings, Heading{
			Level: h.Level,
			Text:  nodeText(h, body),
			Line:  headingLine(h, body),
		})
		return gmast.WalkSkipChildren, nil
	})
	return headings
}

// nodeText collects the plain text of an inline subtree.
func nodeText(n gmast.Node, source []byte) string {
	var b strings.Builder
	_ = gmast.Walk(n, func(c gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if !entering {
			return gmast.WalkContinue, nil
		}
		switch node := c.(type) {
		case *gmast.Text:
			b.Write(node.Segment.Value(source))
			if node.SoftLineBreak() || node.HardLineBreak() {
				b.WriteByte(' ')
			}
		case *gmast.String:
			b.Write(node.Value)
		}
		return gmast.WalkContinue, nil
	})
	return b.String()
}

// headingLine derives the 1-based source line of a heading from its first
// text segment.
func headingLine(h *gmast.Heading, source []byte) int {
	if h.Lines().Len() == 0 {
		return 0
	}
	seg := h.Lines().At(0)
	line := 1
	for i := 0; i < seg.Start && i < len(source); i++ {
		if source[i] == '\n' {
			line++
		}
	}
	return line
}
