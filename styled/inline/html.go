package inline

import (
	"io"
	"strings"

	"github.com/npillmayer/gecview"
	"github.com/npillmayer/gecview/styled"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Attributes written by display surfaces and recognized when reading back.
const (
	TooltipAttr = "data-tooltip" // hover text of a highlight
	EmptyAttr   = "data-empty"   // element holds a placeholder, not text
)

const nbsp = "\u00a0"

// InnerText creates a styled text for the textual content of an HTML element and all
// its descendents. It resembles the text produced by
//
//	document.getElementById("myNode").innerText
//
// in JavaScript, except that `InnerText` cannot respect CSS styling (including
// properties changing the visibility of the node's descendents).
//
// Block elements (paragraphs, divs, list items, …) and <br> elements result in
// newline characters. A block holding nothing but a non-breaking space is an
// empty line. Content of elements marked with attribute data-empty is dropped.
// Spans with a highlight class ("spell" or "hl") result in runs styled with a
// Highlight, carrying the tooltip as message.
func InnerText(n *html.Node) (*styled.Text, error) {
	if n == nil {
		return nil, gecview.ErrIllegalArguments
	}
	c := &collector{}
	c.collect(n, nil)
	return c.text(), nil
}

// TextFromHTML creates a styled.Text from the textual content of an HTML fragment.
// The HTML fragment should reflect the content of a block element, e.g. an
// editable <div>.
func TextFromHTML(input io.Reader) (*styled.Text, error) {
	body := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(input, body)
	if err != nil {
		return nil, err
	}
	c := &collector{}
	for _, n := range nodes {
		c.collect(n, nil)
	}
	return c.text(), nil
}

// fragment is either a piece of text or a request for a line break, produced
// by a block boundary.
type fragment struct {
	text  string
	style styled.Style
	brk   bool
}

type collector struct {
	frags []fragment
}

func (c *collector) collect(n *html.Node, style styled.Style) {
	switch n.Type {
	case html.TextNode:
		tracer().Debugf("styled inline text = %q (%v)", n.Data, style)
		c.frags = append(c.frags, fragment{text: n.Data, style: style})
		return
	case html.ElementNode:
		switch n.DataAtom {
		case atom.Script, atom.Style, atom.Head, atom.Title:
			return
		case atom.Br:
			c.frags = append(c.frags, fragment{text: "\n"})
			return
		}
		if class := ClassFromName(attr(n, "class")); class != PlainClass {
			style = Highlight{Class: class, Message: attr(n, TooltipAttr)}
		}
		if attr(n, EmptyAttr) != "" {
			if style != nil {
				c.frags = append(c.frags, fragment{style: style})
			}
			return
		}
		if isBlock(n) {
			c.block(n, style)
			return
		}
	}
	for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
		c.collect(ch, style)
	}
}

func (c *collector) block(n *html.Node, style styled.Style) {
	c.frags = append(c.frags, fragment{brk: true})
	start := len(c.frags)
	for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
		c.collect(ch, style)
	}
	if last := len(c.frags) - 1; last >= start && c.frags[last].text == "\n" && c.frags[last].style == nil {
		// a trailing <br> does not open a new line within a block
		c.frags = c.frags[:last]
	}
	if blank(c.frags[start:]) {
		c.frags = append(c.frags[:start], fragment{}) // an empty line
	}
	c.frags = append(c.frags, fragment{brk: true})
}

// blank is true for block content which displays as an empty line.
func blank(content []fragment) bool {
	var b strings.Builder
	for _, f := range content {
		if f.style != nil {
			return false
		}
		b.WriteString(f.text)
	}
	return b.Len() == 0 || b.String() == nbsp
}

// text assembles the styled text from the collected fragments. Consecutive
// line break requests collapse into a single newline, leading and trailing
// ones are dropped.
func (c *collector) text() *styled.Text {
	b := styled.NewTextBuilder()
	var plain strings.Builder
	flush := func() {
		if plain.Len() > 0 {
			b.Append(plain.String(), nil)
			plain.Reset()
		}
	}
	started, pending := false, false
	for _, f := range c.frags {
		if f.brk {
			pending = started
			continue
		}
		if pending {
			plain.WriteString("\n")
			pending = false
		}
		started = true
		if f.style == nil {
			plain.WriteString(f.text)
			continue
		}
		flush()
		b.Append(f.text, f.style)
	}
	flush()
	return b.Text()
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func isBlock(n *html.Node) bool {
	switch n.DataAtom {
	case atom.P, atom.Div, atom.Li, atom.Ul, atom.Ol, atom.Pre, atom.Blockquote,
		atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6,
		atom.Section, atom.Article, atom.Body, atom.Html:
		return true
	}
	return false
}
