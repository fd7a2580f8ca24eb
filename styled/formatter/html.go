package formatter

import (
	"io"

	"github.com/npillmayer/gecview/styled"
	"github.com/npillmayer/gecview/styled/inline"
	"golang.org/x/net/html"
)

// HTML is a format for HTML output of highlighted text, suitable as the
// content of an editable element.
//
// Highlights are output as
//
//	<span class="spell" data-tooltip="Possible spelling mistake">shood</span>
//
// with class "spell" for spelling issues and "hl" for all others. A highlight
// of length zero is output as a placeholder span, marked with attribute
// data-empty. Line breaks of the text are output as <br>. Wrapping lines is
// left to the browser.
type HTML struct {
	TooltipMax int
}

// NewHTML creates an HTML formatter.
func NewHTML(tooltipMax int) *HTML {
	return &HTML{TooltipMax: tooltipMax}
}

// Print outputs a styled text as HTML.
func (h *HTML) Print(text *styled.Text, w io.Writer) error {
	return Output(text, w, &Config{TooltipMax: h.TooltipMax}, h)
}

// StyledText is called by the formatting driver to output a sequence of
// uniformly styled text (item).
// (Part of interface Format)
func (h *HTML) StyledText(s string, style styled.Style, w io.Writer) {
	hl, ok := inline.HighlightOf(style)
	if !ok {
		io.WriteString(w, html.EscapeString(s))
		return
	}
	io.WriteString(w, `<span class="`+hl.Class.String()+`" `+inline.TooltipAttr+`="`)
	io.WriteString(w, html.EscapeString(hl.Tooltip(h.TooltipMax)))
	if s == "" {
		io.WriteString(w, `" `+inline.EmptyAttr+`="true">`+styled.Placeholder)
	} else {
		io.WriteString(w, `">`+html.EscapeString(s))
	}
	io.WriteString(w, "</span>")
}

// Preamble is called by the output driver before a text will be formatted.
// (Part of interface Format)
func (h *HTML) Preamble(w io.Writer) {}

// Postamble will be called after a text has been formatted.
// (Part of interface Format)
func (h *HTML) Postamble(w io.Writer) {}

// Line is a signal from the output driver that a new line is to be output.
// Does nothing.
// (Part of interface Format)
func (h *HTML) Line(length int, linelength int, w io.Writer) {}

// Wrap does nothing, as browsers wrap lines by themselves.
// (Part of interface Format)
func (h *HTML) Wrap(w io.Writer) {}

// Newline will be called at the end of every line of text.
// It outputs a `<br>` tag.
// (Part of interface Format)
func (h *HTML) Newline(w io.Writer) {
	io.WriteString(w, "<br>")
}
