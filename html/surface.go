package html

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/npillmayer/gecview/styled"
	"github.com/npillmayer/gecview/styled/formatter"
	"github.com/npillmayer/gecview/styled/inline"
	"golang.org/x/net/html"
)

// Surface is an HTML display surface. It is safe for concurrent use.
type Surface struct {
	mx       sync.Mutex
	format   *formatter.HTML
	fragment string
}

// NewSurface creates an empty HTML surface. tooltipMax limits the length
// of tooltips; <= 0 selects the default.
func NewSurface(tooltipMax int) *Surface {
	return &Surface{format: formatter.NewHTML(tooltipMax)}
}

// SetPlainText replaces the content by an undecorated text, one paragraph per
// line. Empty lines hold a non-breaking space to keep them editable.
func (s *Surface) SetPlainText(text string) error {
	var b strings.Builder
	for _, line := range strings.Split(text, "\n") {
		b.WriteString("<p>")
		if line == "" {
			b.WriteString("&nbsp;")
		} else {
			b.WriteString(html.EscapeString(line))
		}
		b.WriteString("</p>")
	}
	s.setHTML(b.String())
	return nil
}

// Render replaces the content by a decorated text.
func (s *Surface) Render(t *styled.Text) error {
	var buf bytes.Buffer
	if err := s.format.Print(t, &buf); err != nil {
		return err
	}
	s.setHTML(buf.String())
	return nil
}

// ReadPlainText returns the plain text of the content, with line breaks as
// newline characters.
func (s *Surface) ReadPlainText() (string, error) {
	text, err := inline.TextFromHTML(strings.NewReader(s.HTML()))
	if err != nil {
		tracer().Errorf("html surface: cannot read back content: %v", err)
		return "", err
	}
	return text.Raw(), nil
}

// Clear blanks the surface.
func (s *Surface) Clear() error {
	s.setHTML("")
	return nil
}

// SetHTML replaces the content by an HTML fragment, e.g. after a user has edited
// the editable element.
func (s *Surface) SetHTML(fragment string) {
	s.setHTML(fragment)
}

func (s *Surface) setHTML(fragment string) {
	s.mx.Lock()
	defer s.mx.Unlock()
	tracer().Debugf("html surface: content of %d bytes", len(fragment))
	s.fragment = fragment
}

// HTML returns the content as an HTML fragment.
func (s *Surface) HTML() string {
	s.mx.Lock()
	defer s.mx.Unlock()
	return s.fragment
}

const documentTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>%s</title>
<style>
#editor { white-space: pre-wrap; font-family: sans-serif; line-height: 1.5; }
#editor p { margin: 0; }
.spell, .hl { position: relative; cursor: help; }
.spell { text-decoration: underline wavy #d33; }
.hl { background: #fff2a8; }
.spell:hover::after, .hl:hover::after {
  content: attr(data-tooltip); position: absolute; left: 0; top: 1.6em; z-index: 1;
  max-width: 28em; padding: .3em .5em; background: #333; color: #fff; font-size: .85em;
  white-space: normal;
}
</style>
</head>
<body>
<div id="editor" contenteditable="true">%s</div>
</body>
</html>
`

// WriteDocument writes a standalone HTML page showing the content in an
// editable element, with tooltips for highlights.
func (s *Surface) WriteDocument(w io.Writer, title string) error {
	_, err := fmt.Fprintf(w, documentTemplate, html.EscapeString(title), s.HTML())
	return err
}
