package styled

import (
	"strings"
	"unicode/utf8"

	"github.com/npillmayer/gecview"
)

// ErrTextCompleted signals that a text builder has already completed a text and
// it's illegal to further add fragments.
const ErrTextCompleted = gecview.Error("forbidden to add fragments; text has been completed")

// TextBuilder is for building styled text from style runs.
type TextBuilder struct {
	buf    strings.Builder
	length int
	done   bool
	runs   runs
}

// NewTextBuilder creates a new and empty builder for styled.Text.
func NewTextBuilder() *TextBuilder {
	return &TextBuilder{}
}

// Text returns the styled text which this builder is holding up to now.
// It is illegal to continue adding fragments after `Text` has been called,
// but `Text` may be called multiple times.
func (b *TextBuilder) Text() *Text {
	b.done = true
	text := TextFromString(b.buf.String())
	if !b.runs.styled() {
		tracer().Debugf("text builder: no styles applied")
		return text
	}
	text.runs = append(runs(nil), b.runs...)
	return text
}

// Append appends a text fragment with a given style at the end of the text to
// build. An empty fragment is dropped, unless it carries a style; in that case
// it results in a style run of length zero.
func (b *TextBuilder) Append(fragment string, style Style) error {
	if b.done {
		return ErrTextCompleted
	}
	if fragment == "" && style == nil {
		return nil
	}
	n := utf8.RuneCountInString(fragment)
	b.buf.WriteString(fragment)
	b.runs = append(b.runs, styleRun{style: style, pos: b.length, length: n})
	b.length += n
	return nil
}

func (r runs) styled() bool {
	for _, run := range r {
		if run.style != nil {
			return true
		}
	}
	return false
}
