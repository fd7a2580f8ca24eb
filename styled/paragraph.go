package styled

import (
	"io"
	"strings"
	"unicode/utf8"

	"github.com/npillmayer/gecview"
	"github.com/npillmayer/gecview/metrics"
)

// Paragraph represents a styled paragraph of text. It usually is a substring of
// a styled text, but differs from a text insofar as it may be prepared for output.
// Output of styled text may include breaking up paragraphs into lines.
//
// After a styled paragraph has been created, e.g., by copying out a section from
// a styled text, it's textual content is not to change any more. However, it is
// allowed to change styles for spans of a paragraph's text.
//
// Offset is the paragraph's start position in terms of rune positions of the
// embedding text. It is provided when creating a paragraph and held solely for a
// client's bookkeeping purposes.
type Paragraph struct {
	text   *Text // a Paragraph is a styled text
	Offset int   // the paragraph's start position in terms of positions of the embedding text.
	cutoff int   // cut off text due to line wrapping
}

// ParagraphFromText creates a styled paragraph from a segment of a styled text.
// Parameters `from` and `to` denote the segment.
//
// A paragraph remembers the `from` parameter in member `Offset`.
func ParagraphFromText(text *Text, from, to int) (*Paragraph, error) {
	para := &Paragraph{Offset: from}
	if from == 0 && to == text.Len() {
		para.text = text
	} else {
		var err error
		if para.text, err = Section(text, from, to); err != nil {
			return nil, err
		}
	}
	return para, nil
}

// Lines breaks a styled text into paragraphs at newline characters. The
// newline characters themselves are not part of any paragraph; clients
// re-create them by outputting a line break between consecutive paragraphs.
// A text with n newline characters results in n+1 paragraphs.
func Lines(text *Text) ([]*Paragraph, error) {
	if text == nil {
		return nil, gecview.ErrIllegalArguments
	}
	raw := text.Raw()
	value, err := metrics.Lines().Apply(raw, 0, len(raw))
	if err != nil {
		return nil, err
	}
	paras := make([]*Paragraph, 0, value.LineCount())
	pos := 0 // rune position of the current line
	for _, line := range value.Spans {
		n := text.runeCount(line.Pos, line.End())
		para, err := ParagraphFromText(text, pos, pos+n)
		if err != nil {
			return nil, err
		}
		paras = append(paras, para)
		pos += n + 1 // skip newline
	}
	return paras, nil
}

// runeCount counts the runes within a range of byte positions.
func (t *Text) runeCount(from, to int) int {
	if t.bounds == nil {
		return to - from
	}
	return utf8.RuneCountInString(t.text[from:to])
}

// Style styles a run of text of a styled paragraph, given the start and end position.
func (para *Paragraph) Style(style Style, from, to int) *Paragraph {
	para.text.Style(style, from, to)
	return para
}

// Raw returns the underlying raw text of the paragraph.
func (para *Paragraph) Raw() string {
	return para.text.Raw()
}

// Len returns the length of the paragraph's remaining text in runes.
func (para *Paragraph) Len() int {
	return para.text.Len()
}

// StyleAt returns the active style at text position pos, together with the
// start position of the style run.
func (para *Paragraph) StyleAt(pos int) (Style, int, error) {
	return para.text.StyleAt(pos)
}

// EachStyleRun applies a function to each run of a single style.
// pos is the text position of this run of text within the overall
// styled text, i.e., it included para.Offset.
func (para *Paragraph) EachStyleRun(f func(content string, sty Style, pos, length int) error) error {
	t := para.text
	if t == nil {
		return nil
	}
	for _, r := range t.styles() {
		if err := f(t.slice(r.pos, r.end()), r.style, r.pos+para.Offset+para.cutoff, r.length); err != nil {
			return err
		}
	}
	return nil
}

// StyleRuns returns a slice of style runs for a styled paragraph, positioned
// relative to the embedding text.
func (para *Paragraph) StyleRuns() []StyleChange {
	return para.text.styleRuns(para.Offset + para.cutoff)
}

// Text returns the styled text of the paragraph (without any part already
// split off by WrapAt).
func (para *Paragraph) Text() *Text {
	return para.text
}

// Reader returns an io.Reader for the raw text of the paragraph (without styles).
func (para *Paragraph) Reader() io.Reader {
	return strings.NewReader(para.text.Raw())
}

// WrapAt splits off a front segment (usually a “line”) from a paragraph.
// pos is relative to the start of the paragraph as it was created, i.e.,
// positions do not shift when lines are split off.
// Runs of length zero located at the split position stay with the front segment.
func (para *Paragraph) WrapAt(pos int) (*Text, error) {
	pos -= para.cutoff
	if pos < 0 || pos > para.text.Len() {
		return nil, gecview.ErrIndexOutOfBounds
	}
	line, err := Section(para.text, 0, pos)
	if err != nil {
		return nil, err
	}
	rest, err := Section(para.text, pos, para.text.Len())
	if err != nil {
		return nil, err
	}
	if len(rest.runs) > 0 && rest.runs[0].length == 0 && rest.runs[0].pos == 0 {
		i := 0
		for i < len(rest.runs) && rest.runs[i].length == 0 && rest.runs[i].pos == 0 {
			i++
		}
		rest.runs = rest.runs[i:]
	}
	para.text = rest
	para.cutoff += pos
	tracer().Debugf("paragraph: wrapped line of length %d, %d remaining", line.Len(), rest.Len())
	return line, nil
}
