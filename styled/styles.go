package styled

import (
	"fmt"
	"iter"
	"strings"
	"unicode/utf8"

	"github.com/npillmayer/gecview"
)

// Placeholder is output in place of a styled run of length zero, so that the
// run stays visible.
const Placeholder = " "

// --- Styled Text -----------------------------------------------------------

// Text is a styled text. Its text and its styles are automatically synchronized.
type Text struct {
	text   string
	length int   // length in runes
	bounds []int // byte offset of each rune position; nil for ASCII-only text
	runs   runs
}

// TextFromString creates a stylable text from a string.
func TextFromString(s string) *Text {
	t := &Text{text: s}
	t.length = utf8.RuneCountInString(s)
	if t.length != len(s) {
		t.bounds = make([]int, 0, t.length+1)
		for i := range s {
			t.bounds = append(t.bounds, i)
		}
		t.bounds = append(t.bounds, len(s))
	}
	return t
}

// Raw returns the text without any styles.
func (t *Text) Raw() string {
	if t == nil {
		return ""
	}
	return t.text
}

// Len returns the length of the text in runes.
func (t *Text) Len() int {
	if t == nil {
		return 0
	}
	return t.length
}

// Project returns the plain text underlying a styled text, dropping all styles.
// For every text s and every set of styles applied to it,
//
//	Project(styled text of s) == s
func Project(t *Text) string {
	var b strings.Builder
	_ = t.EachStyleRun(func(content string, _ Style, _ int) error {
		b.WriteString(content)
		return nil
	})
	return b.String()
}

// IsStyled returns true if at least one run of the text carries a style.
func (t *Text) IsStyled() bool {
	return t != nil && t.runs.styled()
}

// byteOffset converts a rune position into a byte position.
func (t *Text) byteOffset(pos int) int {
	if t.bounds == nil {
		return pos
	}
	return t.bounds[pos]
}

// slice returns the content of [from…to), given as rune positions.
func (t *Text) slice(from, to int) string {
	return t.text[t.byteOffset(from):t.byteOffset(to)]
}

// styles returns the text's style runs. If no style has been applied yet,
// a single unstyled run covers the complete text.
func (t *Text) styles() runs {
	if len(t.runs) == 0 && t.length > 0 {
		return runs{{pos: 0, length: t.length}}
	}
	return t.runs
}

// StyleAt returns the style at rune position pos of the styled text, together
// with the start position of the style run containing pos.
func (t *Text) StyleAt(pos int) (Style, int, error) {
	if t == nil || pos < 0 || pos >= t.length {
		return nil, pos, gecview.ErrIndexOutOfBounds
	}
	for _, r := range t.styles() {
		if pos >= r.pos && pos < r.end() {
			return r.style, r.pos, nil
		}
	}
	return nil, pos, gecview.ErrIndexOutOfBounds
}

// EachStyleRun applies a function to each run of a single style.
// pos is the text position of this run of text within the overall
// styled text.
//
// This may be thought of as a “push”-interface to access style runs for a text.
// For a “pull”-interface please refer to interface `itemized.Iterator`.
func (t *Text) EachStyleRun(f func(content string, sty Style, pos int) error) error {
	if t == nil {
		return nil
	}
	for _, r := range t.styles() {
		if err := f(t.slice(r.pos, r.end()), r.style, r.pos); err != nil {
			return err
		}
	}
	return nil
}

// RangeStyleRun iterates over the contents and styles of the style runs.
func (t *Text) RangeStyleRun() iter.Seq2[string, Style] {
	return func(yield func(string, Style) bool) {
		if t == nil {
			return
		}
		for _, r := range t.styles() {
			if !yield(t.slice(r.pos, r.end()), r.style) {
				return
			}
		}
	}
}

// Style styles a run of text, given the start and end position.
// Existing styles of the run are replaced. Given range boundaries will silently
// be restricted to valid text positions without flagging an error.
//
// from == to is legal and inserts a run of length zero at position from.
func (t *Text) Style(sty Style, from, to int) *Text {
	spn := toSpan(from, to).contained(t.length)
	t.runs = t.styles().overlay(sty, spn)
	return t
}

// Section copies a piece of styled text, delimited by parameters from and to.
// Runs of length zero are included if they are positioned within [from…to].
func Section(t *Text, from, to int) (*Text, error) {
	if t == nil || from < 0 || to < from || to > t.length {
		return nil, gecview.ErrIndexOutOfBounds
	}
	section := TextFromString(t.slice(from, to))
	if len(t.runs) == 0 {
		return section, nil
	}
	for _, r := range t.runs {
		if r.length == 0 {
			if r.pos >= from && r.pos <= to {
				section.runs = append(section.runs, styleRun{style: r.style, pos: r.pos - from})
			}
			continue
		}
		l, rr := max(r.pos, from), min(r.end(), to)
		if l >= rr {
			continue
		}
		section.runs = append(section.runs, styleRun{style: r.style, pos: l - from, length: rr - l})
	}
	return section, nil
}

// StyleChange holds a style and the text position where the style run starts.
type StyleChange struct {
	Style    Style
	Position int
	Length   int
}

// StyleRuns returns a slice of style runs for a styled text.
func (t *Text) StyleRuns() []StyleChange {
	return t.styleRuns(0)
}

func (t *Text) styleRuns(offset int) []StyleChange {
	if t == nil {
		return nil
	}
	rs := t.styles()
	slice := make([]StyleChange, len(rs))
	for i, r := range rs {
		slice[i].Style = r.style
		slice[i].Position = r.pos + offset
		slice[i].Length = r.length
	}
	return slice
}

// Segment is a run of uniformly styled text, together with its position.
// An unstyled segment has Style == nil.
type Segment struct {
	Text  string // underlying text of the run
	Style Style
	Pos   int // rune position of the run within the styled text
	Len   int // length of the run in runes
}

// Display returns the text to output for the segment. A styled segment of
// length zero is displayed as a Placeholder.
func (seg Segment) Display() string {
	if seg.Text == "" && seg.Style != nil {
		return Placeholder
	}
	return seg.Text
}

// Segments returns the ordered list of segments which make up the styled text.
func (t *Text) Segments() []Segment {
	if t == nil {
		return nil
	}
	rs := t.styles()
	segs := make([]Segment, len(rs))
	for i, r := range rs {
		segs[i] = Segment{
			Text:  t.slice(r.pos, r.end()),
			Style: r.style,
			Pos:   r.pos,
			Len:   r.length,
		}
	}
	return segs
}

// --- Runs of Styles --------------------------------------------------------

// runs hold information about style-formats which have been applied to a text.
// Runs are ordered by position and do not overlap.
type runs []styleRun

// String returns an informational string for these Runs. Clients must not rely
// on the format of the string.
func (r runs) String() string {
	var b strings.Builder
	for _, run := range r {
		b.WriteString(run.String())
	}
	return b.String()
}

// overlay adds a style to already existing styles and returns the unified set.
// Runs of length zero strictly inside the new run are removed.
func (r runs) overlay(sty Style, spn span) runs {
	tracer().Debugf("styled runs: overlay %v onto %v", spn, r)
	before, after := make(runs, 0, len(r)+1), make(runs, 0, len(r))
	for _, run := range r {
		switch {
		case run.end() <= spn.l:
			before = append(before, run)
		case run.pos >= spn.r:
			after = append(after, run)
		default:
			if run.pos < spn.l {
				before = append(before, styleRun{style: run.style, pos: run.pos, length: spn.l - run.pos})
			}
			if run.end() > spn.r {
				after = append(after, styleRun{style: run.style, pos: spn.r, length: run.end() - spn.r})
			}
		}
	}
	before = append(before, styleRun{style: sty, pos: spn.l, length: spn.len()})
	return append(before, after...)
}

// Style represents a styling-format which can be applied to a run of text.
type Style interface {
	Equals(other Style) bool // does this Style look equal or differently than another one ?
	String() string          // return some kind of identifying string
}

type styleRun struct {
	style  Style // applied style, nil for plain text
	pos    int   // start position in runes
	length int   // length of this style run in runes
}

func (sr styleRun) end() int {
	return sr.pos + sr.length
}

func (sr styleRun) String() string {
	if sr.style == nil {
		return fmt.Sprintf("[%d…%d:no style]", sr.pos, sr.end())
	}
	return fmt.Sprintf("[%d…%d:%s]", sr.pos, sr.end(), sr.style)
}

// --- Span ------------------------------------------------------------------

type span struct {
	l int
	r int
}

func toSpan(from, to int) span {
	if from > to {
		from, to = to, from
	}
	return span{from, to}
}

func (spn span) void() bool {
	return spn.r <= spn.l
}

func (spn span) len() int {
	if spn.void() {
		return 0
	}
	return spn.r - spn.l
}

func (spn span) contained(length int) span {
	spn.l = min(max(spn.l, 0), length)
	spn.r = min(max(spn.r, 0), length)
	return spn
}
