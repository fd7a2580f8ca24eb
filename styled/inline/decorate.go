package inline

import (
	"unicode/utf8"

	"github.com/npillmayer/gecview"
	"github.com/npillmayer/gecview/styled"
)

// Decorate creates a styled text from a plain text and a list of annotations.
// anns must be normalized for text (see gecview.Normalize); their order is
// trusted. Text between annotations becomes unstyled runs, which are omitted
// if empty. Each annotation becomes a run styled with its Highlight, possibly
// of length zero.
//
// The underlying text of the result is text, unchanged:
//
//	styled.Project(Decorate(text, anns)) == text
func Decorate(text string, anns []gecview.Annotation) *styled.Text {
	if len(anns) == 0 {
		return styled.TextFromString(text)
	}
	bounds := runeBounds(text)
	slice := func(from, to int) string {
		return text[bounds[from]:bounds[to]]
	}
	b := styled.NewTextBuilder()
	cursor := 0
	for _, a := range anns {
		if a.Start > cursor {
			b.Append(slice(cursor, a.Start), nil)
		}
		b.Append(slice(a.Start, a.End()), HighlightFor(a))
		cursor = a.End()
	}
	if n := len(bounds) - 1; cursor < n {
		b.Append(slice(cursor, n), nil)
	}
	tracer().Debugf("decorated text of length %d with %d annotations", len(bounds)-1, len(anns))
	return b.Text()
}

// runeBounds returns the byte offset of every rune position of s, including
// the end position.
func runeBounds(s string) []int {
	bounds := make([]int, 0, utf8.RuneCountInString(s)+1)
	for i := range s {
		bounds = append(bounds, i)
	}
	return append(bounds, len(s))
}
