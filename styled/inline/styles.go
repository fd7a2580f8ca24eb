package inline

import (
	"fmt"

	"github.com/npillmayer/gecview"
	"github.com/npillmayer/gecview/styled"
)

// Class is the visual class of a highlight.
type Class int

// Highlight classes
const (
	PlainClass    Class = iota // no highlight
	GrammarClass               // grammar, punctuation, style, …
	SpellingClass              // spelling mistakes
)

func (c Class) String() string {
	switch c {
	case PlainClass:
		return "plain"
	case GrammarClass:
		return "hl"
	case SpellingClass:
		return "spell"
	}
	return fmt.Sprintf("Class(%d)", int(c))
}

// ClassOf returns the highlight class for an annotation category.
func ClassOf(category string) Class {
	if gecview.IsSpellingCategory(category) {
		return SpellingClass
	}
	return GrammarClass
}

// ClassFromName is the inverse of Class.String. Unknown names map to
// PlainClass.
func ClassFromName(name string) Class {
	switch name {
	case "hl":
		return GrammarClass
	case "spell":
		return SpellingClass
	}
	return PlainClass
}

// Highlight is the style of an annotated run of text.
type Highlight struct {
	Class    Class
	Category string
	Message  string
}

// HighlightFor creates the highlight style for an annotation.
func HighlightFor(a gecview.Annotation) Highlight {
	return Highlight{
		Class:    ClassOf(a.Category),
		Category: a.Category,
		Message:  a.Message,
	}
}

// Equals is part of interface styled.Style.
func (h Highlight) Equals(other styled.Style) bool {
	o, ok := other.(Highlight)
	return ok && o == h
}

func (h Highlight) String() string {
	if h.Category == "" {
		return h.Class.String()
	}
	return h.Class.String() + ":" + h.Category
}

// Tooltip returns the text to show when hovering over the highlight,
// shortened to at most max user-perceived characters.
func (h Highlight) Tooltip(max int) string {
	return Tooltip(h.Message, h.Category, max)
}

var _ styled.Style = Highlight{}

// HighlightOf returns the highlight style of a run, if it has one.
func HighlightOf(sty styled.Style) (Highlight, bool) {
	h, ok := sty.(Highlight)
	return h, ok
}
