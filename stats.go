package gecview

import (
	"fmt"
	"strings"

	"github.com/npillmayer/gecview/metrics"
)

// Stats holds the counters displayed alongside a text.
type Stats struct {
	Words    int // whitespace-delimited words
	Spelling int // annotations categorized as spelling issues
	Other    int // all other annotations
}

func (st Stats) String() string {
	return fmt.Sprintf("words: %d   spelling: %d   grammar: %d", st.Words, st.Spelling, st.Other)
}

// Issues returns the total number of annotations counted.
func (st Stats) Issues() int {
	return st.Spelling + st.Other
}

// Aggregate derives the counters for a text and the annotations found for it.
// anns may be empty and need not be normalized.
func Aggregate(text string, anns []Annotation) Stats {
	st := Stats{Words: CountWords(text)}
	for _, a := range anns {
		if IsSpellingCategory(a.Category) {
			st.Spelling++
		}
	}
	st.Other = len(anns) - st.Spelling
	return st
}

// CountWords counts the maximal runs of non-whitespace characters in text.
func CountWords(text string) int {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0
	}
	value, _, err := metrics.Words().Apply(text, 0, len(text))
	if err != nil {
		tracer().Errorf("word count failed: %v", err)
		return 0
	}
	return value.WordCount()
}

// IsSpellingCategory is true for categories denoting a spelling issue,
// e.g. "SPELLING_MISTAKE". The check is case-insensitive.
func IsSpellingCategory(category string) bool {
	return strings.Contains(strings.ToLower(category), "spelling")
}
