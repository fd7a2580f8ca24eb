package metrics

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// WordsValue is the result of a word-materialization pass.
type WordsValue struct {
	Spans []Span
}

// WordCount returns the number of recognized words.
func (v WordsValue) WordCount() int {
	return len(v.Spans)
}

// WordsMetric is a materialized word metric.
type WordsMetric struct{}

// Words creates a materialized word metric.
func Words() WordsMetric {
	return WordsMetric{}
}

// Apply scans [i,j) for words and returns word spans plus a materialized string.
//
// Materialization concatenates all recognized words in logical order and omits
// non-word separators.
func (WordsMetric) Apply(text string, i, j int) (WordsValue, string, error) {
	if text == "" {
		return WordsValue{}, "", nil
	}
	if err := checkRange(text, i, j); err != nil {
		return WordsValue{}, "", err
	}
	if i == j {
		return WordsValue{}, "", nil
	}
	content := text[i:j]
	value := WordsValue{
		Spans: findWordSpans(content, i),
	}
	if len(value.Spans) == 0 {
		return value, "", nil
	}
	var b strings.Builder
	for _, span := range value.Spans {
		b.WriteString(text[span.Pos:span.End()])
	}
	return value, b.String(), nil
}

func findWordSpans(s string, base int) []Span {
	spans := make([]Span, 0, 8)
	for pos := 0; pos < len(s); {
		r, width := utf8.DecodeRuneInString(s[pos:])
		if unicode.IsSpace(r) {
			pos += width
			continue
		}
		start := pos
		pos += width
		for pos < len(s) {
			r, width = utf8.DecodeRuneInString(s[pos:])
			if unicode.IsSpace(r) {
				break
			}
			pos += width
		}
		spans = append(spans, Span{
			Pos: base + start,
			Len: pos - start,
		})
	}
	return spans
}
