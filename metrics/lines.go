package metrics

import (
	"regexp"
)

// LinesValue is the result of a line-delimiting pass.
type LinesValue struct {
	Spans []Span // line contents, excluding the delimiters
}

// LineCount returns the number of lines. A text without any newline is a
// single line, even if empty. Multiple consecutive newlines count as
// multiple empty lines.
func (v LinesValue) LineCount() int {
	return len(v.Spans)
}

// LinesMetric delimits a text at newline characters.
type LinesMetric struct {
	pattern *regexp.Regexp
}

var newline = regexp.MustCompile("\n")

// Lines creates a line-delimiting metric.
func Lines() LinesMetric {
	return LinesMetric{pattern: newline}
}

// Apply delimits [i,j) into lines. Every newline in [i,j) ends a line; the
// text after the last newline forms the final line.
func (m LinesMetric) Apply(text string, i, j int) (LinesValue, error) {
	if err := checkRange(text, i, j); err != nil {
		return LinesValue{}, err
	}
	if m.pattern == nil {
		m.pattern = newline
	}
	parts := delimit(text[i:j], m.pattern)
	value := LinesValue{Spans: make([]Span, 0, len(parts)+1)}
	start := 0
	for _, p := range parts {
		value.Spans = append(value.Spans, Span{Pos: i + start, Len: p[0] - start})
		start = p[1]
	}
	value.Spans = append(value.Spans, Span{Pos: i + start, Len: j - i - start})
	tracer().Debugf("metrics: %d lines in [%d…%d)", len(value.Spans), i, j)
	return value, nil
}

func delimit(frag string, pattern *regexp.Regexp) (parts [][]int) {
	parts = pattern.FindAllStringIndex(frag, -1)
	if len(parts) == 0 {
		parts = [][]int{} // no boundary in fragment
	}
	return
}
