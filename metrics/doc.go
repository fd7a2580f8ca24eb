/*
Package metrics provides some pre-manufactured metrics on texts.

A metric scans a range [i…j) of a text, given as byte positions, and
reports the spans of the items it recognizes. Currently there are metrics for
words (runs of non-whitespace characters) and for lines (runs of characters
delimited by newline characters).

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package metrics

import (
	"errors"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'gecview'
func tracer() tracing.Trace {
	return tracing.Select("gecview")
}

// ErrIndexOutOfBounds is flagged whenever a metric range exceeds its text.
var ErrIndexOutOfBounds = errors.New("metrics: index out of bounds")

// Span is a byte-range descriptor inside a text.
//
// Pos is the start byte offset, Len is the span length in bytes.
type Span struct {
	Pos int
	Len int
}

// End returns the byte position right after the span.
func (s Span) End() int {
	return s.Pos + s.Len
}

func checkRange(text string, i, j int) error {
	if i < 0 || j < i || j > len(text) {
		tracer().Errorf("metrics: range [%d…%d) invalid for text of length %d", i, j, len(text))
		return ErrIndexOutOfBounds
	}
	return nil
}
