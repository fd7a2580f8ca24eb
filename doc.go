/*
Package gecview highlights grammar and spelling corrections in a text.

A remote correction service inspects a text and answers with a list of
flagged spans (markups), each carrying a start offset, a length, a category
and a human-readable message. The service is not trusted: spans may be
malformed, out of bounds, or overlap each other. Package gecview turns such a
list into a safe, ordered and non-overlapping set of annotations, which
package styled then uses to decorate the text for display.

# Positions

All positions are counted in Unicode code points (runes), which is what the
correction service reports. A text of length n has valid positions 0…n.

# Normalization

	anns := gecview.NormalizeMarkups(response.TextMarkups, utf8.RuneCountInString(text))
	decorated := styled.Decorate(text, anns)

Normalization drops every invalid span silently, sorts the rest by start
position (ties broken by end position) and then drops every span overlapping
an already accepted one. The first span in sort order wins, regardless of its
category. Spelling and grammar findings for the same words may therefore
shadow each other.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

For details please refer to the LICENSE file.
*/
package gecview

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'gecview'
func tracer() tracing.Trace {
	return tracing.Select("gecview")
}

// Error is an error type for the gecview module
type Error string

func (e Error) Error() string {
	return string(e)
}

// ErrIndexOutOfBounds is flagged whenever a text position is
// greater than the length of the text.
const ErrIndexOutOfBounds = Error("index out of bounds")

// ErrIllegalArguments is flagged whenever function parameters are invalid.
const ErrIllegalArguments = Error("illegal arguments")
