/*
Package styled makes styled text.

A styled text is a plain text together with a list of style runs. The runs
partition the text: concatenating the contents of all runs in order yields the
plain text exactly once, without gaps, duplications or re-orderings. Runs may
be of length zero; such a run marks a position in the text which should be
visible on output even though it does not cover any characters.

All positions are rune positions (Unicode code points), matching the
positions reported by the correction service.

Styles are opaque to this package. Package inline defines the styles used to
highlight annotations and decorates a plain text from a list of annotations.
Project reverses the decoration:

	decorated := inline.Decorate(text, anns)
	plain := styled.Project(decorated) // plain == text

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

For details please refer to the LICENSE file.
*/
package styled

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'gecview'
func tracer() tracing.Trace {
	return tracing.Select("gecview")
}
