/*
Package formatter formats highlighted text on output devices.

A decorated text (see package inline) is output by a formatting driver,
which splits the text into lines at newline characters, wraps long lines and
hands runs of uniformly styled text to a Format. This package offers two
formats: one for consoles with fixed width fonts and one for HTML.

Console output uses colors to show highlights. As there are no tooltips on a
console, highlight messages are listed in a numbered legend after the text.
Line wrapping applies rules from UAX#14 (line breaking), UAX#29 (graphemes)
and UAX#11 (character width).

	decorated := inline.Decorate(text, anns)
	formatter.Print(decorated, nil)

HTML output produces the content of an editable element, with highlights as
<span> elements carrying a tooltip attribute.

ConsoleSurface is a display surface for the editor session, writing every
rendered text to an io.Writer.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package formatter

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'gecview'
func tracer() tracing.Trace {
	return tracing.Select("gecview")
}
