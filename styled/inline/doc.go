/*
Package inline decorates plain text with highlights for annotations.

Decorate turns a text and a normalized list of annotations into a styled text.
Each annotated run carries a Highlight style, every other run is unstyled:

	anns := gecview.Normalize(found, utf8.RuneCountInString(text))
	decorated := inline.Decorate(text, anns)

Highlights come in two classes, one for spelling issues and one for everything
else. Display surfaces pick colors or CSS classes from the class and show the
Tooltip of a highlight on demand.

TextFromHTML and InnerText read a styled text back from an HTML fragment
produced by such a display surface.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

For details please refer to the LICENSE file.
*/
package inline

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'gecview'
func tracer() tracing.Trace {
	return tracing.Select("gecview")
}
