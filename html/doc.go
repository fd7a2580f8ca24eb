/*
Package html implements a display surface for highlighted text as HTML, as
found in a web page with an editable element.

The surface holds the inner HTML of the editable element. Plain text is set as
one paragraph per line. Decorated text is rendered with highlight spans and
<br> line breaks (see formatter.HTML). Reading the surface back yields the
plain text, regardless of which of the two forms it holds or how a user has
edited it.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

For details please refer to the LICENSE file.
*/
package html

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'gecview'
func tracer() tracing.Trace {
	return tracing.Select("gecview")
}
