/*
Package client talks to a remote grammar correction service.

The service accepts a text and responds with a list of markups, i.e. flagged
ranges of the text together with a category and a message:

	POST /api/gec
	{ "text": "we shood buy an car." }

	{
	  "corrected_text": "We should buy a car.",
	  "text_markups": [ { "index": 3, "length": 5, "message": "…", "category": "SPELLING_MISTAKE" } ],
	  "character_count": 20,
	  "error_character_count": 7,
	  "contains_profanity": false,
	  "service_time": 0.042
	}

A Client issues exactly one request per call to Check. It does not retry and
does not queue requests. Every failure, be it on the transport level, a
non-2xx status or an unusable response, is reported as an *Error matching
ErrCheckFailed.

Markups are not validated by this package, as the service is not trusted to
deliver well-formed ones. Use gecview.Normalize on the annotations of a
response before displaying them.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

For details please refer to the LICENSE file.
*/
package client

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'gecview'
func tracer() tracing.Trace {
	return tracing.Select("gecview")
}
