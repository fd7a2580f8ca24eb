/*
Package config handles configuration loading and validation for gecview.

Configuration is read from a file in TOML, YAML or JSON format, selected by
the file's extension. Environment variables override settings from the file:

	GECVIEW_ENDPOINT   URL of the correction service
	GECVIEW_TIMEOUT    request timeout, e.g. "10s"
	GECVIEW_TRACE      trace level: debug, info or error

A minimal TOML file:

	endpoint = "http://localhost:8089/api/gec"
	timeout = "10s"
	line_width = 72

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

For details please refer to the LICENSE file.
*/
package config

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'gecview'
func tracer() tracing.Trace {
	return tracing.Select("gecview")
}
