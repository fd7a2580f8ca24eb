/*
Package textfile loads UTF-8 text files to be checked and watches them for
changes.

A watcher broadcasts the content of a file each time it is saved, which lets
a command line session re-check a text every time an editor writes it:

	w, err := textfile.Watch(ctx, "letter.txt")
	events, _ := w.Subscribe(ctx, 1)
	for change := range events {
		…
	}

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package textfile

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'gecview'
func tracer() tracing.Trace {
	return tracing.Select("gecview")
}
