/*
Package editor implements an editing session for grammar checks.

A Session connects a display surface, holding the text a user edits, with a
correction service. It is a small state machine with two states:

	Clean      no annotations are displayed
	Annotated  the text is displayed decorated with annotations

A successful check with at least one displayable annotation moves the session
from Clean to Annotated. Any edit, a reset, a failed check or a check without
displayable annotations moves it back to Clean.

While a check is in flight, the trigger for checks is disabled and a second
check is refused with ErrCheckInProgress. Clients observe trigger, state and
statistics changes by subscribing to the session's events.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

For details please refer to the LICENSE file.
*/
package editor

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'gecview'
func tracer() tracing.Trace {
	return tracing.Select("gecview")
}
