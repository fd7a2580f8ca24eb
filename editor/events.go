package editor

import (
	"context"
	"fmt"

	"github.com/npillmayer/gecview"
)

// EventKind tells what has changed in a session.
type EventKind int

// Kinds of session events
const (
	TriggerDisabled EventKind = iota // a check has been started
	TriggerEnabled                   // a check has ended
	StatsChanged                     // statistics have been updated
	StateChanged                     // Clean ↔ Annotated
)

func (k EventKind) String() string {
	switch k {
	case TriggerDisabled:
		return "trigger-disabled"
	case TriggerEnabled:
		return "trigger-enabled"
	case StatsChanged:
		return "stats-changed"
	case StateChanged:
		return "state-changed"
	}
	return fmt.Sprintf("EventKind(%d)", int(k))
}

// Event is sent to subscribers of a session. It carries the session's state
// and statistics at the time of the event.
type Event struct {
	Kind  EventKind
	State State
	Stats gecview.Stats
}

func (e Event) String() string {
	return fmt.Sprintf("%v[%v, %v]", e.Kind, e.State, e.Stats)
}

// Subscribe returns a channel of session events. Events are delivered in the
// order they occur. The channel is closed when ctx is done or the session is
// closed. A subscriber has to keep up with events; publishing blocks on a
// full channel.
func (s *Session) Subscribe(ctx context.Context, capacity uint) (<-chan Event, bool) {
	if ctx == nil {
		ctx = context.Background()
	}
	ch, ok := s.cast.Sub(ctx, capacity)
	if !ok {
		return nil, false
	}
	events := make(chan Event, capacity)
	go func() {
		defer close(events)
		for msg := range ch {
			if e, ok := msg.(Event); ok {
				events <- e
			}
		}
	}()
	return events, true
}

// Close ends the session's event delivery.
func (s *Session) Close() {
	s.cast.Close()
}

func (s *Session) publish(kind EventKind) {
	s.mx.Lock()
	e := Event{Kind: kind, State: s.state, Stats: s.stats}
	s.mx.Unlock()
	tracer().Debugf("session: event %v", e)
	s.cast.Pub(e)
}
