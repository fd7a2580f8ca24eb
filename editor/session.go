package editor

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/guiguan/caster"
	"github.com/npillmayer/gecview"
	"github.com/npillmayer/gecview/client"
	"github.com/npillmayer/gecview/styled"
	"github.com/npillmayer/gecview/styled/inline"
)

// Errors of an editing session.
var (
	ErrCheckInProgress = errors.New("a check is already in progress")
	ErrUnknownExample  = errors.New("unknown example")
)

// Surface is a display surface holding the text a user edits.
type Surface interface {
	SetPlainText(text string) error // reset to an undecorated text
	Render(t *styled.Text) error    // show a decorated text
	ReadPlainText() (string, error) // current plain text, with \n line breaks
	Clear() error                   // blank surface
}

// Checker sends a text to a correction service. *client.Client is a Checker.
type Checker interface {
	Check(ctx context.Context, text string) (*client.Response, error)
}

// State is the state of an editing session.
type State int

// States of a session
const (
	Clean     State = iota // no annotations displayed
	Annotated              // text decorated with annotations
)

func (st State) String() string {
	switch st {
	case Clean:
		return "clean"
	case Annotated:
		return "annotated"
	}
	return fmt.Sprintf("State(%d)", int(st))
}

// Session is an editing session. All methods are safe for concurrent use.
type Session struct {
	mx        sync.Mutex
	surface   Surface
	checker   Checker
	notifier  Notifier
	clipboard func(string) error
	cast      *caster.Caster
	state     State
	stats     gecview.Stats
	busy      bool
	text      string // plain text last read from or set to the surface
	result    *client.Response
	anns      []gecview.Annotation // displayed annotations
}

// Option configures a Session.
type Option func(*Session)

// WithNotifier sets the notifier used to alert a user about failed checks.
// The default notifier writes to the trace.
func WithNotifier(n Notifier) Option {
	return func(s *Session) {
		if n != nil {
			s.notifier = n
		}
	}
}

// WithClipboard replaces the system clipboard.
func WithClipboard(write func(string) error) Option {
	return func(s *Session) {
		if write != nil {
			s.clipboard = write
		}
	}
}

// New creates an editing session for a surface and a correction service.
// The session starts in state Clean, with the surface left untouched.
func New(surface Surface, checker Checker, opts ...Option) *Session {
	s := &Session{
		surface:   surface,
		checker:   checker,
		notifier:  traceNotifier{},
		clipboard: systemClipboard,
		cast:      caster.New(nil),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Check reads the text from the surface and sends it to the correction
// service. On success the text is displayed with the annotations found.
// On failure the user is alerted, the surface is reset to the plain text and
// the error is returned.
//
// A blank text is not sent; the statistics are reset instead.
// While a check is in flight, further calls return ErrCheckInProgress.
func (s *Session) Check(ctx context.Context) error {
	s.mx.Lock()
	if s.busy {
		s.mx.Unlock()
		return ErrCheckInProgress
	}
	text, err := s.surface.ReadPlainText()
	if err != nil {
		s.mx.Unlock()
		return err
	}
	s.text = text
	if strings.TrimSpace(text) == "" {
		s.stats = gecview.Aggregate(text, nil)
		s.mx.Unlock()
		s.publish(StatsChanged)
		return nil
	}
	s.busy = true
	s.mx.Unlock()
	s.publish(TriggerDisabled)
	defer s.publish(TriggerEnabled)
	//
	tracer().Debugf("session: checking text of %d bytes", len(text))
	resp, err := s.checker.Check(ctx, text)
	if err != nil {
		s.failed(text, err)
		return err
	}
	//
	s.mx.Lock()
	anns := resp.Annotations()
	norm := gecview.Normalize(anns, utf8.RuneCountInString(text))
	if err = s.surface.Render(inline.Decorate(text, norm)); err != nil {
		s.mx.Unlock()
		s.failed(text, err)
		return err
	}
	s.busy = false
	s.result = resp
	s.anns = norm
	s.stats = gecview.Aggregate(text, anns)
	changed := s.setState(len(norm) > 0)
	s.mx.Unlock()
	tracer().Infof("session: %d annotations received, %d displayed", len(anns), len(norm))
	s.publish(StatsChanged)
	if changed {
		s.publish(StateChanged)
	}
	return nil
}

// failed handles a failed check.
func (s *Session) failed(text string, err error) {
	tracer().Errorf("session: check failed: %v", err)
	s.notifier.Alert("Check failed: " + err.Error())
	s.mx.Lock()
	s.busy = false
	if e := s.surface.SetPlainText(text); e != nil {
		tracer().Errorf("session: cannot reset surface: %v", e)
	}
	s.result = nil
	s.anns = nil
	s.stats = gecview.Aggregate(text, nil)
	changed := s.setState(false)
	s.mx.Unlock()
	s.publish(StatsChanged)
	if changed {
		s.publish(StateChanged)
	}
}

// setState switches to Annotated or Clean and tells if the state changed.
// Caller must hold the lock.
func (s *Session) setState(annotated bool) bool {
	next := Clean
	if annotated {
		next = Annotated
	}
	if s.state == next {
		return false
	}
	tracer().Debugf("session: %v → %v", s.state, next)
	s.state = next
	return true
}

// Edited signals that the user has changed the text on the surface.
// Annotations are removed, leaving the plain text.
func (s *Session) Edited() error {
	s.mx.Lock()
	text, err := s.surface.ReadPlainText()
	s.mx.Unlock()
	if err != nil {
		return err
	}
	return s.Edit(text)
}

// Edit replaces the text on the surface by a plain text.
func (s *Session) Edit(text string) error {
	s.mx.Lock()
	if err := s.surface.SetPlainText(text); err != nil {
		s.mx.Unlock()
		return err
	}
	s.text = text
	s.result = nil
	s.anns = nil
	s.stats = gecview.Aggregate(text, nil)
	changed := s.setState(false)
	s.mx.Unlock()
	s.publish(StatsChanged)
	if changed {
		s.publish(StateChanged)
	}
	return nil
}

// Reset empties the surface.
func (s *Session) Reset() error {
	return s.Edit("")
}

// LoadExample replaces the text by one of the example texts.
func (s *Session) LoadExample(key string) error {
	text, err := Example(key)
	if err != nil {
		return err
	}
	return s.Edit(text)
}

// Copy writes the current plain text to the clipboard.
func (s *Session) Copy() error {
	s.mx.Lock()
	text, err := s.surface.ReadPlainText()
	s.mx.Unlock()
	if err != nil {
		return err
	}
	if err = s.clipboard(text); err != nil {
		tracer().Errorf("session: cannot copy to clipboard: %v", err)
		return err
	}
	tracer().Infof("session: copied %d bytes to clipboard", len(text))
	return nil
}

// Stats returns the current statistics.
func (s *Session) Stats() gecview.Stats {
	s.mx.Lock()
	defer s.mx.Unlock()
	return s.stats
}

// State returns the current state.
func (s *Session) State() State {
	s.mx.Lock()
	defer s.mx.Unlock()
	return s.state
}

// Busy is true while a check is in flight, i.e. the trigger is disabled.
func (s *Session) Busy() bool {
	s.mx.Lock()
	defer s.mx.Unlock()
	return s.busy
}

// Text returns the plain text last read from or written to the surface.
func (s *Session) Text() string {
	s.mx.Lock()
	defer s.mx.Unlock()
	return s.text
}

// Result returns the response of the last successful check, if the text has
// not been edited since.
func (s *Session) Result() *client.Response {
	s.mx.Lock()
	defer s.mx.Unlock()
	return s.result
}

// Annotations returns the annotations currently displayed.
func (s *Session) Annotations() []gecview.Annotation {
	s.mx.Lock()
	defer s.mx.Unlock()
	return append([]gecview.Annotation(nil), s.anns...)
}
