package textfile

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/fsnotify/fsnotify"
	"github.com/guiguan/caster"
)

// MaxSize is the size limit for text files, in bytes.
const MaxSize = 1 << 20

// Errors loading a text file
var (
	ErrNotRegular = errors.New("file is not a regular file")
	ErrTooLarge   = errors.New("file is too large")
	ErrNotUTF8    = errors.New("file is not valid UTF-8 text")
)

// Load reads a file, which must be a UTF-8 text file. Line endings are
// normalized to "\n" and a byte order mark is removed.
func Load(name string) (string, error) {
	fi, err := os.Stat(name)
	if err != nil {
		return "", err
	} else if !fi.Mode().IsRegular() {
		return "", fmt.Errorf("%s: %w", name, ErrNotRegular)
	} else if fi.Size() > MaxSize {
		return "", fmt.Errorf("%s: %w", name, ErrTooLarge)
	}
	data, err := os.ReadFile(name)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("%s: %w", name, ErrNotUTF8)
	}
	text := strings.TrimPrefix(string(data), "\ufeff")
	text = strings.ReplaceAll(text, "\r\n", "\n")
	tracer().Debugf("textfile: loaded %q, %d bytes", name, len(text))
	return text, nil
}

// Change is broadcast by a Watcher whenever the watched file has been written.
// Err is set if the file could not be re-loaded.
type Change struct {
	Name string
	Text string
	Err  error
}

// Watcher watches a text file for changes.
type Watcher struct {
	name    string
	watcher *fsnotify.Watcher
	cast    *caster.Caster
	done    chan struct{}
	once    sync.Once
}

// debounce is the delay before a change is reported; editors often write a
// file in several steps.
const debounce = 100 * time.Millisecond

// Watch starts watching a file. The directory of the file is watched, as
// editors frequently replace a file instead of writing to it. Watching ends
// when ctx is done or Close is called.
func Watch(ctx context.Context, name string) (*Watcher, error) {
	abs, err := filepath.Abs(name)
	if err != nil {
		return nil, err
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create file watcher: %w", err)
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}
	w := &Watcher{
		name:    abs,
		watcher: fw,
		cast:    caster.New(ctx),
		done:    make(chan struct{}),
	}
	go w.watchLoop(ctx)
	tracer().Infof("textfile: watching %q", abs)
	return w, nil
}

// Subscribe returns a channel of changes. The channel is closed when the
// watcher ends.
func (w *Watcher) Subscribe(ctx context.Context, capacity uint) (<-chan Change, bool) {
	ch, ok := w.cast.Sub(ctx, capacity)
	if !ok {
		return nil, false
	}
	changes := make(chan Change, capacity)
	go func() {
		defer close(changes)
		for msg := range ch {
			if c, ok := msg.(Change); ok {
				changes <- c
			}
		}
	}()
	return changes, true
}

// Close stops watching.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.done)
		err = w.watcher.Close()
		w.cast.Close()
	})
	return err
}

func (w *Watcher) watchLoop(ctx context.Context) {
	var timer *time.Timer
	var fire <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
		w.Close()
	}()
	for {
		select {
		case <-ctx.Done():
			return
		case <-w.done:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.name {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			tracer().Debugf("textfile: %v", event)
			if timer != nil {
				timer.Stop()
			}
			timer = time.NewTimer(debounce)
			fire = timer.C
		case <-fire:
			fire = nil
			text, err := Load(w.name)
			if err != nil && errors.Is(err, os.ErrNotExist) {
				continue // renamed away, wait for it to re-appear
			}
			w.cast.Pub(Change{Name: w.name, Text: text, Err: err})
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			tracer().Errorf("textfile: watcher error: %v", err)
		}
	}
}
