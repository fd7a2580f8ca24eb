package editor

import (
	"io"

	"github.com/atotto/clipboard"
	"github.com/fatih/color"
)

// Notifier alerts a user, e.g. about a failed check.
type Notifier interface {
	Alert(msg string)
}

// ConsoleNotifier writes alerts to a console, in red if the console supports it.
type ConsoleNotifier struct {
	W     io.Writer
	color *color.Color
}

// NewConsoleNotifier creates a notifier writing to w.
func NewConsoleNotifier(w io.Writer) *ConsoleNotifier {
	return &ConsoleNotifier{W: w, color: color.New(color.FgRed, color.Bold)}
}

// Alert is part of interface Notifier.
func (cn *ConsoleNotifier) Alert(msg string) {
	cn.color.Fprintln(cn.W, msg)
}

type traceNotifier struct{}

func (traceNotifier) Alert(msg string) {
	tracer().Errorf("%s", msg)
}

// systemClipboard writes to the clipboard of the operating system.
func systemClipboard(text string) error {
	return clipboard.WriteAll(text)
}
