package formatter

import (
	"fmt"
	"io"
	"os"
	"sync"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/npillmayer/gecview/styled"
	"github.com/npillmayer/gecview/styled/inline"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/term"
)

// ConsoleFixedWidth is a type for outputting highlighted text to a console with
// a fixed width font.
//
// Highlights are colored by class. As a console cannot show tooltips, the
// messages of all highlights are collected while formatting and listed as
// a numbered legend after the text.
type ConsoleFixedWidth struct {
	colors     map[inline.Class]*color.Color
	marker     *color.Color
	tooltipMax int
	legend     []string
	ccnt       int // number of character positions already printed for line
	ctarget    int // linelength in fixedwidth ‘en’s
}

// Palette maps highlight classes to colors.
type Palette map[inline.Class]*color.Color

// DefaultPalette returns the default colors: red for spelling, yellow for
// everything else.
func DefaultPalette() Palette {
	return Palette{
		inline.SpellingClass: color.New(color.FgRed, color.Underline),
		inline.GrammarClass:  color.New(color.FgYellow, color.Underline),
	}
}

// NewConsoleFixedWidthFormat creates a new formatter. It is to be used for consoles
// with a fixed width font.
//
// colors is a map from highlight classes to colors, used for display. It may contain
// just a subset of the classes. If colors is nil, DefaultPalette is used.
// tooltipMax limits the length of messages in the legend.
func NewConsoleFixedWidthFormat(colors Palette, tooltipMax int) *ConsoleFixedWidth {
	fw := &ConsoleFixedWidth{
		colors:     colors,
		marker:     color.New(color.Faint),
		tooltipMax: tooltipMax,
	}
	if fw.colors == nil {
		fw.colors = DefaultPalette()
	}
	return fw
}

// SetColor switches colored output on or off, overriding the detection of
// terminal capabilities by package color.
func (fw *ConsoleFixedWidth) SetColor(on bool) {
	for _, c := range append(fw.colorList(), fw.marker) {
		if on {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
}

func (fw *ConsoleFixedWidth) colorList() []*color.Color {
	list := make([]*color.Color, 0, len(fw.colors))
	for _, c := range fw.colors {
		list = append(list, c)
	}
	return list
}

// Print outputs a styled text to stdout.
//
// If parameter config is nil,
// a heuristic will create a config from the current terminal's properties (if
// stdout is interactive). Config.Context will also be created based on heuristics
// from the user environment.
func (fw *ConsoleFixedWidth) Print(text *styled.Text, config *Config) error {
	if config == nil {
		config = ConfigFromTerminal()
		config.Context = uax11.ContextFromEnvironment()
	}
	return Output(text, os.Stdout, config, fw)
}

// StyledText is called by the formatting driver to output a sequence of
// uniformly styled text (item). It uses colors to visualize highlights.
// (Part of interface Format)
func (fw *ConsoleFixedWidth) StyledText(s string, style styled.Style, w io.Writer) {
	h, ok := inline.HighlightOf(style)
	if !ok {
		fw.ccnt += utf8.RuneCountInString(s)
		io.WriteString(w, s)
		return
	}
	if s == "" {
		s = styled.Placeholder
	}
	fw.ccnt += utf8.RuneCountInString(s)
	fw.legend = append(fw.legend, fmt.Sprintf("%q: %s", s, h.Tooltip(fw.tooltipMax)))
	if c, ok := fw.colors[h.Class]; ok {
		c.Fprint(w, s)
	} else {
		io.WriteString(w, s)
	}
	fw.marker.Fprintf(w, "[%d]", len(fw.legend))
}

// Preamble is called by the output driver before a text will be formatted.
// It resets the legend.
// (Part of interface Format)
func (fw *ConsoleFixedWidth) Preamble(w io.Writer) {
	fw.legend = fw.legend[:0]
}

// Postamble will be called after a text has been formatted.
// It terminates the last line and outputs the legend of highlights, if any.
// (Part of interface Format)
func (fw *ConsoleFixedWidth) Postamble(w io.Writer) {
	io.WriteString(w, "\n")
	if len(fw.legend) == 0 {
		return
	}
	io.WriteString(w, "\n")
	for i, entry := range fw.legend {
		fw.marker.Fprintf(w, "[%d]", i+1)
		fmt.Fprintf(w, " %s\n", entry)
	}
}

// Line is a signal from the output driver that a new line is to be output.
// length is the number of characters that will be formatted.
// linelength is the target line length to wrap long lines.
// (Part of interface Format)
func (fw *ConsoleFixedWidth) Line(length int, linelength int, w io.Writer) {
	fw.ccnt = 0
	fw.ctarget = linelength
}

// Wrap is called by the output driver when a line has been wrapped.
// (Part of interface Format)
func (fw *ConsoleFixedWidth) Wrap(w io.Writer) {
	io.WriteString(w, "\n")
}

// Newline will be called at the end of every line of text.
// (Part of interface Format)
func (fw *ConsoleFixedWidth) Newline(w io.Writer) {
	io.WriteString(w, "\n")
}

// --- Config for terminals --------------------------------------------------

// ConfigFromTerminal is a simple helper for creating a formatting Config.
// It checks wether stdout is a terminal, and if so it reads the terminal's width
// and sets the Config.LineWidth parameter accordingly.
func ConfigFromTerminal() *Config {
	config := &Config{}
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		w, _, err := term.GetSize(fd)
		if err != nil {
			config.LineWidth = 65
		} else {
			if w > 65 {
				config.LineWidth = w - 10
			} else if w > 30 {
				config.LineWidth = w - 5
			} else if w > 10 {
				config.LineWidth = w
			} else {
				config.LineWidth = 10
			}
		}
	} else {
		config.LineWidth = 65
	}
	tracer().Infof("console: setting line length to %d en", config.LineWidth)
	return config
}

// --- Console display surface -----------------------------------------------

// ConsoleSurface is a display surface which writes texts to a console.
// Decorated texts are shown with highlights, followed by a legend.
// Plain texts are echoed only if EchoPlain is set.
type ConsoleSurface struct {
	EchoPlain bool
	mx        sync.Mutex
	out       io.Writer
	config    *Config
	format    *ConsoleFixedWidth
	text      string
}

// NewConsoleSurface creates a display surface writing to out. If config is
// nil, it is derived from the terminal. If format is nil, a console format
// with the default palette is used.
func NewConsoleSurface(out io.Writer, config *Config, format *ConsoleFixedWidth) *ConsoleSurface {
	if config == nil {
		config = ConfigFromTerminal()
		config.Context = uax11.ContextFromEnvironment()
	}
	if format == nil {
		format = NewConsoleFixedWidthFormat(nil, config.TooltipMax)
	}
	return &ConsoleSurface{out: out, config: config, format: format}
}

// SetPlainText replaces the content of the surface by an undecorated text.
func (cs *ConsoleSurface) SetPlainText(text string) error {
	cs.mx.Lock()
	defer cs.mx.Unlock()
	cs.text = text
	if !cs.EchoPlain {
		return nil
	}
	return Output(styled.TextFromString(text), cs.out, cs.config, cs.format)
}

// Render shows a decorated text.
func (cs *ConsoleSurface) Render(t *styled.Text) error {
	cs.mx.Lock()
	defer cs.mx.Unlock()
	cs.text = t.Raw()
	return Output(t, cs.out, cs.config, cs.format)
}

// ReadPlainText returns the text last set or rendered.
func (cs *ConsoleSurface) ReadPlainText() (string, error) {
	cs.mx.Lock()
	defer cs.mx.Unlock()
	return cs.text, nil
}

// Clear blanks the surface.
func (cs *ConsoleSurface) Clear() error {
	return cs.SetPlainText("")
}
