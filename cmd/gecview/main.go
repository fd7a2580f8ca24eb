// Command gecview sends a text to a grammar correction service and shows
// the text with the corrections found highlighted.
//
// Usage:
//
//	echo "we shood buy an car." | gecview
//	gecview -f letter.txt
//	gecview -f letter.txt -watch
//	gecview -example sva -html out.html
//	gecview -list-examples
//
// Configuration is read from the file given with -c (TOML, YAML or JSON).
// Environment variables GECVIEW_ENDPOINT, GECVIEW_TIMEOUT and GECVIEW_TRACE
// override the file; flags override both.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/npillmayer/gecview/client"
	"github.com/npillmayer/gecview/config"
	"github.com/npillmayer/gecview/editor"
	"github.com/npillmayer/gecview/html"
	"github.com/npillmayer/gecview/styled/formatter"
	"github.com/npillmayer/gecview/textfile"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/term"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

type options struct {
	configPath   string
	endpoint     string
	timeout      time.Duration
	file         string
	example      string
	htmlOut      string
	lineWidth    int
	color        string
	trace        string
	watch        bool
	copy         bool
	ping         bool
	listExamples bool
}

func parseFlags(args []string, stderr io.Writer) (*options, error) {
	opts := &options{}
	fs := flag.NewFlagSet("gecview", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.configPath, "c", "", "configuration file (TOML, YAML or JSON)")
	fs.StringVar(&opts.endpoint, "endpoint", "", "URL of the correction service")
	fs.DurationVar(&opts.timeout, "t", 0, "request timeout")
	fs.StringVar(&opts.file, "f", "", "text file to check instead of stdin")
	fs.StringVar(&opts.example, "example", "", "check one of the example texts")
	fs.StringVar(&opts.htmlOut, "html", "", "write an HTML page to this file instead of console output")
	fs.IntVar(&opts.lineWidth, "w", 0, "line width for console output; 0 = from terminal")
	fs.StringVar(&opts.color, "color", "", "colored output: auto | always | never")
	fs.StringVar(&opts.trace, "trace", "", "trace level: debug | info | error")
	fs.BoolVar(&opts.watch, "watch", false, "re-check the file given with -f whenever it is saved")
	fs.BoolVar(&opts.copy, "copy", false, "copy the checked text to the clipboard")
	fs.BoolVar(&opts.ping, "ping", false, "check if the correction service is up")
	fs.BoolVar(&opts.listExamples, "list-examples", false, "list the example texts")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if opts.watch && opts.file == "" {
		return nil, errors.New("-watch needs a file given with -f")
	}
	if opts.file != "" && opts.example != "" {
		return nil, errors.New("-f and -example are mutually exclusive")
	}
	return opts, nil
}

// loadConfig merges the configuration file, environment and flags.
func loadConfig(opts *options) (*config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, err
	}
	if opts.endpoint != "" {
		cfg.Endpoint = opts.endpoint
	}
	if opts.timeout > 0 {
		cfg.Timeout.Duration = opts.timeout
	}
	if opts.htmlOut != "" {
		cfg.HTMLOut = opts.htmlOut
	}
	if opts.lineWidth > 0 {
		cfg.LineWidth = opts.lineWidth
	}
	if opts.color != "" {
		cfg.Color = opts.color
	}
	if opts.trace != "" {
		cfg.TraceLevel = opts.trace
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	return cfg, nil
}

func setupTracing(cfg *config.Config, stderr io.Writer) {
	level, _ := cfg.Level()
	t := gologadapter.New()
	t.SetOutput(stderr)
	t.SetTraceLevel(level)
	tracing.SetTraceSelector(tracing.SelectorForAdapter(func() tracing.Trace { return t }))
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintln(stderr, "gecview:", err)
		return 2
	}
	if opts.listExamples {
		for _, key := range editor.ExampleKeys() {
			text, _ := editor.Example(key)
			fmt.Fprintf(stdout, "%-16s %s\n", key, text)
		}
		return 0
	}
	cfg, err := loadConfig(opts)
	if err != nil {
		fmt.Fprintln(stderr, "gecview:", err)
		return 2
	}
	setupTracing(cfg, stderr)
	gec := client.New(cfg.Endpoint,
		client.WithTimeout(cfg.Timeout.Duration),
		client.WithUserAgent(cfg.UserAgent))
	if opts.ping {
		if err := gec.Ping(ctx); err != nil {
			fmt.Fprintln(stderr, "gecview:", err)
			return 1
		}
		fmt.Fprintf(stdout, "%s is up\n", gec.Endpoint())
		return 0
	}
	text, err := readInput(opts, stdin)
	if err != nil {
		fmt.Fprintln(stderr, "gecview:", err)
		return 1
	}
	var surface editor.Surface
	var page *html.Surface
	if cfg.HTMLOut != "" {
		page = html.NewSurface(cfg.TooltipMax)
		surface = page
	} else {
		surface = consoleSurface(cfg, stdout)
	}
	session := editor.New(surface, gec, editor.WithNotifier(editor.NewConsoleNotifier(stderr)))
	defer session.Close()
	if err := session.Edit(text); err != nil {
		fmt.Fprintln(stderr, "gecview:", err)
		return 1
	}
	if err := check(ctx, session, page, cfg, stderr); err != nil {
		return 1
	}
	if opts.copy {
		if err := session.Copy(); err != nil {
			fmt.Fprintln(stderr, "gecview: copy:", err)
			return 1
		}
	}
	if opts.watch {
		return watch(ctx, opts.file, session, page, cfg, stderr)
	}
	return 0
}

// readInput returns the text to check: a file, an example, stdin if it is
// not a terminal, or the initial sample text.
func readInput(opts *options, stdin io.Reader) (string, error) {
	switch {
	case opts.file != "":
		return textfile.Load(opts.file)
	case opts.example != "":
		return editor.Example(opts.example)
	}
	if f, ok := stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return editor.InitialText, nil
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", err
	}
	return strings.TrimSuffix(string(data), "\n"), nil
}

func consoleSurface(cfg *config.Config, out io.Writer) *formatter.ConsoleSurface {
	fcfg := &formatter.Config{LineWidth: cfg.LineWidth, TooltipMax: cfg.TooltipMax}
	if fcfg.LineWidth == 0 {
		fcfg.LineWidth = formatter.ConfigFromTerminal().LineWidth
	}
	fcfg.Context = uax11.ContextFromEnvironment()
	format := formatter.NewConsoleFixedWidthFormat(nil, cfg.TooltipMax)
	switch cfg.Color {
	case config.ColorAlways:
		format.SetColor(true)
	case config.ColorNever:
		format.SetColor(false)
	}
	return formatter.NewConsoleSurface(out, fcfg, format)
}

// check runs a single check and reports the statistics. Failures have
// already been shown to the user by the session's notifier.
func check(ctx context.Context, session *editor.Session, page *html.Surface, cfg *config.Config, stderr io.Writer) error {
	err := session.Check(ctx)
	fmt.Fprintln(stderr, session.Stats())
	if err != nil {
		return err
	}
	if page != nil {
		return writePage(page, cfg.HTMLOut)
	}
	return nil
}

func writePage(page *html.Surface, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = page.WriteDocument(f, "gecview"); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// watch re-checks a file each time it is saved, until ctx is done.
func watch(ctx context.Context, name string, session *editor.Session, page *html.Surface, cfg *config.Config, stderr io.Writer) int {
	w, err := textfile.Watch(ctx, name)
	if err != nil {
		fmt.Fprintln(stderr, "gecview:", err)
		return 1
	}
	defer w.Close()
	changes, ok := w.Subscribe(ctx, 1)
	if !ok {
		return 1
	}
	fmt.Fprintf(stderr, "watching %s, press Ctrl-C to stop\n", name)
	for change := range changes {
		if change.Err != nil {
			fmt.Fprintln(stderr, "gecview:", change.Err)
			continue
		}
		if change.Text == session.Text() {
			continue
		}
		if err := session.Edit(change.Text); err != nil {
			fmt.Fprintln(stderr, "gecview:", err)
			continue
		}
		_ = check(ctx, session, page, cfg, stderr)
	}
	return 0
}
