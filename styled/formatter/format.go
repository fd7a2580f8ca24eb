package formatter

import (
	"bufio"
	"io"
	"os"
	"unicode/utf8"

	"github.com/npillmayer/gecview"
	"github.com/npillmayer/gecview/styled"
	"github.com/npillmayer/gecview/styled/itemized"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/segment"
	"github.com/npillmayer/uax/uax11"
	"github.com/npillmayer/uax/uax14"
)

// Config represents a set of configuration parameters for formatting.
type Config struct {
	LineWidth  int // wrap lines longer than this; <= 0 disables wrapping
	TooltipMax int // maximum length of annotation messages; <= 0 selects the default
	Context    *uax11.Context
}

// Format is an interface for formatting drivers, given an io.Writer.
type Format interface {
	Preamble(io.Writer)
	Postamble(io.Writer)
	StyledText(string, styled.Style, io.Writer) // text is empty for a run of length zero
	Line(int, int, io.Writer) // start of an output line
	Wrap(io.Writer)           // soft line break inserted by line wrapping
	Newline(io.Writer)        // line break of the text
}

// Output formats a styled text using a given format.
//
// The text is split into lines at newline characters. Each line is wrapped
// to config.LineWidth with a first-fit strategy, using UAX#14 break
// opportunities and UAX#11 character widths. Formats are expected to output
// styled runs of length zero as styled.Placeholder.
//
// Neither of the arguments may be nil. However, it is safe to have config.Context
// set to nil. In this case, uax11.LatinContext is used.
func Output(text *styled.Text, out io.Writer, config *Config, format Format) error {
	if text == nil || out == nil || config == nil || format == nil {
		return gecview.ErrIllegalArguments
	} else if config.Context == nil {
		config.Context = uax11.LatinContext
	}
	paras, err := styled.Lines(text)
	if err != nil {
		return err
	}
	format.Preamble(out)
	for i, para := range paras {
		if i > 0 {
			format.Newline(out)
		}
		breaks := []int{para.Len()}
		if config.LineWidth > 0 {
			breaks = firstFit(para, config.LineWidth, config.Context)
		}
		for j, pos := range breaks {
			line, err := para.WrapAt(pos)
			if err != nil {
				tracer().Errorf("error Paragraph.WrapAt = %v", err)
				return err
			}
			tracer().Debugf("[%3d] %q with styles = %v", j, line.Raw(), line.StyleRuns())
			if j > 0 {
				format.Wrap(out)
			}
			format.Line(line.Len(), config.LineWidth, out)
			iter := itemized.IterateText(line)
			for iter.Next() {
				content, style, _, _ := iter.Run()
				format.StyledText(content, style, out)
			}
		}
	}
	format.Postamble(out)
	return nil
}

// Print outputs a styled text to stdout, using the console format.
//
// If parameter config is nil,
// a heuristic will create a config from the current terminal's properties (if
// stdout is interactive). Config.Context will also be created based on heuristics
// from the user environment.
func Print(text *styled.Text, config *Config) error {
	if config == nil {
		config = ConfigFromTerminal()
		config.Context = uax11.ContextFromEnvironment()
	}
	consoleFmt := NewConsoleFixedWidthFormat(nil, config.TooltipMax)
	return Output(text, os.Stdout, config, consoleFmt)
}

// --- Line breaking ---------------------------------------------------------
/*
Wikipedia:

	1. |  SpaceLeft := LineWidth
	2. |  for each Word in Text
	3. |      if (Width(Word) + SpaceWidth) > SpaceLeft
	4. |           insert line break before Word in Text
	5. |           SpaceLeft := LineWidth - Width(Word)
	6. |      else
	7. |           SpaceLeft := SpaceLeft - (Width(Word) + SpaceWidth)

Break positions are rune positions relative to the start of the paragraph.
The last break is always at the end of the paragraph, so even an empty
paragraph results in one (empty) line.
*/
func firstFit(para *styled.Paragraph, linewidth int, context *uax11.Context) []int {
	grapheme.SetupGraphemeClasses()
	linewrap := uax14.NewLineWrap()
	segmenter := segment.NewSegmenter(linewrap)
	spaceleft := linewidth
	segmenter.Init(bufio.NewReader(para.Reader()))
	breaks := make([]int, 0, 20)
	addBreak := func(pos int) {
		if len(breaks) == 0 || breaks[len(breaks)-1] < pos {
			tracer().Debugf("break @ %d", pos)
			breaks = append(breaks, pos)
		}
	}
	prevpos := 0
	linestart := true
	for segmenter.Next() {
		frag := string(segmenter.Bytes())
		gstr := grapheme.StringFromString(frag)
		fraglen := uax11.StringWidth(gstr, context)
		n := utf8.RuneCountInString(frag)
		if fraglen >= spaceleft {
			if linestart { // fragment is too long for a line
				addBreak(prevpos + n)
				spaceleft = linewidth
				prevpos += n
				continue
			}
			addBreak(prevpos) // fragment overshoots line
			spaceleft = linewidth - fraglen
		} else { // no break, just append the fragment to the current line
			spaceleft -= fraglen
		}
		linestart = false
		prevpos += n
	}
	addBreak(para.Len())
	return breaks
}
