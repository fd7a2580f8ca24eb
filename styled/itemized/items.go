/*
Package itemized provides a pull-interface to the style runs of a styled text.

Formatters iterate over the runs of a decorated line to output them one by one:

	it := itemized.IterateText(line)
	for it.Next() {
		content, sty, from, to := it.Run()
		…
	}

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

For details please refer to the LICENSE file.
*/
package itemized

import (
	"github.com/npillmayer/gecview"
	"github.com/npillmayer/gecview/styled"
)

// Iterator iterates over the style runs of a styled text or paragraph.
// Runs of length zero are reported like every other run.
type Iterator struct {
	segs    []styled.Segment
	offset  int
	inx     int
	lastErr error
}

// IterateText creates an iterator for the runs of a styled text.
func IterateText(text *styled.Text) *Iterator {
	iterator := &Iterator{}
	if text == nil {
		iterator.lastErr = gecview.ErrIllegalArguments
		return iterator
	}
	iterator.segs = text.Segments()
	return iterator
}

// IterateParagraphText creates an iterator for the runs of a paragraph which
// have not yet been split off. Positions are reported relative to the
// embedding text.
func IterateParagraphText(para *styled.Paragraph) *Iterator {
	iterator := &Iterator{}
	if para == nil {
		iterator.lastErr = gecview.ErrIllegalArguments
		return iterator
	}
	iterator.segs = para.Text().Segments()
	if runs := para.StyleRuns(); len(runs) > 0 {
		iterator.offset = runs[0].Position
	} else {
		iterator.offset = para.Offset
	}
	return iterator
}

// Next moves the iterator to the next style run. It returns false if
// there are no more runs or an error occurred.
func (it *Iterator) Next() bool {
	if it.lastErr != nil || it.inx >= len(it.segs) {
		return false
	}
	it.inx++
	return true
}

// LastError returns the error which stopped the iteration, if any.
func (it *Iterator) LastError() error {
	return it.lastErr
}

// Style returns the style at the current iterator position, together with
// the text indices [from…to) of the style run.
func (it *Iterator) Style() (styled.Style, int, int) {
	if it.inx == 0 || it.lastErr != nil {
		return nil, 0, 0
	}
	s := it.segs[it.inx-1]
	return s.Style, s.Pos + it.offset, s.Pos + it.offset + s.Len
}

// Run returns the text of the current style run, its style and its text
// indices [from…to). The text is empty for a run of length zero.
func (it *Iterator) Run() (string, styled.Style, int, int) {
	if it.inx == 0 || it.lastErr != nil {
		return "", nil, 0, 0
	}
	s := it.segs[it.inx-1]
	return s.Text, s.Style, s.Pos + it.offset, s.Pos + it.offset + s.Len
}
