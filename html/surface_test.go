package html

import (
	"bytes"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/npillmayer/gecview"
	"github.com/npillmayer/gecview/styled/inline"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

var texts = []string{
	"",
	"we shood buy an car.",
	"one\ntwo",
	"one\n\ntwo\n",
	"\nleading newline",
	"  indented   with  spaces ",
	`special <chars> & "quotes" 'here'`,
	"Grüße aus Köln, 日本語, 👍🏽",
}

func TestPlainTextRoundTrip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gecview")
	defer teardown()
	//
	s := NewSurface(0)
	for _, text := range texts {
		if err := s.SetPlainText(text); err != nil {
			t.Fatal(err)
		}
		back, err := s.ReadPlainText()
		if err != nil {
			t.Fatal(err)
		}
		if back != text {
			t.Errorf("expected %q, have %q (html=%s)", text, back, s.HTML())
		}
	}
}

func TestPlainTextParagraphs(t *testing.T) {
	s := NewSurface(0)
	s.SetPlainText("a\n\nb<")
	if s.HTML() != "<p>a</p><p>&nbsp;</p><p>b&lt;</p>" {
		t.Errorf("unexpected html %q", s.HTML())
	}
}

func TestRenderRoundTrip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gecview")
	defer teardown()
	//
	s := NewSurface(0)
	for _, text := range texts {
		n := utf8.RuneCountInString(text)
		for _, anns := range [][]gecview.Annotation{
			nil,
			{{Start: 0, Length: n / 2, Category: "SPELLING"}},
			{{Start: 0, Length: 0}, {Start: n / 2, Length: n - n/2, Message: "all the rest"}},
			{{Start: n, Length: 0, Category: "PUNCTUATION"}},
		} {
			norm := gecview.Normalize(anns, n)
			if err := s.Render(inline.Decorate(text, norm)); err != nil {
				t.Fatal(err)
			}
			back, err := s.ReadPlainText()
			if err != nil {
				t.Fatal(err)
			}
			if back != text {
				t.Errorf("expected %q, have %q (html=%s)", text, back, s.HTML())
			}
		}
	}
}

func TestRenderDegenerateRangeIsVisible(t *testing.T) {
	s := NewSurface(0)
	s.Render(inline.Decorate("ab", []gecview.Annotation{{Start: 1, Length: 0, Message: "here"}}))
	if !strings.Contains(s.HTML(), `data-tooltip="here" data-empty="true"> </span>`) {
		t.Errorf("expected placeholder span, have %s", s.HTML())
	}
}

func TestEditedContent(t *testing.T) {
	s := NewSurface(0)
	s.SetHTML(`<div>we should buy</div><div><span class="hl" data-tooltip="x">a</span> car.</div>`)
	text, err := s.ReadPlainText()
	if err != nil {
		t.Fatal(err)
	}
	if text != "we should buy\na car." {
		t.Errorf("unexpected text %q", text)
	}
	s.Clear()
	if text, _ = s.ReadPlainText(); text != "" {
		t.Errorf("expected empty text after Clear, have %q", text)
	}
}

func TestWriteDocument(t *testing.T) {
	s := NewSurface(0)
	s.SetPlainText("hello")
	var buf bytes.Buffer
	if err := s.WriteDocument(&buf, "Check <1>"); err != nil {
		t.Fatal(err)
	}
	doc := buf.String()
	if !strings.Contains(doc, "<title>Check &lt;1&gt;</title>") || !strings.Contains(doc, "<p>hello</p>") {
		t.Errorf("unexpected document:\n%s", doc)
	}
}
