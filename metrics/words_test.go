package metrics

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestWordsApplyWholeText(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gecview")
	defer teardown()
	//
	s := "Hello  my\nname\tis Simon"
	value, materialized, err := Words().Apply(s, 0, len(s))
	if err != nil {
		t.Fatalf("Words().Apply failed: %v", err)
	}
	if value.WordCount() != 5 {
		t.Fatalf("unexpected word count: got=%d want=5", value.WordCount())
	}
	if materialized != "HellomynameisSimon" {
		t.Fatalf("unexpected materialized text: got=%q", materialized)
	}
	want := []Span{
		{Pos: 0, Len: 5},
		{Pos: 7, Len: 2},
		{Pos: 10, Len: 4},
		{Pos: 15, Len: 2},
		{Pos: 18, Len: 5},
	}
	if len(value.Spans) != len(want) {
		t.Fatalf("unexpected spans len: got=%d want=%d", len(value.Spans), len(want))
	}
	for i := range want {
		if value.Spans[i] != want[i] {
			t.Fatalf("span %d mismatch: got=%+v want=%+v", i, value.Spans[i], want[i])
		}
	}
}

func TestWordsApplySubrange(t *testing.T) {
	s := "xx Hello world yy"
	value, materialized, err := Words().Apply(s, 3, 14)
	if err != nil {
		t.Fatalf("Words().Apply failed: %v", err)
	}
	if value.WordCount() != 2 {
		t.Fatalf("unexpected word count: got=%d want=2", value.WordCount())
	}
	if value.Spans[0] != (Span{Pos: 3, Len: 5}) {
		t.Fatalf("first span mismatch: got=%+v", value.Spans[0])
	}
	if value.Spans[1] != (Span{Pos: 9, Len: 5}) {
		t.Fatalf("second span mismatch: got=%+v", value.Spans[1])
	}
	if materialized != "Helloworld" {
		t.Fatalf("unexpected materialized text: got=%q", materialized)
	}
}

func TestWordsNonASCII(t *testing.T) {
	s := "größer als\u00a0naïve"
	value, _, err := Words().Apply(s, 0, len(s))
	if err != nil {
		t.Fatalf("Words().Apply failed: %v", err)
	}
	if value.WordCount() != 3 { // NBSP separates words
		t.Errorf("expected 3 words, got %d", value.WordCount())
	}
}

func TestWordsOutOfBounds(t *testing.T) {
	if _, _, err := Words().Apply("abc", 1, 7); err != ErrIndexOutOfBounds {
		t.Errorf("expected ErrIndexOutOfBounds, got %v", err)
	}
}

func TestLines(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gecview")
	defer teardown()
	//
	s := "one\n\ntwo\n"
	value, err := Lines().Apply(s, 0, len(s))
	if err != nil {
		t.Fatal(err)
	}
	want := []Span{{0, 3}, {4, 0}, {5, 3}, {9, 0}}
	if value.LineCount() != len(want) {
		t.Fatalf("expected %d lines, got %d: %v", len(want), value.LineCount(), value.Spans)
	}
	for i := range want {
		if value.Spans[i] != want[i] {
			t.Errorf("line %d: got %+v, want %+v", i, value.Spans[i], want[i])
		}
	}
	value, _ = Lines().Apply("", 0, 0)
	if value.LineCount() != 1 {
		t.Errorf("empty text should be a single line, got %d", value.LineCount())
	}
}
