package inline

import (
	"math/rand"
	"testing"
	"unicode/utf8"

	"github.com/npillmayer/gecview"
	"github.com/npillmayer/gecview/styled"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestDecorateSimple(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gecview")
	defer teardown()
	//
	text := "we shood buy an car."
	anns := []gecview.Annotation{
		{Start: 3, Length: 5, Category: "SPELLING_MISTAKE", Message: "Possible spelling mistake"},
		{Start: 13, Length: 2, Category: "GRAMMAR", Message: "Use “a” instead of “an”"},
	}
	decorated := Decorate(text, anns)
	segs := decorated.Segments()
	if len(segs) != 5 {
		t.Fatalf("expected 5 segments, have %d", len(segs))
	}
	expected := []string{"we ", "shood", " buy ", "an", " car."}
	for i, seg := range segs {
		if seg.Text != expected[i] {
			t.Errorf("segment #%d: expected %q, have %q", i, expected[i], seg.Text)
		}
	}
	if h, ok := HighlightOf(segs[1].Style); !ok || h.Class != SpellingClass {
		t.Errorf("expected spelling highlight for 'shood', have %v", segs[1].Style)
	}
	if h, ok := HighlightOf(segs[3].Style); !ok || h.Class != GrammarClass {
		t.Errorf("expected grammar highlight for 'an', have %v", segs[3].Style)
	}
	if segs[0].Style != nil || segs[4].Style != nil {
		t.Errorf("expected plain segments at start and end")
	}
	if styled.Project(decorated) != text {
		t.Errorf("projection differs: %q", styled.Project(decorated))
	}
}

func TestDecorateNoAnnotations(t *testing.T) {
	decorated := Decorate("nothing to see", nil)
	if decorated.IsStyled() || decorated.Raw() != "nothing to see" {
		t.Errorf("expected unstyled text, have %v", decorated.Segments())
	}
	if decorated = Decorate("", nil); len(decorated.Segments()) != 0 {
		t.Errorf("expected no segments for empty text")
	}
}

func TestDecorateDegenerateRange(t *testing.T) {
	text := "abc"
	decorated := Decorate(text, []gecview.Annotation{{Start: 1, Length: 0, Category: "PUNCTUATION"}})
	segs := decorated.Segments()
	if len(segs) != 3 {
		t.Fatalf("expected 3 segments, have %d", len(segs))
	}
	if segs[1].Display() == "" || segs[1].Text != "" {
		t.Errorf("expected visible placeholder without underlying text, have %q/%q",
			segs[1].Display(), segs[1].Text)
	}
	if styled.Project(decorated) != text {
		t.Errorf("projection differs: %q", styled.Project(decorated))
	}
}

func TestDecorateAdjacentAndEdges(t *testing.T) {
	text := "abcdef"
	anns := []gecview.Annotation{
		{Start: 0, Length: 2}, {Start: 2, Length: 2}, {Start: 6, Length: 0},
	}
	segs := Decorate(text, anns).Segments()
	if len(segs) != 4 {
		t.Fatalf("expected 4 segments, have %d: %v", len(segs), segs)
	}
	if segs[0].Text != "ab" || segs[1].Text != "cd" || segs[2].Text != "ef" || segs[3].Len != 0 {
		t.Errorf("unexpected segments %v", segs)
	}
}

func TestDecorateNonASCII(t *testing.T) {
	text := "Schöne Grüße,\nnaïve café"
	anns := gecview.Normalize([]gecview.Annotation{
		{Start: 7, Length: 5, Category: "SPELLING"},
		{Start: 20, Length: 4, Category: "TYPOS"},
	}, utf8.RuneCountInString(text))
	segs := Decorate(text, anns).Segments()
	if segs[1].Text != "Grüße" || segs[3].Text != "café" {
		t.Errorf("unexpected segments %v", segs)
	}
}

func TestDecorateRoundTripRandom(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gecview")
	defer teardown()
	//
	texts := []string{"", "a", "Hello World", "zwei\n\nZeilen über Äpfel", "日本語のテキスト", "emoji 👍🏽 here"}
	rnd := rand.New(rand.NewSource(42))
	for _, text := range texts {
		n := utf8.RuneCountInString(text)
		for round := 0; round < 50; round++ {
			var anns []gecview.Annotation
			for i := 0; i < rnd.Intn(6); i++ {
				anns = append(anns, gecview.Annotation{
					Start:  rnd.Intn(n+3) - 1,
					Length: rnd.Intn(n+3) - 1,
				})
			}
			norm := gecview.Normalize(anns, n)
			decorated := Decorate(text, norm)
			if styled.Project(decorated) != text {
				t.Fatalf("round trip failed for %q with %v", text, norm)
			}
			highlights := 0
			for _, seg := range decorated.Segments() {
				if seg.Style != nil {
					highlights++
				}
			}
			if highlights != len(norm) {
				t.Fatalf("expected %d highlights, have %d", len(norm), highlights)
			}
		}
	}
}
