package inline

import (
	"strings"
	"testing"
)

func TestTooltipFallbacks(t *testing.T) {
	if tip := Tooltip("  Possible typo  ", "TYPOS", 0); tip != "Possible typo" {
		t.Errorf("expected trimmed message, have %q", tip)
	}
	if tip := Tooltip("", "TYPOS", 0); tip != "TYPOS" {
		t.Errorf("expected category, have %q", tip)
	}
	if tip := Tooltip(" ", "", 0); tip != "Suggestion" {
		t.Errorf("expected generic tooltip, have %q", tip)
	}
}

func TestTooltipShortened(t *testing.T) {
	long := strings.Repeat("x", 450)
	tip := Tooltip(long, "", 0)
	if len(tip) != DefaultTooltipMax || !strings.HasSuffix(tip, "...") {
		t.Errorf("expected tooltip of length %d ending in '...', have length %d", DefaultTooltipMax, len(tip))
	}
	exact := strings.Repeat("y", DefaultTooltipMax)
	if tip = Tooltip(exact, "", 0); tip != exact {
		t.Errorf("expected tooltip of exactly max length to be kept")
	}
	if tip = Shorten("Grüße an alle", 8); tip != "Grüße..." {
		t.Errorf("expected 'Grüße...', have %q", tip)
	}
}

func TestHighlightTooltip(t *testing.T) {
	h := Highlight{Class: GrammarClass, Category: "GRAMMAR"}
	if h.Tooltip(0) != "GRAMMAR" {
		t.Errorf("expected category as tooltip, have %q", h.Tooltip(0))
	}
	if h.String() != "hl:GRAMMAR" {
		t.Errorf("unexpected string for highlight: %q", h.String())
	}
	if !h.Equals(Highlight{Class: GrammarClass, Category: "GRAMMAR"}) || h.Equals(Highlight{Class: SpellingClass}) {
		t.Errorf("highlight equality broken")
	}
	if ClassOf("Spelling_Mistake") != SpellingClass || ClassOf("TYPOGRAPHY") != GrammarClass {
		t.Errorf("unexpected class for category")
	}
}
