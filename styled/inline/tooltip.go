package inline

import (
	"strings"
	"sync"

	"github.com/npillmayer/uax/grapheme"
)

// DefaultTooltipMax is the default maximum length of a tooltip.
const DefaultTooltipMax = 400

const ellipsis = "..."

var setupGraphemes sync.Once

// Tooltip creates the hover text for an annotation. It is the message, or the
// category if the message is blank, or "Suggestion" if both are blank.
// The text is trimmed and, if longer than max grapheme clusters, cut down to
// max-3 clusters followed by "...". max <= 0 selects DefaultTooltipMax.
func Tooltip(message, category string, max int) string {
	tip := strings.TrimSpace(message)
	if tip == "" {
		tip = strings.TrimSpace(category)
	}
	if tip == "" {
		return "Suggestion"
	}
	return Shorten(tip, max)
}

// Shorten cuts s down to at most max grapheme clusters, marking a cut by
// "...". max <= 0 selects DefaultTooltipMax.
func Shorten(s string, max int) string {
	if max <= 0 {
		max = DefaultTooltipMax
	}
	if len(s) <= max { // byte length bounds the cluster count
		return s
	}
	setupGraphemes.Do(grapheme.SetupGraphemeClasses)
	gstr := grapheme.StringFromString(s)
	if gstr.Len() <= max {
		return s
	}
	keep := max - len(ellipsis)
	if keep < 0 {
		keep = 0
	}
	var b strings.Builder
	for i := 0; i < keep; i++ {
		b.WriteString(gstr.Nth(i))
	}
	b.WriteString(ellipsis)
	return b.String()
}
