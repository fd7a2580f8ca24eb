package gecview

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// Annotation is a flagged span of text, together with a category and an
// explanatory message. Start and Length are counted in runes.
type Annotation struct {
	Start    int
	Length   int
	Category string
	Message  string
}

// End returns the (exclusive) end position of the annotation.
func (a Annotation) End() int {
	return a.Start + a.Length
}

func (a Annotation) String() string {
	return fmt.Sprintf("[%d…%d|%s]", a.Start, a.End(), a.Category)
}

// valid checks an annotation against the length of the text it refers to.
// Written to not overflow for huge start/length values.
func (a Annotation) valid(textLength int) bool {
	if a.Start < 0 || a.Length < 0 || textLength < 0 {
		return false
	}
	return a.Start <= textLength && a.Length <= textLength-a.Start
}

// --- Markups as delivered by the correction service ------------------------

// RawMarkup is a markup as received from the correction service:
//
//	{ "index": 4, "length": 5, "message": "…", "category": "SPELLING_MISTAKE" }
//
// The service is not trusted, so fields are kept undecoded until a RawMarkup is
// converted to an Annotation. Decoding a RawMarkup from JSON never fails; a
// markup which is not a JSON object ends up with all fields empty.
type RawMarkup struct {
	Index    json.RawMessage `json:"index"`
	Length   json.RawMessage `json:"length"`
	Message  json.RawMessage `json:"message"`
	Category json.RawMessage `json:"category"`
}

// Markup creates a well-formed RawMarkup.
func Markup(index, length int, category, message string) RawMarkup {
	return RawMarkup{
		Index:    json.RawMessage(strconv.Itoa(index)),
		Length:   json.RawMessage(strconv.Itoa(length)),
		Message:  quote(message),
		Category: quote(category),
	}
}

func quote(s string) json.RawMessage {
	b, _ := json.Marshal(s)
	return b
}

// UnmarshalJSON is part of interface json.Unmarshaler.
func (m *RawMarkup) UnmarshalJSON(data []byte) error {
	type plain RawMarkup
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		tracer().Debugf("markup is not an object: %s", bytes.TrimSpace(data))
		*m = RawMarkup{}
		return nil
	}
	*m = RawMarkup(p)
	return nil
}

// Annotation converts a raw markup to an annotation. Offsets which are missing,
// not numeric or not integral are set to -1, which will make the annotation
// fail normalization.
func (m RawMarkup) Annotation() Annotation {
	return Annotation{
		Start:    offset(m.Index),
		Length:   offset(m.Length),
		Category: text(m.Category),
		Message:  text(m.Message),
	}
}

// offset accepts JSON numbers and numeric strings holding an integer.
func offset(raw json.RawMessage) int {
	if len(raw) == 0 {
		return -1
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return -1
	}
	switch x := v.(type) {
	case float64:
		if x != math.Trunc(x) || x > math.MaxInt32 || x < math.MinInt32 {
			return -1
		}
		return int(x)
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(x))
		if err != nil {
			return -1
		}
		return n
	}
	return -1
}

func text(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return s
}

// Annotations converts a list of raw markups, keeping their order. No markup is
// dropped; invalid offsets are left for Normalize to detect.
func Annotations(markups []RawMarkup) []Annotation {
	anns := make([]Annotation, len(markups))
	for i, m := range markups {
		anns[i] = m.Annotation()
	}
	return anns
}

// --- Normalization ---------------------------------------------------------

// Normalize validates, sorts and de-overlaps a set of annotations for a text
// with textLength runes.
//
// Annotations with start < 0, length < 0 or end > textLength are dropped.
// The remaining ones are sorted by start position, ties broken by end position.
// An annotation overlapping a previously accepted one is dropped as a whole.
// The result satisfies result[i].End() <= result[i+1].Start for all i.
//
// Normalize is idempotent and does not modify anns.
func Normalize(anns []Annotation, textLength int) []Annotation {
	valid := make([]Annotation, 0, len(anns))
	for _, a := range anns {
		if !a.valid(textLength) {
			tracer().Debugf("dropping invalid annotation %v for text length %d", a, textLength)
			continue
		}
		valid = append(valid, a)
	}
	sort.SliceStable(valid, func(i, j int) bool {
		if valid[i].Start != valid[j].Start {
			return valid[i].Start < valid[j].Start
		}
		return valid[i].End() < valid[j].End()
	})
	normalized := valid[:0]
	lastEnd := -1
	for _, a := range valid {
		if a.Start < lastEnd {
			tracer().Debugf("dropping annotation %v overlapping end %d", a, lastEnd)
			continue
		}
		normalized = append(normalized, a)
		lastEnd = a.End()
	}
	return normalized
}

// NormalizeMarkups converts raw markups to annotations and normalizes them.
func NormalizeMarkups(markups []RawMarkup, textLength int) []Annotation {
	return Normalize(Annotations(markups), textLength)
}
