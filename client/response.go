package client

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"sync"

	"github.com/npillmayer/gecview"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

// Request is the body of a correction request.
type Request struct {
	Text string `json:"text"`
}

// Response is the result of a correction request.
type Response struct {
	CorrectedText       string              `json:"corrected_text"`
	TextMarkups         []gecview.RawMarkup `json:"text_markups"`
	GibberishScores     []GibberishScore    `json:"gibberish_scores,omitempty"`
	CharacterCount      int                 `json:"character_count"`
	ErrorCharacterCount int                 `json:"error_character_count"`
	ContainsProfanity   bool                `json:"contains_profanity"`
	ServiceTime         float64             `json:"service_time"`
}

// GibberishScore rates a range of the text for being gibberish.
type GibberishScore struct {
	Index  int `json:"index"`
	Length int `json:"length"`
	Score  struct {
		Clean     float32 `json:"clean"`
		Mild      float32 `json:"mild"`
		Noise     float32 `json:"noise"`
		WordSalad float32 `json:"wordSalad"`
	} `json:"score"`
}

// Annotations converts the markups of a response to annotations, in the
// order received. They are not normalized.
func (r *Response) Annotations() []gecview.Annotation {
	if r == nil {
		return nil
	}
	return gecview.Annotations(r.TextMarkups)
}

// --- Decoding --------------------------------------------------------------

//go:embed response.schema.json
var responseSchemaData []byte

const responseSchemaURL = "response.schema.json"

var (
	responseSchemaOnce sync.Once
	responseSchema     *jsonschema.Schema
	responseSchemaErr  error
)

func compileResponseSchema() (*jsonschema.Schema, error) {
	responseSchemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource(responseSchemaURL, bytes.NewReader(responseSchemaData)); err != nil {
			responseSchemaErr = err
			return
		}
		responseSchema, responseSchemaErr = compiler.Compile(responseSchemaURL)
	})
	return responseSchema, responseSchemaErr
}

// DecodeResponse decodes and validates the body of a service response.
// The body has to be a JSON object with informational fields of the
// expected types. Markups are decoded leniently, see gecview.RawMarkup.
func DecodeResponse(body []byte) (*Response, error) {
	var instance any
	if err := json.Unmarshal(body, &instance); err != nil {
		return nil, err
	}
	schema, err := compileResponseSchema()
	if err != nil {
		tracer().Errorf("cannot compile response schema: %v", err)
		return nil, err
	}
	if err := schema.Validate(instance); err != nil {
		return nil, err
	}
	resp := &Response{}
	if err := json.Unmarshal(body, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// marshalNoEscape behaves like json.Marshal but keeps <, > and & intact.
func marshalNoEscape(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
