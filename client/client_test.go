package client

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/npillmayer/gecview"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func service(t *testing.T, status int, body string) (*httptest.Server, *[]string) {
	t.Helper()
	var received []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/healthCheck" {
			w.Write([]byte("ok\n"))
			return
		}
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		data, _ := io.ReadAll(r.Body)
		var req Request
		assert.NoError(t, json.Unmarshal(data, &req))
		received = append(received, req.Text)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, &received
}

func TestCheck(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gecview")
	defer teardown()
	//
	srv, received := service(t, http.StatusOK, `{
		"corrected_text": "We should buy a car.",
		"text_markups": [
			{"index": 3, "length": 5, "message": "Possible spelling mistake", "category": "SPELLING_MISTAKE"},
			{"index": "13", "length": 2, "message": "Use a", "category": "GRAMMAR"},
			{"index": null, "length": 2},
			42
		],
		"gibberish_scores": [{"index": 0, "length": 20, "score": {"clean": 0.9, "mild": 0.05, "noise": 0.03, "wordSalad": 0.02}}],
		"character_count": 20,
		"error_character_count": 7,
		"contains_profanity": false,
		"service_time": 0.042
	}`)
	c := New(srv.URL + "/api/gec")
	resp, err := c.Check(context.Background(), "we shood buy an car. <&>")
	require.NoError(t, err)
	require.Equal(t, []string{"we shood buy an car. <&>"}, *received)
	assert.Equal(t, "We should buy a car.", resp.CorrectedText)
	assert.Equal(t, 20, resp.CharacterCount)
	assert.Len(t, resp.GibberishScores, 1)
	assert.InDelta(t, 0.9, resp.GibberishScores[0].Score.Clean, 1e-6)
	anns := resp.Annotations()
	require.Len(t, anns, 4)
	assert.Equal(t, gecview.Annotation{Start: 3, Length: 5, Category: "SPELLING_MISTAKE",
		Message: "Possible spelling mistake"}, anns[0])
	assert.Equal(t, 13, anns[1].Start)
	assert.Equal(t, -1, anns[2].Start)
	assert.Equal(t, -1, anns[3].Start)
	assert.Len(t, gecview.Normalize(anns, 20), 2)
}

func TestCheckNoMarkups(t *testing.T) {
	srv, _ := service(t, http.StatusOK, `{"corrected_text": "Fine.", "text_markups": null}`)
	resp, err := New(srv.URL).Check(context.Background(), "Fine.")
	require.NoError(t, err)
	assert.Empty(t, resp.Annotations())
}

func TestCheckFailures(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gecview")
	defer teardown()
	//
	for _, tc := range []struct {
		name   string
		status int
		body   string
	}{
		{"server error", http.StatusInternalServerError, "Error processing grammar: boom"},
		{"bad request", http.StatusBadRequest, "Text field is required"},
		{"not json", http.StatusOK, "<html>oops</html>"},
		{"not an object", http.StatusOK, `[1, 2, 3]`},
		{"wrong field type", http.StatusOK, `{"text_markups": "none"}`},
	} {
		t.Run(tc.name, func(t *testing.T) {
			srv, _ := service(t, tc.status, tc.body)
			resp, err := New(srv.URL).Check(context.Background(), "text")
			require.Error(t, err)
			assert.Nil(t, resp)
			assert.True(t, errors.Is(err, ErrCheckFailed))
			var cerr *Error
			require.True(t, errors.As(err, &cerr))
			assert.Equal(t, tc.status, cerr.Status)
			if tc.status != http.StatusOK {
				assert.Contains(t, err.Error(), tc.body)
			}
		})
	}
}

func TestCheckTransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()
	_, err := New(url, WithTimeout(time.Second)).Check(context.Background(), "text")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCheckFailed)
	var cerr *Error
	require.ErrorAs(t, err, &cerr)
	assert.Zero(t, cerr.Status)
}

func TestCheckCanceled(t *testing.T) {
	srv, _ := service(t, http.StatusOK, `{}`)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := New(srv.URL).Check(ctx, "text")
	assert.ErrorIs(t, err, ErrCheckFailed)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestOptions(t *testing.T) {
	var ua string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ua = r.Header.Get("User-Agent")
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()
	hc := &http.Client{}
	c := New(srv.URL, WithHTTPClient(hc), WithTimeout(5*time.Second), WithUserAgent("test-agent"))
	assert.Equal(t, 5*time.Second, c.http.Timeout)
	assert.Zero(t, hc.Timeout, "caller's client must not be modified")
	_, err := c.Check(context.Background(), "x")
	require.NoError(t, err)
	assert.Equal(t, "test-agent", ua)
	assert.Equal(t, DefaultEndpoint, New("").Endpoint())
}

func TestPing(t *testing.T) {
	srv, _ := service(t, http.StatusOK, `{}`)
	assert.NoError(t, New(srv.URL+"/api/gec").Ping(context.Background()))
	down := httptest.NewServer(http.NotFoundHandler())
	defer down.Close()
	err := New(down.URL + "/api/gec").Ping(context.Background())
	assert.ErrorIs(t, err, ErrCheckFailed)
}
