package main

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gecService(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/healthCheck" {
			w.Write([]byte("ok\n"))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

const sampleResponse = `{"corrected_text": "We should buy a car.", "text_markups": [
	{"index": 3, "length": 5, "message": "Possible spelling mistake", "category": "SPELLING_MISTAKE"},
	{"index": 13, "length": 2, "message": "Use a", "category": "GRAMMAR"}]}`

func runCLI(t *testing.T, stdin string, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), args, strings.NewReader(stdin), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRunConsole(t *testing.T) {
	srv := gecService(t, http.StatusOK, sampleResponse)
	code, out, errout := runCLI(t, "we shood buy an car.\n",
		"-endpoint", srv.URL+"/api/gec", "-color", "never", "-w", "60")
	require.Equal(t, 0, code, errout)
	assert.Contains(t, out, "we shood[1] buy an[2] car.")
	assert.Contains(t, out, `[1] "shood": Possible spelling mistake`)
	assert.Contains(t, out, `[2] "an": Use a`)
	assert.Contains(t, errout, "words: 5   spelling: 1   grammar: 1")
}

func TestRunHTML(t *testing.T) {
	srv := gecService(t, http.StatusOK, sampleResponse)
	dir := t.TempDir()
	in := filepath.Join(dir, "letter.txt")
	require.NoError(t, os.WriteFile(in, []byte("we shood buy an car."), 0o600))
	page := filepath.Join(dir, "out.html")
	code, out, errout := runCLI(t, "", "-endpoint", srv.URL+"/api/gec", "-f", in, "-html", page)
	require.Equal(t, 0, code, errout)
	assert.Empty(t, out)
	data, err := os.ReadFile(page)
	require.NoError(t, err)
	assert.Contains(t, string(data), `<span class="spell" data-tooltip="Possible spelling mistake">shood</span>`)
	assert.Contains(t, string(data), `contenteditable="true"`)
}

func TestRunFailure(t *testing.T) {
	srv := gecService(t, http.StatusInternalServerError, "Error processing grammar")
	code, _, errout := runCLI(t, "", "-endpoint", srv.URL+"/api/gec", "-example", "sva", "-color", "never", "-w", "60")
	assert.Equal(t, 1, code)
	assert.Contains(t, errout, "Check failed: ")
	assert.Contains(t, errout, "HTTP 500")
	assert.Contains(t, errout, "spelling: 0   grammar: 0")
}

func TestRunUsage(t *testing.T) {
	code, out, _ := runCLI(t, "", "-list-examples")
	assert.Equal(t, 0, code)
	assert.True(t, strings.HasPrefix(out, "apostrophe"), out)
	code, _, errout := runCLI(t, "", "-watch")
	assert.Equal(t, 2, code)
	assert.Contains(t, errout, "-watch needs a file")
	code, _, _ = runCLI(t, "", "-endpoint", "localhost", "-example", "sva")
	assert.Equal(t, 2, code)
	code, _, _ = runCLI(t, "", "-example", "nope", "-endpoint", "http://localhost:1/api/gec")
	assert.Equal(t, 1, code)
}

func TestRunPing(t *testing.T) {
	srv := gecService(t, http.StatusOK, "")
	code, out, errout := runCLI(t, "", "-endpoint", srv.URL+"/api/gec", "-ping")
	require.Equal(t, 0, code, errout)
	assert.Contains(t, out, "is up")
}
