package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/npillmayer/schuko/tracing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8089/api/gec", cfg.Endpoint)
	assert.Equal(t, 30*time.Second, cfg.Timeout.Duration)
	assert.Equal(t, 400, cfg.TooltipMax)
	cfg, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadFormats(t *testing.T) {
	for name, content := range map[string]string{
		"gecview.toml": "endpoint = \"https://gec.example.com/api/gec\"\ntimeout = \"5s\"\nline_width = 72\ncolor = \"never\"\n",
		"gecview.yaml": "endpoint: https://gec.example.com/api/gec\ntimeout: 5s\nline_width: 72\ncolor: never\n",
		"gecview.json": `{"endpoint": "https://gec.example.com/api/gec", "timeout": "5s", "line_width": 72, "color": "never"}`,
		"gecview.conf": "endpoint = \"https://gec.example.com/api/gec\"\ntimeout = \"5s\"\nline_width = 72\ncolor = \"never\"\n",
	} {
		t.Run(name, func(t *testing.T) {
			cfg, err := Load(writeFile(t, name, content))
			require.NoError(t, err)
			assert.Equal(t, "https://gec.example.com/api/gec", cfg.Endpoint)
			assert.Equal(t, 5*time.Second, cfg.Timeout.Duration)
			assert.Equal(t, 72, cfg.LineWidth)
			assert.Equal(t, ColorNever, cfg.Color)
			assert.Equal(t, 400, cfg.TooltipMax, "unset values keep their defaults")
		})
	}
}

func TestEnvOverridesFile(t *testing.T) {
	path := writeFile(t, "gecview.toml", "endpoint = \"https://file.example.com/api\"\ntrace_level = \"info\"\n")
	t.Setenv("GECVIEW_ENDPOINT", "http://env.example.com:8089/api/gec")
	t.Setenv("GECVIEW_TIMEOUT", "2s")
	t.Setenv("GECVIEW_TRACE", "debug")
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "http://env.example.com:8089/api/gec", cfg.Endpoint)
	assert.Equal(t, 2*time.Second, cfg.Timeout.Duration)
	level, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, tracing.LevelDebug, level)
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	cfg.Endpoint = "localhost:8089"
	cfg.Timeout.Duration = 0
	cfg.Color = "sometimes"
	cfg.TraceLevel = "verbose"
	err := cfg.Validate()
	require.Error(t, err)
	for _, field := range []string{"endpoint", "timeout", "color", "trace_level"} {
		assert.Contains(t, err.Error(), field)
	}
	_, err = Load(writeFile(t, "bad.toml", "tooltip_max = 2\n"))
	assert.Error(t, err)
	_, err = Load(writeFile(t, "broken.json", "{"))
	assert.Error(t, err)
}

func TestSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "saved.toml")
	cfg := DefaultConfig()
	cfg.LineWidth = 80
	require.NoError(t, Save(cfg, path))
	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}
