package config

import (
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	base := func() *Config {
		c := &Config{}
		c.LoadDefaults()
		return c
	}

	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{
			name: "all flags",
			args: []string{"cmd", "-a", "https://api.example/server-api", "-d", "350", "-t", "4",
				"-f", "/tmp/pk.db", "-m", "127.0.0.1:9100", "-l", "debug"},
			expected: &Config{
				ServerBaseURL:  "https://api.example/server-api",
				SearchDebounce: 350 * time.Millisecond,
				RequestTimeout: 4 * time.Second,
				DatabaseDSN:    "/tmp/pk.db",
				MetricsAddr:    "127.0.0.1:9100",
				LogLevel:       "debug",
			},
		},
		{
			name:     "no flags keeps defaults",
			args:     []string{"cmd"},
			expected: base(),
		},
		{
			name: "unknown flags ignored",
			args: []string{"cmd", "-x", "1", "-c", "file.json", "-d=50"},
			expected: func() *Config {
				c := base()
				c.SearchDebounce = 50 * time.Millisecond
				return c
			}(),
		},
		{name: "bad debounce", args: []string{"cmd", "-d", "abc"}, expectPanic: true},
		{name: "bad timeout", args: []string{"cmd", "-t", "1.5"}, expectPanic: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Args = tt.args
			cfg := base()

			if tt.expectPanic {
				require.Panics(t, func() { parseFlags(cfg) })
				return
			}
			require.NotPanics(t, func() { parseFlags(cfg) })
			assert.Empty(t, cmp.Diff(tt.expected, cfg))
		})
	}
}

func TestParseFlags_KeepsFinerDurationsWhenUnset(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"cmd", "-l", "error"}

	cfg := &Config{RequestTimeout: 1500 * time.Millisecond, SearchDebounce: 1500 * time.Microsecond}
	parseFlags(cfg)

	assert.Equal(t, 1500*time.Millisecond, cfg.RequestTimeout)
	assert.Equal(t, 1500*time.Microsecond, cfg.SearchDebounce)
	assert.Equal(t, "error", cfg.LogLevel)
}
