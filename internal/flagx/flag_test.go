package flagx

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		allowed []string
		want    []string
	}{
		{
			name:    "separate value",
			args:    []string{"-a", "http://api.local", "-d", "300"},
			allowed: []string{"-a"},
			want:    []string{"-a", "http://api.local"},
		},
		{
			name:    "equals form",
			args:    []string{"-config=client.yaml", "-t", "5"},
			allowed: []string{"-config"},
			want:    []string{"-config=client.yaml"},
		},
		{
			name:    "order is preserved",
			args:    []string{"-t", "5", "-x", "1", "-a", "h:1"},
			allowed: []string{"-a", "-t"},
			want:    []string{"-t", "5", "-a", "h:1"},
		},
		{
			name:    "nothing allowed present",
			args:    []string{"-x", "1", "positional"},
			allowed: []string{"-a"},
			want:    []string{},
		},
		{
			name:    "trailing flag without value",
			args:    []string{"-m"},
			allowed: []string{"-m"},
			want:    []string{"-m"},
		},
		{
			name:    "next token is a flag, not a value",
			args:    []string{"-l", "-d", "100"},
			allowed: []string{"-l"},
			want:    []string{"-l"},
		},
		{
			name:    "empty",
			args:    nil,
			allowed: []string{"-a"},
			want:    []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterArgs(tt.args, tt.allowed))
		})
	}
}

func TestConfigFileFlag(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	t.Run("short -c with value", func(t *testing.T) {
		os.Args = []string{"testbin", "-c", "/path/short.yaml"}
		assert.Equal(t, "/path/short.yaml", ConfigFileFlag())
	})

	t.Run("long -config with value", func(t *testing.T) {
		os.Args = []string{"testbin", "-config", "/path/long.json"}
		assert.Equal(t, "/path/long.json", ConfigFileFlag())
	})

	t.Run("unknown flags are ignored", func(t *testing.T) {
		os.Args = []string{"testbin", "-a", "http://x", "-d", "200"}
		assert.Empty(t, ConfigFileFlag())
	})

	t.Run("last wins", func(t *testing.T) {
		os.Args = []string{"testbin", "-c", "/path/1.json", "-config", "/path/2.yml"}
		assert.Equal(t, "/path/2.yml", ConfigFileFlag())
	})
}
