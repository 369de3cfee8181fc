package timex

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v2"
)

func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    time.Duration
		wantErr bool
	}{
		{name: "string", in: `"250ms"`, want: 250 * time.Millisecond},
		{name: "nanoseconds", in: `1000000000`, want: time.Second},
		{name: "garbage string", in: `"soon"`, wantErr: true},
		{name: "bool", in: `true`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := json.Unmarshal([]byte(tt.in), &d)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidDuration)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, d.Duration)
		})
	}
}

func TestDuration_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(Duration{Duration: 3 * time.Second})
	require.NoError(t, err)
	assert.JSONEq(t, `"3s"`, string(b))
}

func TestDuration_UnmarshalYAML(t *testing.T) {
	var cfg struct {
		Debounce Duration `yaml:"debounce"`
		Timeout  Duration `yaml:"timeout"`
	}
	err := yaml.Unmarshal([]byte("debounce: 200ms\ntimeout: 5000000000\n"), &cfg)
	require.NoError(t, err)
	assert.Equal(t, 200*time.Millisecond, cfg.Debounce.Duration)
	assert.Equal(t, 5*time.Second, cfg.Timeout.Duration)

	var bad struct {
		Debounce Duration `yaml:"debounce"`
	}
	require.ErrorIs(t, yaml.Unmarshal([]byte("debounce: later\n"), &bad), ErrInvalidDuration)
}
