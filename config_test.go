package beaconzone

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigFromEnv(t *testing.T) {
	tests := map[string]struct {
		environ  []string
		expected Config
	}{
		"defaults": {
			environ:  []string{"HOME=/root", "PATH=/usr/bin"},
			expected: DefaultConfig(),
		},
		"workers": {
			environ:  []string{"BEACONZONE_WORKERS=8"},
			expected: Config{Workers: 8},
		},
		"strict with spaces": {
			environ:  []string{"BEACONZONE_STRICT= true "},
			expected: Config{Strict: true},
		},
		"unknown key ignored": {
			environ:  []string{"BEACONZONE_COLOR=blue", "BEACONZONE_WORKERS=2"},
			expected: Config{Workers: 2},
		},
		"last value wins": {
			environ:  []string{"BEACONZONE_WORKERS=2", "BEACONZONE_WORKERS=3"},
			expected: Config{Workers: 3},
		},
	}
	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			cfg, err := ConfigFromEnv(test.environ)
			require.NoError(t, err)
			assert.Equal(t, test.expected, cfg)
		})
	}
}

func TestConfigFromEnv_Invalid(t *testing.T) {
	tests := map[string][]string{
		"workers not a number": {"BEACONZONE_WORKERS=many"},
		"strict not a bool":    {"BEACONZONE_STRICT=sometimes"},
	}
	for name, environ := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ConfigFromEnv(environ)
			assert.Error(t, err)
		})
	}
}

func TestNewSearcher_Options(t *testing.T) {
	logger := quietLogger()
	s := NewSearcher(Config{Workers: 3, Strict: true}, WithLogger(logger), WithLogger(nil))

	assert.Same(t, logger, s.logger)
	assert.True(t, s.strict)
	assert.Equal(t, 3, s.workerCount(10))
	assert.Equal(t, 2, s.workerCount(2))
}
