package beaconzone

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	metrics "github.com/hashicorp/go-metrics"
)

// EnvPrefix prefixes every environment variable read by ConfigFromEnv.
const EnvPrefix = "BEACONZONE_"

// Config tunes a Searcher.
type Config struct {
	// Workers is the number of concurrent search workers. Zero or less means one per CPU.
	Workers int
	// Strict scans the whole domain instead of stopping at the first gap, and fails with ErrMultipleGaps when the
	// domain holds more than one.
	Strict bool
}

// DefaultConfig returns the configuration used by FindGap.
func DefaultConfig() Config {
	return Config{
		Workers: 0,
		Strict:  false,
	}
}

// ConfigFromEnv overlays BEACONZONE_WORKERS and BEACONZONE_STRICT from environ onto DefaultConfig.
// Other variables are ignored. environ has the form returned by os.Environ.
func ConfigFromEnv(environ []string) (Config, error) {
	cfg := DefaultConfig()
	for _, kv := range environ {
		key, val, ok := strings.Cut(kv, "=")
		if !ok || !strings.HasPrefix(key, EnvPrefix) {
			continue
		}
		val = strings.TrimSpace(val)
		switch strings.TrimPrefix(key, EnvPrefix) {
		case "WORKERS":
			n, err := strconv.Atoi(val)
			if err != nil {
				return cfg, fmt.Errorf("invalid %s: %w", key, err)
			}
			cfg.Workers = n
		case "STRICT":
			b, err := strconv.ParseBool(val)
			if err != nil {
				return cfg, fmt.Errorf("invalid %s: %w", key, err)
			}
			cfg.Strict = b
		}
	}
	return cfg, nil
}

// An Option overrides a collaborator of a Searcher.
type Option func(*Searcher)

// WithLogger makes the Searcher log to l instead of slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(s *Searcher) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithMetrics makes the Searcher emit to m instead of the global go-metrics instance.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Searcher) {
		s.metrics = recorder{m: m}
	}
}
