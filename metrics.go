package beaconzone

import (
	"time"

	metrics "github.com/hashicorp/go-metrics"
)

var (
	keyRowsExamined   = []string{"beaconzone", "search", "rows_examined"}
	keyGapsFound      = []string{"beaconzone", "search", "gaps_found"}
	keyWorkerFailures = []string{"beaconzone", "search", "worker_failures"}
	keySearchDuration = []string{"beaconzone", "search", "duration"}
)

// recorder sends to m, or to the go-metrics global instance when m is nil.
type recorder struct {
	m *metrics.Metrics
}

func (r recorder) incr(key []string, val float32) {
	if r.m != nil {
		r.m.IncrCounter(key, val)
		return
	}
	metrics.IncrCounter(key, val)
}

func (r recorder) measureSince(key []string, start time.Time) {
	if r.m != nil {
		r.m.MeasureSince(key, start)
		return
	}
	metrics.MeasureSince(key, start)
}
