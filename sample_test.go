package beaconzone

import (
	"io"
	"log/slog"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"
)

var sampleRecords = []SensorRecord{
	{2, 18, -2, 15},
	{9, 16, 10, 16},
	{13, 2, 15, 3},
	{12, 14, 10, 16},
	{10, 20, 10, 16},
	{14, 17, 10, 16},
	{8, 7, 2, 10},
	{2, 0, 2, 10},
	{0, 11, 2, 10},
	{20, 14, 25, 17},
	{17, 20, 21, 22},
	{16, 7, 15, 3},
	{14, 3, 15, 3},
	{20, 1, 15, 3},
}

func sampleSensors(t testing.TB) SensorSet {
	t.Helper()
	sensors, err := BuildSensorSet(sampleRecords)
	require.NoError(t, err)
	return sensors
}

func randomSensors(t testing.TB, rng *rand.Rand, n int, span int64) SensorSet {
	t.Helper()
	records := make([]SensorRecord, n)
	for i := range records {
		records[i] = SensorRecord{
			SensorX: rng.Int64N(2*span) - span,
			SensorY: rng.Int64N(2*span) - span,
			BeaconX: rng.Int64N(2*span) - span,
			BeaconY: rng.Int64N(2*span) - span,
		}
	}
	sensors, err := BuildSensorSet(records)
	require.NoError(t, err)
	return sensors
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
