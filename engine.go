package beaconzone

import (
	"context"
	"fmt"
)

// BuildSensorSet turns raw sensor records into a SensorSet. Each sensor's radius is the Manhattan distance to the
// beacon it reported.
//
// Every coordinate must lie within ±MaxCoordinate. A single malformed record fails the whole build with a
// *ParseError; no partial set is returned.
func BuildSensorSet(records []SensorRecord) (SensorSet, error) {
	sensors := make([]Sensor, 0, len(records))
	for i, r := range records {
		if err := validateRecord(i, r); err != nil {
			return SensorSet{}, err
		}
		s := Sensor{
			Position: Point{X: r.SensorX, Y: r.SensorY},
			Beacon:   Point{X: r.BeaconX, Y: r.BeaconY},
		}
		s.Radius = ManhattanDistance(s.Position, s.Beacon)
		sensors = append(sensors, s)
	}
	return SensorSet{sensors: sensors}, nil
}

func validateRecord(i int, r SensorRecord) error {
	fields := []struct {
		name string
		v    int64
	}{
		{"sensor x", r.SensorX},
		{"sensor y", r.SensorY},
		{"beacon x", r.BeaconX},
		{"beacon y", r.BeaconY},
	}
	for _, f := range fields {
		if f.v > MaxCoordinate || f.v < -MaxCoordinate {
			return &ParseError{
				Index:  i,
				Record: r,
				Reason: fmt.Sprintf("%s %d outside [-%d, %d]", f.name, f.v, int64(MaxCoordinate), int64(MaxCoordinate)),
			}
		}
	}
	return nil
}

// CoverageCount returns how many cells of row, between xmin and xmax inclusive, cannot contain a beacon: the cells
// inside at least one exclusion disk, less the cells already taken by a known sensor or beacon.
//
// Pass MinX and MaxX to count the whole row.
func CoverageCount(sensors SensorSet, row, xmin, xmax int64) (int64, error) {
	if xmin > xmax {
		return 0, emptyDomain("x", xmin, xmax)
	}
	cov := computeRow(row, sensors, xmin, xmax)
	count := CoveredLength(cov.Intervals, xmin, xmax)

	occupied := make(map[int64]struct{})
	for _, s := range sensors.sensors {
		for _, p := range []Point{s.Position, s.Beacon} {
			if p.Y != row || p.X < xmin || p.X > xmax {
				continue
			}
			if _, seen := occupied[p.X]; seen || !covers(cov.Intervals, p.X) {
				continue
			}
			occupied[p.X] = struct{}{}
			count--
		}
	}
	return count, nil
}

// covers reports whether x lies inside one of the sorted, disjoint intervals.
func covers(intervals []Interval, x int64) bool {
	lo, hi := 0, len(intervals)
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		switch iv := intervals[mid]; {
		case x < iv.Lo:
			hi = mid
		case x > iv.Hi:
			lo = mid + 1
		default:
			return true
		}
	}
	return false
}

// FindGap searches [xmin, xmax] x [ymin, ymax] with the given number of workers for the cell no sensor excludes.
// It returns false when every cell is excluded.
//
// The domain is assumed to hold at most one gap. If it holds more, any one of them may be returned.
func FindGap(ctx context.Context, sensors SensorSet, ymin, ymax, xmin, xmax int64, workers int) (Point, bool, error) {
	cfg := DefaultConfig()
	cfg.Workers = workers
	d := Domain{XMin: xmin, XMax: xmax, YMin: ymin, YMax: ymax}
	res, err := NewSearcher(cfg).Search(ctx, d, sensors)
	if err != nil {
		return Point{}, false, fmt.Errorf("find gap: %w", err)
	}
	return res.Position, res.Found, nil
}
