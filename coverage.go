package beaconzone

import (
	"cmp"
	"slices"
)

// ComputeRow merges the exclusion disks of every sensor that reaches row into a sorted set of disjoint, non-adjacent
// intervals. A row that no sensor reaches yields an empty CoverageRow.
//
// ComputeRow only reads its arguments and is safe to call from any number of goroutines.
func ComputeRow(row int64, sensors SensorSet) CoverageRow {
	return computeRow(row, sensors, MinX, MaxX)
}

// computeRow is ComputeRow restricted to sensors whose disk can reach [xmin, xmax]. Intervals are not clipped; the
// callers clip as they read.
func computeRow(row int64, sensors SensorSet, xmin, xmax int64) CoverageRow {
	projected := make([]Interval, 0, len(sensors.sensors))
	for _, s := range sensors.sensors {
		// Disks that end left of the window or start right of it cannot contribute.
		if s.Position.X+s.Radius < xmin || s.Position.X-s.Radius > xmax {
			continue
		}
		if iv, ok := ProjectToRow(s, row); ok {
			projected = append(projected, iv)
		}
	}
	return CoverageRow{Row: row, Intervals: mergeIntervals(projected)}
}

// mergeIntervals sorts intervals in place and collapses every overlapping or touching pair.
func mergeIntervals(intervals []Interval) []Interval {
	if len(intervals) == 0 {
		return []Interval{}
	}
	slices.SortFunc(intervals, func(a, b Interval) int {
		if c := cmp.Compare(a.Lo, b.Lo); c != 0 {
			return c
		}
		return cmp.Compare(a.Hi, b.Hi)
	})

	merged := make([]Interval, 0, len(intervals))
	current := intervals[0]
	for _, next := range intervals[1:] {
		// current.Hi+1 cannot overflow: every projected bound is within MaxCoordinate plus a radius.
		if next.Lo <= current.Hi+1 {
			current.Hi = max(current.Hi, next.Hi)
			continue
		}
		merged = append(merged, current)
		current = next
	}
	return append(merged, current)
}

// CoveredLength returns how many cells of [xmin, xmax] lie inside the intervals. The intervals must be disjoint, as
// returned by ComputeRow.
func CoveredLength(intervals []Interval, xmin, xmax int64) int64 {
	var total int64
	for _, iv := range intervals {
		lo, hi := max(iv.Lo, xmin), min(iv.Hi, xmax)
		if lo > hi {
			continue
		}
		total += hi - lo + 1
	}
	return total
}

// FirstGap returns the leftmost x in [xmin, xmax] that none of the intervals cover. The intervals must be sorted and
// disjoint, as returned by ComputeRow. It returns false when the whole range is covered.
//
// Only the leftmost gap on a row is ever reported.
func FirstGap(intervals []Interval, xmin, xmax int64) (int64, bool) {
	if xmin > xmax {
		return 0, false
	}
	cursor := xmin
	for _, iv := range intervals {
		if iv.Lo > cursor {
			return cursor, true
		}
		if iv.Hi >= xmax {
			return 0, false
		}
		if iv.Hi >= cursor {
			cursor = iv.Hi + 1
		}
	}
	return cursor, true
}
