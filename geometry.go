package beaconzone

// ManhattanDistance returns |a.X-b.X| + |a.Y-b.Y|.
func ManhattanDistance(a, b Point) int64 {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

// ProjectToRow returns the cells of row that lie inside the sensor's exclusion disk.
// It returns false when the disk does not reach the row.
func ProjectToRow(s Sensor, row int64) (Interval, bool) {
	halfWidth := s.Radius - abs(row-s.Position.Y)
	if halfWidth < 0 {
		return Interval{}, false
	}
	return Interval{Lo: s.Position.X - halfWidth, Hi: s.Position.X + halfWidth}, true
}

func abs(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}
