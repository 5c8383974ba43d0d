package beaconzone

import "math"

// A Point is a cell on the integer grid.
//
// X grows to the right and Y grows downwards, the same way the sensors report positions.
type Point struct {
	X int64
	Y int64
}

// A Sensor reports the position of the beacon closest to it.
//
// Distances are measured in the Manhattan metric. Because the reported beacon is the closest one, no other beacon can
// sit anywhere inside the sensor's exclusion disk: the set of cells whose distance from the sensor is no greater than
// the distance to its beacon. There is never a tie for the closest beacon.
type Sensor struct {
	Position Point
	// Beacon is the closest beacon the sensor reported. It lies on the boundary of the exclusion disk.
	Beacon Point
	// Radius is the Manhattan distance from Position to Beacon. It is computed once when the sensor is built.
	Radius int64
}

// A SensorRecord is one raw sensor report as handed over by a caller: the sensor's position and the position of the
// closest beacon it detected.
type SensorRecord struct {
	SensorX int64
	SensorY int64
	BeaconX int64
	BeaconY int64
}

// SensorSet is an immutable, ordered collection of sensors.
//
// It is the only state shared by concurrent search workers, so it is never written to once built.
type SensorSet struct {
	sensors []Sensor
}

// Len returns the number of sensors in the set.
func (s SensorSet) Len() int { return len(s.sensors) }

// At returns the i-th sensor in the order the records were supplied.
func (s SensorSet) At(i int) Sensor { return s.sensors[i] }

// Sensors returns a copy of the sensors in the set.
func (s SensorSet) Sensors() []Sensor {
	out := make([]Sensor, len(s.sensors))
	copy(out, s.sensors)
	return out
}

// An Interval is a closed range [Lo, Hi] of x coordinates on a single row. Lo is never greater than Hi.
type Interval struct {
	Lo int64
	Hi int64
}

// Len returns the number of cells in the interval.
func (i Interval) Len() int64 { return i.Hi - i.Lo + 1 }

// A CoverageRow holds the cells of one row that lie inside at least one exclusion disk.
//
// Intervals are sorted by Lo, pairwise disjoint and never adjacent: two ranges that touch are always merged into one.
// A CoverageRow is built fresh for every query and is read-only afterwards.
type CoverageRow struct {
	Row       int64
	Intervals []Interval
}

// SearchResult is what a single whole-domain search returns.
type SearchResult struct {
	// Position is the gap that was found. It is only meaningful when Found is true.
	Position Point
	Found    bool
	// RowsExamined counts the rows that were fully evaluated, including any evaluated after the winning row.
	RowsExamined int64
}

// A Domain is the rectangle [XMin, XMax] x [YMin, YMax] that a query is bounded to.
type Domain struct {
	XMin, XMax int64
	YMin, YMax int64
}

// Validate reports ErrEmptyDomain when either axis is empty.
func (d Domain) Validate() error {
	if d.XMin > d.XMax {
		return emptyDomain("x", d.XMin, d.XMax)
	}
	if d.YMin > d.YMax {
		return emptyDomain("y", d.YMin, d.YMax)
	}
	return nil
}

// Height returns the number of rows in the domain.
func (d Domain) Height() int64 { return d.YMax - d.YMin + 1 }

const (
	// MinX and MaxX bound a row query that should not be clipped.
	MinX = math.MinInt64
	MaxX = math.MaxInt64

	// MaxCoordinate bounds every coordinate accepted in a SensorRecord. Keeping coordinates well inside int64 lets
	// radii and projected intervals be computed without overflow.
	MaxCoordinate = 1 << 59

	// DistressLimit is the largest coordinate the distress beacon can have on either axis.
	DistressLimit = 4_000_000
)

// DistressDomain is the square the distress beacon is known to be in.
var DistressDomain = Domain{XMin: 0, XMax: DistressLimit, YMin: 0, YMax: DistressLimit}

// TuningFrequency returns the tuning frequency of a distress beacon found at p.
func TuningFrequency(p Point) int64 {
	return p.X*DistressLimit + p.Y
}
