package beaconzone

import (
	"errors"
	"fmt"
)

var (
	// ErrParse is matched by every *ParseError.
	ErrParse = errors.New("malformed sensor record")
	// ErrEmptyDomain is returned when a query's lower bound is greater than its upper bound on either axis.
	ErrEmptyDomain = errors.New("empty domain")
	// ErrDomainTooLarge is returned when the number of rows in a domain does not fit in an int64.
	ErrDomainTooLarge = errors.New("domain too large")
	// ErrWorkerFailure is matched by every *WorkerFailureError.
	ErrWorkerFailure = errors.New("search worker failed")
	// ErrMultipleGaps is matched by every *MultipleGapsError.
	ErrMultipleGaps = errors.New("more than one gap in domain")
)

// A ParseError describes a sensor record that cannot be turned into a Sensor. No sensor set is built when any record
// is malformed.
type ParseError struct {
	Index  int
	Record SensorRecord
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("record %d (%+v): %s", e.Index, e.Record, e.Reason)
}

func (e *ParseError) Is(target error) bool { return target == ErrParse }

// A WorkerFailureError is an unexpected fault inside one search worker, caught before it could take down the process.
type WorkerFailureError struct {
	Row   int64
	Cause any
}

func (e *WorkerFailureError) Error() string {
	return fmt.Sprintf("search worker failed on row %d: %v", e.Row, e.Cause)
}

func (e *WorkerFailureError) Is(target error) bool { return target == ErrWorkerFailure }

// Unwrap exposes the cause when the worker failed with an error value.
func (e *WorkerFailureError) Unwrap() error {
	if err, ok := e.Cause.(error); ok {
		return err
	}
	return nil
}

// A MultipleGapsError is returned by a strict search that found more than one uncovered cell.
type MultipleGapsError struct {
	First  Point
	Second Point
}

func (e *MultipleGapsError) Error() string {
	return fmt.Sprintf("more than one gap in domain: (%d, %d) and (%d, %d)",
		e.First.X, e.First.Y, e.Second.X, e.Second.Y)
}

func (e *MultipleGapsError) Is(target error) bool { return target == ErrMultipleGaps }

func emptyDomain(axis string, lo, hi int64) error {
	return fmt.Errorf("%w: %smin %d > %smax %d", ErrEmptyDomain, axis, lo, axis, hi)
}
