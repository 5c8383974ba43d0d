package beaconzone

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// A Searcher looks for the one cell of a domain that no sensor excludes.
//
// Rows are handed out to a fixed pool of workers through a shared cursor, so a slow row never holds up the others.
// The first worker to find a gap publishes it with a single compare-and-set and raises a cancellation flag. Workers
// only look at the flag between rows, which means each of them may finish the row it is on after the winning write.
// Those extra rows cannot change the result.
//
// If the domain holds several gaps, which one is returned depends on which worker gets there first. Set Config.Strict
// to scan every row and fail with ErrMultipleGaps instead.
type Searcher struct {
	workers int
	strict  bool

	logger  *slog.Logger
	metrics recorder

	newSlot func() resultSlot
	scanRow func(row int64, sensors SensorSet, xmin, xmax int64) (int64, bool)
}

// NewSearcher returns a Searcher configured by cfg.
func NewSearcher(cfg Config, opts ...Option) *Searcher {
	s := &Searcher{
		workers: cfg.Workers,
		strict:  cfg.Strict,
		logger:  slog.Default(),
		newSlot: func() resultSlot { return &atomicSlot{} },
		scanRow: scanRow,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// scanRow returns the leftmost gap of row inside [xmin, xmax].
// TODO: Only rows next to a disk boundary can hold a lone gap; scan those instead of every row.
func scanRow(row int64, sensors SensorSet, xmin, xmax int64) (int64, bool) {
	cov := computeRow(row, sensors, xmin, xmax)
	return FirstGap(cov.Intervals, xmin, xmax)
}

// Search scans every row of d for a cell that none of the sensors exclude. It blocks until all workers have stopped.
//
// Not finding a gap is not an error: the result has Found set to false. Cancelling ctx stops the workers at their next
// row boundary; Search then returns the gap if one was already found, or the context's error otherwise.
func (s *Searcher) Search(ctx context.Context, d Domain, sensors SensorSet) (result SearchResult, err error) {
	if err := d.Validate(); err != nil {
		return SearchResult{}, err
	}
	height := d.Height()
	if height <= 0 {
		return SearchResult{}, fmt.Errorf("%w: rows %d..%d", ErrDomainTooLarge, d.YMin, d.YMax)
	}

	logger := s.logger.With("search_id", uuid.NewString())
	workers := s.workerCount(height)
	logger.Info("search started", "workers", workers, "sensors", sensors.Len(), "strict", s.strict, domainAttrs(d))

	start := time.Now()
	defer func() {
		s.metrics.measureSince(keySearchDuration, start)
		logSearchFinished(logger, result, err, time.Since(start))
	}()

	var (
		// cursor is the offset from d.YMin of the next unclaimed row.
		cursor    atomic.Int64
		examined  atomic.Int64
		cancelled atomic.Bool
		slot      = s.newSlot()
		// extra holds a second gap. Only strict searches look for one.
		extra atomic.Pointer[Point]
	)

	publish := func(p Point) {
		if slot.Claim(p) {
			logger.Info("gap found", "x", p.X, "y", p.Y)
			s.metrics.incr(keyGapsFound, 1)
			if !s.strict {
				cancelled.Store(true)
			}
			return
		}
		if s.strict && extra.CompareAndSwap(nil, &p) {
			cancelled.Store(true)
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	for range workers {
		g.Go(func() (err error) {
			row := d.YMin
			defer func() {
				if r := recover(); r != nil {
					err = &WorkerFailureError{Row: row, Cause: r}
				}
			}()

			for !cancelled.Load() && gctx.Err() == nil {
				offset := cursor.Add(1) - 1
				if offset >= height || offset < 0 {
					return nil
				}
				row = d.YMin + offset

				x, ok := s.scanRow(row, sensors, d.XMin, d.XMax)
				examined.Add(1)
				if !ok {
					continue
				}
				publish(Point{X: x, Y: row})

				// A strict search also has to rule out a second gap to the right on the same row.
				if s.strict && x < d.XMax {
					if x2, ok := s.scanRow(row, sensors, x+1, d.XMax); ok {
						publish(Point{X: x2, Y: row})
					}
				}
			}
			return nil
		})
	}
	err = g.Wait()

	result = SearchResult{RowsExamined: examined.Load()}
	s.metrics.incr(keyRowsExamined, float32(result.RowsExamined))

	if err != nil {
		var wf *WorkerFailureError
		if errors.As(err, &wf) {
			logWorkerFailure(logger, wf)
			s.metrics.incr(keyWorkerFailures, 1)
		}
		return result, err
	}

	p, found := slot.Load()
	if s.strict {
		if second := extra.Load(); second != nil {
			return result, &MultipleGapsError{First: p, Second: *second}
		}
		// A cancelled strict search has not proven the gap is unique.
		if ctxErr := ctx.Err(); ctxErr != nil {
			return result, fmt.Errorf("search cancelled: %w", ctxErr)
		}
	}
	if !found {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return result, fmt.Errorf("search cancelled: %w", ctxErr)
		}
	}

	result.Position, result.Found = p, found
	return result, nil
}

func (s *Searcher) workerCount(height int64) int {
	n := s.workers
	if n <= 0 {
		n = runtime.NumCPU()
	}
	if int64(n) > height {
		n = int(height)
	}
	return n
}

// resultSlot holds the winning gap of a search. Claim succeeds for exactly one caller.
type resultSlot interface {
	Claim(p Point) bool
	Load() (Point, bool)
}

type atomicSlot struct {
	p atomic.Pointer[Point]
}

func (s *atomicSlot) Claim(p Point) bool {
	return s.p.CompareAndSwap(nil, &p)
}

func (s *atomicSlot) Load() (Point, bool) {
	p := s.p.Load()
	if p == nil {
		return Point{}, false
	}
	return *p, true
}
