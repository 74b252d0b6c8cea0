// Package batch runs metric computations over many raster tiles.
//
// A Runner fans tile ids out over a bounded worker pool. A tile that fails
// (load error, invalid data, class-0 divisor, even a panic) does not stop
// the run: its error is logged and the task's fallback rows, with every
// metric set to 0.0, take its place. Only context cancellation aborts.
package batch

import (
	"context"
	"fmt"
	"runtime"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/landmetrics/landscape"
)

// NoClass marks rows that hold landscape-level metrics.
const NoClass = -1

// Row is the outcome of one (tile, class) pair.
type Row struct {
	TileID  string
	Class   int // NoClass for landscape-level rows
	Results []landscape.Result
	Err     error // non-nil when Results are the 0.0 fallback
}

// Task computes the rows of one tile.
type Task interface {
	// Run computes the rows of tileID.
	Run(ctx context.Context, tileID string) ([]Row, error)
	// Fallback returns the rows reported when Run fails: same shape, every
	// value 0.0.
	Fallback(tileID string) []Row
}

// Report is the result of one Runner.Run call.
type Report struct {
	RunID    uuid.UUID
	Started  time.Time
	Finished time.Time
	Rows     []Row
	Failed   int // tiles that fell back to 0.0
}

// DefaultWorkers is a quarter of the CPUs, at least one.
func DefaultWorkers() int {
	if n := runtime.NumCPU() / 4; n > 1 {
		return n
	}
	return 1
}

// Runner executes a Task over tile ids with bounded parallelism.
type Runner struct {
	workers int
	logger  landscape.Logger
}

// NewRunner returns a Runner. workers < 1 selects DefaultWorkers; a nil
// logger discards messages.
func NewRunner(workers int, logger landscape.Logger) *Runner {
	if workers < 1 {
		workers = DefaultWorkers()
	}
	if logger == nil {
		logger = discard{}
	}
	return &Runner{workers: workers, logger: logger}
}

// Workers returns the pool size.
func (r *Runner) Workers() int { return r.workers }

// Run executes task for every id and returns the rows sorted by tile id,
// then class. Numeric ids sort numerically ("2" before "10") and come
// before non-numeric ids, which sort as strings. Legacy LecoS batch output
// sorted every id as a string, so row order differs from it for numeric ids.
func (r *Runner) Run(ctx context.Context, ids []string, task Task) (*Report, error) {
	rep := &Report{RunID: uuid.New(), Started: time.Now()}
	r.logger.Printf("batch %s: %d tiles on %d workers", rep.RunID, len(ids), r.workers)

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)
	for _, id := range ids {
		if gctx.Err() != nil {
			break
		}
		id := id // per-iteration copy (go directive lowered to 1.21 for the local toolchain)
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			rows, err := r.runTile(gctx, id, task)
			if err != nil {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				r.logger.Printf("batch %s: tile %s failed, writing 0.0: %v", rep.RunID, id, err)
				rows = task.Fallback(id)
				for i := range rows {
					rows[i].Err = err
				}
			}
			mu.Lock()
			rep.Rows = append(rep.Rows, rows...)
			if err != nil {
				rep.Failed++
			}
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	sort.SliceStable(rep.Rows, func(i, j int) bool {
		a, b := rep.Rows[i], rep.Rows[j]
		if a.TileID != b.TileID {
			return lessID(a.TileID, b.TileID)
		}
		return a.Class < b.Class
	})
	rep.Finished = time.Now()
	r.logger.Printf("batch %s: done in %s, %d rows, %d failed tiles",
		rep.RunID, rep.Finished.Sub(rep.Started).Round(time.Millisecond), len(rep.Rows), rep.Failed)
	return rep, nil
}

// runTile isolates panics so one tile cannot take the pool down.
func (r *Runner) runTile(ctx context.Context, id string, task Task) (rows []Row, err error) {
	defer func() {
		if p := recover(); p != nil {
			rows, err = nil, fmt.Errorf("panic: %v", p)
		}
	}()
	return task.Run(ctx, id)
}

func lessID(a, b string) bool {
	x, errA := strconv.Atoi(a)
	y, errB := strconv.Atoi(b)
	switch {
	case errA == nil && errB == nil:
		return x < y
	case errA == nil:
		return true
	case errB == nil:
		return false
	}
	return a < b
}

type discard struct{}

func (discard) Printf(string, ...interface{}) {}
