package landscape

import (
	"fmt"
	"math"

	"github.com/katalvlaran/landmetrics/gridgraph"
)

// Analyzer binds a Grid, a cell size and a class list, and evaluates metrics
// by name. It is immutable after NewAnalyzer; every call prepares its own
// class state, so one Analyzer may be shared by concurrent goroutines.
type Analyzer struct {
	grid           *Grid
	cellSize       float64
	classes        []int
	landscapeCells int
	opts           Options
}

// NewAnalyzer validates its inputs and returns an Analyzer.
//
// classes == nil classifies g. A caller-supplied list is sorted and
// deduplicated, and the no-data code is dropped from it; an empty result is
// ErrEmptyClassSet. cellSize must be finite and positive (ErrInvalidCellSize).
func NewAnalyzer(g *Grid, cellSize float64, classes []int, opts ...Option) (*Analyzer, error) {
	if g == nil || g.Len() == 0 {
		return nil, ErrEmptyGrid
	}
	if !(cellSize > 0) || math.IsInf(cellSize, 0) {
		return nil, fmt.Errorf("%v: %w", cellSize, ErrInvalidCellSize)
	}
	o := gatherOptions(opts...)
	if _, err := gridgraph.Offsets(o.conn); err != nil {
		return nil, err
	}

	var err error
	if classes == nil {
		if classes, err = Classify(g); err != nil {
			return nil, err
		}
	} else if classes, err = normalizeClasses(classes, g.NoData); err != nil {
		return nil, err
	}

	in := make(map[int]struct{}, len(classes))
	for _, c := range classes {
		in[c] = struct{}{}
	}
	cells := 0
	for _, v := range g.cells {
		if _, ok := in[v]; ok {
			cells++
		}
	}

	return &Analyzer{
		grid:           g,
		cellSize:       cellSize,
		classes:        classes,
		landscapeCells: cells,
		opts:           o,
	}, nil
}

func normalizeClasses(classes []int, nodata int) ([]int, error) {
	seen := make(map[int]struct{}, len(classes))
	for _, c := range classes {
		if c != nodata {
			seen[c] = struct{}{}
		}
	}
	return sortedClasses(seen)
}

// Grid returns the analysed grid.
func (a *Analyzer) Grid() *Grid { return a.grid }

// CellSize returns the cell edge length in map units.
func (a *Analyzer) CellSize() float64 { return a.cellSize }

// Classes returns a copy of the class list.
func (a *Analyzer) Classes() []int {
	return append([]int(nil), a.classes...)
}

// Prepare builds the mask, label grid and patch statistics of class.
// Classes absent from the grid are valid and yield zero patches.
// Complexity: O(W×H).
func (a *Analyzer) Prepare(class int) (*Class, error) {
	return newClass(a.grid, class, a.cellSize, a.landscapeCells, a.opts)
}

// ComputeMetric evaluates the catalog metric called name for class.
//
// An unknown name yields Result{Name: "None", Float: 0, Status:
// StatusUnknownMetric} and a nil error, unless the Analyzer was built with
// WithStrictMetricNames, in which case ErrUnknownMetric is returned.
func (a *Analyzer) ComputeMetric(name string, class int) (Result, error) {
	m, ok := ParseMetric(name)
	if !ok {
		return a.unknown(name)
	}
	c, err := a.Prepare(class)
	if err != nil {
		return Result{}, err
	}
	return c.Compute(m)
}

// ComputeMetrics evaluates several metrics on one prepared class, in the
// order given. No metrics means the whole catalog. It stops at the first error.
func (a *Analyzer) ComputeMetrics(class int, metrics ...Metric) ([]Result, error) {
	if len(metrics) == 0 {
		metrics = Metrics()
	}
	c, err := a.Prepare(class)
	if err != nil {
		return nil, err
	}
	out := make([]Result, 0, len(metrics))
	for _, m := range metrics {
		r, err := c.Compute(m)
		if err != nil {
			return out, err
		}
		out = append(out, r)
	}
	return out, nil
}

// ListMetricNames returns the per-class catalog names.
func (a *Analyzer) ListMetricNames() []string {
	return ListMetricNames()
}

// Landscape evaluates a class-independent statistic.
func (a *Analyzer) Landscape(m LandscapeMetric) Result {
	return Result{Name: m.String(), Value: a.summarize(m)}
}

// ComputeLandscapeMetric is Landscape by identifier (e.g. "LC_Mean",
// "DIV_SH"), with the same unknown-name handling as ComputeMetric.
func (a *Analyzer) ComputeLandscapeMetric(name string) (Result, error) {
	m, ok := ParseLandscapeMetric(name)
	if !ok {
		return a.unknown(name)
	}
	return a.Landscape(m), nil
}

func (a *Analyzer) unknown(name string) (Result, error) {
	if a.opts.strictMetricNames {
		return Result{}, fmt.Errorf("%q: %w", name, ErrUnknownMetric)
	}
	return Result{Name: UnknownMetricName, Value: Value{Status: StatusUnknownMetric}}, nil
}
