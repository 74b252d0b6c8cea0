package batch

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/katalvlaran/landmetrics/landscape"
	"github.com/katalvlaran/landmetrics/raster"
)

// Source resolves a tile id to its raster.
type Source func(tileID string) (*raster.Raster, error)

// TemplateSource loads the file named by pattern with every "{id}" replaced
// by the tile id.
func TemplateSource(pattern string, opts ...raster.Option) Source {
	return func(tileID string) (*raster.Raster, error) {
		return raster.Load(strings.ReplaceAll(pattern, "{id}", tileID), opts...)
	}
}

// analyzer loads a tile and builds its Analyzer.
func analyzer(src Source, tileID string, logger landscape.Logger, opts []landscape.Option) (*landscape.Analyzer, error) {
	r, err := src(tileID)
	if err != nil {
		return nil, err
	}
	g, err := r.Grid()
	if err != nil {
		return nil, err
	}
	opts = append(append([]landscape.Option(nil), opts...), landscape.WithLogger(logger))
	return landscape.NewAnalyzer(g, r.CellSize(logger), nil, opts...)
}

// ClassTask computes per-class metrics for a fixed class list.
type ClassTask struct {
	Source  Source
	Classes []int
	Metrics []landscape.Metric // empty means the whole catalog
	Options []landscape.Option
	Logger  landscape.Logger
}

func (t ClassTask) metrics() []landscape.Metric {
	if len(t.Metrics) == 0 {
		return landscape.Metrics()
	}
	return t.Metrics
}

// Run implements Task. A class that does not occur in the tile gets a 0.0
// row, the same one Fallback reports, with no error attached.
func (t ClassTask) Run(ctx context.Context, tileID string) ([]Row, error) {
	a, err := analyzer(t.Source, tileID, t.logger(), t.Options)
	if err != nil {
		return nil, err
	}
	rows := make([]Row, 0, len(t.Classes))
	for _, class := range t.Classes {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if !slices.Contains(a.Classes(), class) {
			rows = append(rows, t.zeroRow(tileID, class))
			continue
		}
		res, err := a.ComputeMetrics(class, t.metrics()...)
		if err != nil {
			return nil, fmt.Errorf("class %d: %w", class, err)
		}
		rows = append(rows, Row{TileID: tileID, Class: class, Results: res})
	}
	return rows, nil
}

// Fallback implements Task.
func (t ClassTask) Fallback(tileID string) []Row {
	rows := make([]Row, 0, len(t.Classes))
	for _, class := range t.Classes {
		rows = append(rows, t.zeroRow(tileID, class))
	}
	return rows
}

func (t ClassTask) zeroRow(tileID string, class int) Row {
	ms := t.metrics()
	res := make([]landscape.Result, len(ms))
	for i, m := range ms {
		res[i] = landscape.Result{Name: m.String(), Value: landscape.Zero}
	}
	return Row{TileID: tileID, Class: class, Results: res}
}

func (t ClassTask) logger() landscape.Logger {
	if t.Logger == nil {
		return discard{}
	}
	return t.Logger
}

// LandscapeTask computes class-independent statistics (LC_*, DIV_*).
type LandscapeTask struct {
	Source  Source
	Metrics []landscape.LandscapeMetric // empty means all
	Options []landscape.Option
	Logger  landscape.Logger
}

func (t LandscapeTask) metrics() []landscape.LandscapeMetric {
	if len(t.Metrics) == 0 {
		return landscape.LandscapeMetrics()
	}
	return t.Metrics
}

// Run implements Task.
func (t LandscapeTask) Run(_ context.Context, tileID string) ([]Row, error) {
	logger := t.Logger
	if logger == nil {
		logger = discard{}
	}
	a, err := analyzer(t.Source, tileID, logger, t.Options)
	if err != nil {
		return nil, err
	}
	ms := t.metrics()
	res := make([]landscape.Result, len(ms))
	for i, m := range ms {
		res[i] = a.Landscape(m)
	}
	return []Row{{TileID: tileID, Class: NoClass, Results: res}}, nil
}

// Fallback implements Task.
func (t LandscapeTask) Fallback(tileID string) []Row {
	ms := t.metrics()
	res := make([]landscape.Result, len(ms))
	for i, m := range ms {
		res[i] = landscape.Result{Name: m.String(), Value: landscape.Zero}
	}
	return []Row{{TileID: tileID, Class: NoClass, Results: res}}
}
