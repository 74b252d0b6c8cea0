package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"path/filepath"
	"strings"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/landmetrics/batch"
	"github.com/katalvlaran/landmetrics/config"
	"github.com/katalvlaran/landmetrics/export"
	"github.com/katalvlaran/landmetrics/gridgraph"
	"github.com/katalvlaran/landmetrics/landscape"
	"github.com/katalvlaran/landmetrics/raster"
	"github.com/katalvlaran/landmetrics/vector"
)

// loadGrid reads a raster and converts it to a Grid.
func loadGrid(path string, af analysisFlags) (*raster.Raster, *landscape.Grid, error) {
	var opts []raster.Option
	if af.nodataSet {
		opts = append(opts, raster.WithNoData(af.nodata))
	}
	r, err := raster.Load(path, opts...)
	if err != nil {
		return nil, nil, err
	}
	g, err := r.Grid()
	if err != nil {
		return nil, nil, err
	}
	return r, g, nil
}

// newAnalyzer loads path and builds an Analyzer from the flags.
func newAnalyzer(logger *log.Logger, path string, af analysisFlags, extra ...landscape.Option) (*landscape.Analyzer, error) {
	r, g, err := loadGrid(path, af)
	if err != nil {
		return nil, err
	}
	conn, err := gridgraph.ParseConnectivity(af.conn)
	if err != nil {
		return nil, err
	}
	opts := append([]landscape.Option{
		landscape.WithConnectivity(conn),
		landscape.WithClassNormalization(!af.noNormalize),
		landscape.WithLogger(logger),
	}, extra...)
	return landscape.NewAnalyzer(g, r.CellSize(logger), nil, opts...)
}

func tileName(path string) string {
	return strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
}

func separator(sep string) (rune, error) {
	r := []rune(sep)
	if len(r) != 1 {
		return 0, fmt.Errorf("separator %q: want a single character", sep)
	}
	return r[0], nil
}

func runMetrics(w io.Writer, logger *log.Logger, path string, af analysisFlags, classes []int, names []string, strict bool, sep string) error {
	comma, err := separator(sep)
	if err != nil {
		return err
	}
	var extra []landscape.Option
	if strict {
		extra = append(extra, landscape.WithStrictMetricNames())
	}
	a, err := newAnalyzer(logger, path, af, extra...)
	if err != nil {
		return err
	}
	if len(classes) == 0 {
		classes = a.Classes()
	}

	rows := make([]batch.Row, 0, len(classes))
	for _, class := range classes {
		var res []landscape.Result
		if len(names) == 0 {
			if res, err = a.ComputeMetrics(class); err != nil {
				return err
			}
		} else {
			for _, n := range names {
				r, err := a.ComputeMetric(n, class)
				if err != nil {
					return err
				}
				if r.Status == landscape.StatusUnknownMetric {
					logger.Printf("unknown metric %q, reported as %q", n, r.Name)
				}
				res = append(res, r)
			}
		}
		rows = append(rows, batch.Row{TileID: tileName(path), Class: class, Results: res})
	}
	return export.NewCSVWriter(w, comma).WriteRows(rows)
}

func runLandscape(w io.Writer, logger *log.Logger, path string, af analysisFlags, sep string) error {
	comma, err := separator(sep)
	if err != nil {
		return err
	}
	a, err := newAnalyzer(logger, path, af)
	if err != nil {
		return err
	}
	var res []landscape.Result
	for _, m := range landscape.LandscapeMetrics() {
		res = append(res, a.Landscape(m))
	}
	row := batch.Row{TileID: tileName(path), Class: batch.NoClass, Results: res}
	return export.NewCSVWriter(w, comma).WriteRows([]batch.Row{row})
}

func runList(w io.Writer) error {
	fmt.Fprintln(w, "Class metrics:")
	for _, n := range landscape.ListMetricNames() {
		fmt.Fprintf(w, "  %s\n", n)
	}
	fmt.Fprintln(w, "Landscape metrics:")
	for _, n := range landscape.LandscapeMetricNames() {
		fmt.Fprintf(w, "  %s\n", n)
	}
	return nil
}

func runNeighbours(w io.Writer, path string, af analysisFlags) error {
	_, g, err := loadGrid(path, af)
	if err != nil {
		return err
	}
	m, classes, err := landscape.NeighbourMatrix(g)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "classes: %v\n", classes)
	fmt.Fprintf(w, "%v\n", mat.Formatted(m, mat.Squeeze()))
	return nil
}

func runBatch(ctx context.Context, logger *log.Logger, configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	ids := cfg.Tiles.IDs
	if cfg.Tiles.Shapefile != "" {
		var opts []vector.Option
		if cfg.Tiles.IDField != "" {
			opts = append(opts, vector.WithIDField(cfg.Tiles.IDField))
		}
		if ids, err = vector.FeatureIDs(cfg.Tiles.Shapefile, opts...); err != nil {
			return err
		}
	}

	src := batch.TemplateSource(cfg.Raster, cfg.RasterOptions()...)
	var task batch.Task
	switch cfg.Mode {
	case config.ModeLandscape:
		task = batch.LandscapeTask{Source: src, Metrics: cfg.SummaryMetrics(), Options: cfg.AnalyzerOptions(), Logger: logger}
	default:
		task = batch.ClassTask{Source: src, Classes: cfg.Classes, Metrics: cfg.ClassMetrics(), Options: cfg.AnalyzerOptions(), Logger: logger}
	}

	rep, err := batch.NewRunner(cfg.Workers, logger).Run(ctx, ids, task)
	if err != nil {
		return err
	}

	if cfg.Output.CSV != "" {
		if err := export.WriteCSVFile(cfg.Output.CSV, rep.Rows, cfg.Separator()); err != nil {
			return fmt.Errorf("writing %s: %w", cfg.Output.CSV, err)
		}
		logger.Printf("wrote %s", cfg.Output.CSV)
	}
	if db := cfg.Output.Database; db != nil {
		store, err := export.OpenStore(ctx, db.Driver, db.DSN)
		if err != nil {
			return err
		}
		defer store.Close()
		if err := store.Save(ctx, rep); err != nil {
			return err
		}
		logger.Printf("stored run %s (%s)", rep.RunID, db.Driver)
	}
	return nil
}
