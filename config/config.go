// Package config loads the YAML description of a batch run.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/landmetrics/batch"
	"github.com/katalvlaran/landmetrics/gridgraph"
	"github.com/katalvlaran/landmetrics/landscape"
	"github.com/katalvlaran/landmetrics/raster"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Run modes.
const (
	ModeClass     = "class"
	ModeLandscape = "landscape"
)

// Config describes one batch run.
//
//	tiles:
//	  shapefile: grid.shp      # feature ids become tile ids
//	  id_field: TILE           # optional DBF attribute instead of the FID
//	raster: tiles/{id}.asc     # {id} is replaced by the tile id
//	classes: [1, 2]
//	metrics: ["Edge density", "Number of Patches"]
//	output:
//	  csv: results.csv
type Config struct {
	Mode               string   `yaml:"mode"`
	Tiles              Tiles    `yaml:"tiles"`
	Raster             string   `yaml:"raster"`
	NoData             *float64 `yaml:"nodata"`
	Classes            []int    `yaml:"classes"`
	Metrics            []string `yaml:"metrics"`
	LandscapeMetrics   []string `yaml:"landscape_metrics"`
	Connectivity       int      `yaml:"connectivity"`
	ClassNormalization *bool    `yaml:"class_normalization"`
	Workers            int      `yaml:"workers"`
	Output             Output   `yaml:"output"`
}

// Tiles selects the tile ids: either listed or read from a shapefile.
type Tiles struct {
	Shapefile string   `yaml:"shapefile"`
	IDField   string   `yaml:"id_field"`
	IDs       []string `yaml:"ids"`
}

// Output names the sinks. At least one is required.
type Output struct {
	CSV       string    `yaml:"csv"`
	Separator string    `yaml:"separator"`
	Database  *Database `yaml:"database"`
}

// Database configures the SQL sink.
type Database struct {
	Driver string `yaml:"driver"`
	DSN    string `yaml:"dsn"`
}

// Load reads, defaults and validates the YAML file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML, rejecting unknown keys, then defaults and validates.
func Parse(data []byte) (*Config, error) {
	var c Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("parsing config YAML: %w", err)
	}
	c.applyDefaults()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Config) applyDefaults() {
	if c.Mode == "" {
		c.Mode = ModeClass
	}
	if c.Connectivity == 0 {
		c.Connectivity = 8
	}
	if c.Workers <= 0 {
		c.Workers = batch.DefaultWorkers()
	}
	if c.Output.Separator == "" {
		c.Output.Separator = ";"
	}
	if c.ClassNormalization == nil {
		on := landscape.DefaultClassNormalization
		c.ClassNormalization = &on
	}
}

// Validate checks every field and resolves metric names. Unknown metric
// names are configuration errors here.
func (c *Config) Validate() error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...))
	}

	switch c.Mode {
	case ModeClass:
		if len(c.Classes) == 0 {
			fail("classes: at least one class is required in %q mode", ModeClass)
		}
	case ModeLandscape:
	default:
		fail("mode %q: want %q or %q", c.Mode, ModeClass, ModeLandscape)
	}
	if c.Raster == "" {
		fail("raster: path pattern is required")
	}
	if (c.Tiles.Shapefile == "") == (len(c.Tiles.IDs) == 0) {
		fail("tiles: set exactly one of shapefile or ids")
	}
	if _, err := gridgraph.ParseConnectivity(c.Connectivity); err != nil {
		fail("connectivity %d: want 4 or 8", c.Connectivity)
	}
	if utf8.RuneCountInString(c.Output.Separator) != 1 {
		fail("output.separator %q: want a single character", c.Output.Separator)
	}
	if c.Output.CSV == "" && c.Output.Database == nil {
		fail("output: csv or database is required")
	}
	if db := c.Output.Database; db != nil && (db.Driver == "" || db.DSN == "") {
		fail("output.database: driver and dsn are required")
	}
	for _, n := range c.Metrics {
		if _, ok := landscape.ParseMetric(n); !ok {
			fail("metrics: unknown metric %q", n)
		}
	}
	for _, n := range c.LandscapeMetrics {
		if _, ok := landscape.ParseLandscapeMetric(n); !ok {
			fail("landscape_metrics: unknown metric %q", n)
		}
	}
	return errors.Join(errs...)
}

// ClassMetrics returns the resolved per-class metrics; empty means all.
func (c *Config) ClassMetrics() []landscape.Metric {
	out := make([]landscape.Metric, 0, len(c.Metrics))
	for _, n := range c.Metrics {
		if m, ok := landscape.ParseMetric(n); ok {
			out = append(out, m)
		}
	}
	return out
}

// SummaryMetrics returns the resolved landscape metrics; empty means all.
func (c *Config) SummaryMetrics() []landscape.LandscapeMetric {
	out := make([]landscape.LandscapeMetric, 0, len(c.LandscapeMetrics))
	for _, n := range c.LandscapeMetrics {
		if m, ok := landscape.ParseLandscapeMetric(n); ok {
			out = append(out, m)
		}
	}
	return out
}

// AnalyzerOptions translates the analysis settings. Unknown metric names
// cannot reach the analyzer, so strict mode is always on.
func (c *Config) AnalyzerOptions() []landscape.Option {
	conn, _ := gridgraph.ParseConnectivity(c.Connectivity)
	return []landscape.Option{
		landscape.WithConnectivity(conn),
		landscape.WithClassNormalization(*c.ClassNormalization),
		landscape.WithStrictMetricNames(),
	}
}

// RasterOptions returns the loader options (a no-data override if set).
func (c *Config) RasterOptions() []raster.Option {
	if c.NoData == nil {
		return nil
	}
	return []raster.Option{raster.WithNoData(*c.NoData)}
}

// Separator returns the CSV column separator.
func (c *Config) Separator() rune {
	r, _ := utf8.DecodeRuneInString(c.Output.Separator)
	return r
}
