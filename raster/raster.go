// Package raster loads single-band categorical rasters from disk.
//
// Supported inputs:
//
//   - Georeferenced rasters (ArcGIS ASCII grids .asc/.txt, GeoTIFF
//     .tif/.tiff, ArcGIS binary .flt, Whitebox .dep, Surfer .grd, SAGA .sdat,
//     Idrisi .rst) read with github.com/jblindsay/go-spatial. Pixel size and
//     no-data come from the file header or GeoTIFF tags.
//   - Plain class images (.png, .gif, .bmp) decoded with
//     github.com/disintegration/imaging. Gray images contribute their
//     intensity, paletted images their palette index. Georeferencing comes
//     from an optional world file next to the image, and no-data defaults
//     to 0.
package raster

import (
	"fmt"
	"math"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/landmetrics/landscape"
)

// DefaultNoData is assumed when the file declares none.
const DefaultNoData = 0

// Raster is one band of cell values plus its georeferencing.
type Raster struct {
	Path        string
	Cells       [][]float64 // row-major, top row first
	NoData      float64
	HasNoData   bool    // false when NoData is the DefaultNoData fallback
	PixelWidth  float64 // map units per column
	PixelHeight float64 // map units per row, positive
	OriginX     float64 // x of the upper-left corner
	OriginY     float64 // y of the upper-left corner
}

// Width returns the number of columns.
func (r *Raster) Width() int {
	if len(r.Cells) == 0 {
		return 0
	}
	return len(r.Cells[0])
}

// Height returns the number of rows.
func (r *Raster) Height() int { return len(r.Cells) }

// CellSize returns the horizontal pixel size. A differing vertical size is
// logged and otherwise ignored.
func (r *Raster) CellSize(logger landscape.Logger) float64 {
	w, h := math.Abs(r.PixelWidth), math.Abs(r.PixelHeight)
	if w != h && logger != nil {
		logger.Printf("raster: %s: pixel size differs in X (%g) and Y (%g), using X", r.Path, w, h)
	}
	return w
}

// Grid converts the cells into a landscape.Grid.
func (r *Raster) Grid() (*landscape.Grid, error) {
	g, err := landscape.FromFloat64(r.Cells, r.NoData)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", r.Path, err)
	}
	return g, nil
}

// Option configures Load.
type Option func(*options)

type options struct {
	nodata    float64
	nodataSet bool
}

// WithNoData overrides the no-data value found in (or missing from) the file.
func WithNoData(v float64) Option {
	return func(o *options) {
		o.nodata = v
		o.nodataSet = true
	}
}

func (o options) apply(r *Raster) {
	if o.nodataSet {
		r.NoData = o.nodata
		r.HasNoData = true
	}
}

// Load reads path, choosing the decoder by file extension.
func Load(path string, opts ...Option) (*Raster, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".asc", ".txt", ".tif", ".tiff", ".flt", ".dep", ".grd", ".sdat", ".rst":
		return LoadSpatial(path, opts...)
	case ".png", ".gif", ".bmp":
		return LoadImage(path, opts...)
	default:
		return nil, fmt.Errorf("%s: extension %q: %w", path, ext, ErrUnsupportedFormat)
	}
}

func gather(opts []Option) options {
	var o options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}
