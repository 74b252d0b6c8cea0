package raster

import (
	"errors"
	"fmt"
	"os"

	spatial "github.com/jblindsay/go-spatial/geospatialfiles/raster"
)

// LoadSpatial reads a georeferenced raster (ArcGIS ASCII grid, GeoTIFF and
// the other formats github.com/jblindsay/go-spatial understands). Pixel size,
// origin and no-data value come from the file itself.
func LoadSpatial(path string, opts ...Option) (*Raster, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRasterLoad, err)
	}
	rt, err := spatial.DetermineRasterFormat(path)
	if errors.Is(err, spatial.UnsupportedRasterFormatError) || rt == spatial.RT_UnknownRaster {
		return nil, fmt.Errorf("%s: %w", path, ErrUnsupportedFormat)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrRasterLoad, path, err)
	}

	in, err := spatial.CreateRasterFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrRasterLoad, path, err)
	}
	if in.Rows <= 0 || in.Columns <= 0 {
		return nil, fmt.Errorf("%w: %s: %d rows, %d columns", ErrRasterLoad, path, in.Rows, in.Columns)
	}

	r := &Raster{
		Path:        path,
		NoData:      in.NoDataValue,
		HasNoData:   true,
		PixelWidth:  (in.East - in.West) / float64(in.Columns),
		PixelHeight: (in.North - in.South) / float64(in.Rows),
		OriginX:     in.West,
		OriginY:     in.North,
		Cells:       make([][]float64, in.Rows),
	}
	for row := range r.Cells {
		cells := make([]float64, in.Columns)
		for col := range cells {
			cells[col] = in.Value(row, col)
		}
		r.Cells[row] = cells
	}
	gather(opts).apply(r)
	return r, nil
}
