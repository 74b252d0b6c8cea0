package raster

import "errors"

var (
	// ErrRasterLoad wraps every failure to open, read or decode a raster.
	ErrRasterLoad = errors.New("raster: cannot load raster")

	// ErrUnsupportedFormat indicates an unknown extension, a lossy image
	// format, or a multi-band image.
	ErrUnsupportedFormat = errors.New("raster: unsupported format")
)
