package raster

import (
	"bufio"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/disintegration/imaging"
)

// LoadImage decodes a single-band class image. Gray images yield their
// intensity, paletted images their palette index; anything with colour
// channels is ErrUnsupportedFormat. Pixel size and origin come from a world
// file when one exists, otherwise they are 1 and (0,0).
func LoadImage(path string, opts ...Option) (*Raster, error) {
	format, err := imaging.FormatFromFilename(path)
	if err != nil || format == imaging.JPEG {
		return nil, fmt.Errorf("%s: %w", path, ErrUnsupportedFormat)
	}
	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrRasterLoad, path, err)
	}
	cells, err := bandOf(img)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	r := &Raster{Path: path, Cells: cells, NoData: DefaultNoData, PixelWidth: 1, PixelHeight: 1}
	if wf, ok := findWorldFile(path); ok {
		w, err := readWorldFile(wf)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", wf, err)
		}
		r.PixelWidth, r.PixelHeight = w[0], -w[3]
		r.OriginX, r.OriginY = w[4]-w[0]/2, w[5]-w[3]/2
	}
	gather(opts).apply(r)
	return r, nil
}

// bandOf extracts the single band of img.
func bandOf(img image.Image) ([][]float64, error) {
	b := img.Bounds()
	var at func(x, y int) float64
	switch m := img.(type) {
	case *image.Gray:
		at = func(x, y int) float64 { return float64(m.GrayAt(x, y).Y) }
	case *image.Gray16:
		at = func(x, y int) float64 { return float64(m.Gray16At(x, y).Y) }
	case *image.Paletted:
		at = func(x, y int) float64 { return float64(m.ColorIndexAt(x, y)) }
	default:
		return nil, fmt.Errorf("colour model %T: %w", img, ErrUnsupportedFormat)
	}
	cells := make([][]float64, b.Dy())
	for y := range cells {
		row := make([]float64, b.Dx())
		for x := range row {
			row[x] = at(b.Min.X+x, b.Min.Y+y)
		}
		cells[y] = row
	}
	return cells, nil
}

// worldExts maps an image extension to its world-file extensions.
var worldExts = map[string][]string{
	".png":  {".pgw", ".pngw"},
	".gif":  {".gfw", ".gifw"},
	".bmp":  {".bpw", ".bmpw"},
}

func findWorldFile(path string) (string, bool) {
	ext := filepath.Ext(path)
	base := strings.TrimSuffix(path, ext)
	candidates := append(append([]string(nil), worldExts[strings.ToLower(ext)]...), ".wld")
	for _, c := range candidates {
		for _, name := range []string{base + c, base + strings.ToUpper(c)} {
			if st, err := os.Stat(name); err == nil && !st.IsDir() {
				return name, true
			}
		}
	}
	return "", false
}

// readWorldFile parses the six affine parameters A D B E C F, where C,F is
// the centre of the upper-left pixel.
func readWorldFile(path string) ([6]float64, error) {
	var w [6]float64
	f, err := os.Open(path)
	if err != nil {
		return w, fmt.Errorf("%w: %v", ErrRasterLoad, err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	sc.Split(bufio.ScanWords)
	i := 0
	for ; i < len(w) && sc.Scan(); i++ {
		if w[i], err = strconv.ParseFloat(sc.Text(), 64); err != nil {
			return w, fmt.Errorf("%w: world file line %d: %v", ErrRasterLoad, i+1, err)
		}
	}
	if i < len(w) {
		return w, fmt.Errorf("%w: world file has %d of 6 parameters", ErrRasterLoad, i)
	}
	return w, nil
}
