package landscape

import (
	"fmt"
	"math"
	"sort"
)

// Grid is an immutable H×W raster of integer class codes with one reserved
// no-data value. Cells are stored row-major.
type Grid struct {
	Width, Height int
	NoData        int
	cells         []int
}

// NewGrid validates and deep-copies values into a Grid.
// Returns ErrEmptyGrid or ErrNonRectangular for malformed input.
// Complexity: O(W×H).
func NewGrid(values [][]int, nodata int) (*Grid, error) {
	h, w, err := shape(len(values), func(y int) int { return len(values[y]) })
	if err != nil {
		return nil, err
	}
	g := &Grid{Width: w, Height: h, NoData: nodata, cells: make([]int, w*h)}
	for y := 0; y < h; y++ {
		copy(g.cells[y*w:(y+1)*w], values[y])
	}
	return g, nil
}

// FromFloat64 converts a loaded float raster into a Grid. Every cell other
// than no-data, and no-data itself, must be an integral finite value;
// otherwise ErrInvalidData is returned with the first offending position.
func FromFloat64(values [][]float64, nodata float64) (*Grid, error) {
	h, w, err := shape(len(values), func(y int) int { return len(values[y]) })
	if err != nil {
		return nil, err
	}
	if !integral(nodata) {
		return nil, fmt.Errorf("no-data value %v: %w", nodata, ErrInvalidData)
	}
	nd := int(nodata)
	g := &Grid{Width: w, Height: h, NoData: nd, cells: make([]int, w*h)}
	for y := 0; y < h; y++ {
		for x, v := range values[y] {
			if v == nodata {
				g.cells[y*w+x] = nd
				continue
			}
			if !integral(v) {
				return nil, fmt.Errorf("cell (%d,%d)=%v: %w", x, y, v, ErrInvalidData)
			}
			g.cells[y*w+x] = int(v)
		}
	}
	return g, nil
}

// At returns the class code at (x,y). The caller must stay in bounds.
func (g *Grid) At(x, y int) int {
	return g.cells[y*g.Width+x]
}

// Len returns the total number of cells, no-data included.
func (g *Grid) Len() int {
	return len(g.cells)
}

// Values returns the non-no-data cell values in row-major order.
func (g *Grid) Values() []float64 {
	out := make([]float64, 0, len(g.cells))
	for _, v := range g.cells {
		if v != g.NoData {
			out = append(out, float64(v))
		}
	}
	return out
}

// Rows returns a copy of the grid as [][]int.
func (g *Grid) Rows() [][]int {
	out := make([][]int, g.Height)
	for y := range out {
		out[y] = make([]int, g.Width)
		copy(out[y], g.cells[y*g.Width:(y+1)*g.Width])
	}
	return out
}

// CountClass returns the number of cells equal to class.
func (g *Grid) CountClass(class int) int {
	n := 0
	for _, v := range g.cells {
		if v == class {
			n++
		}
	}
	return n
}

// Classify returns the sorted distinct class codes of g, excluding no-data.
// Returns ErrEmptyClassSet when the grid is entirely no-data.
// Complexity: O(W×H + k log k) for k classes.
func Classify(g *Grid) ([]int, error) {
	seen := make(map[int]struct{})
	for _, v := range g.cells {
		if v != g.NoData {
			seen[v] = struct{}{}
		}
	}
	return sortedClasses(seen)
}

// ClassifyValues is Classify over a raw float grid: it returns the sorted
// distinct codes excluding nodata, failing with ErrInvalidData on any
// non-integral value and ErrEmptyClassSet when nothing remains.
func ClassifyValues(values [][]float64, nodata float64) ([]int, error) {
	seen := make(map[int]struct{})
	for y, row := range values {
		for x, v := range row {
			if v == nodata {
				continue
			}
			if !integral(v) {
				return nil, fmt.Errorf("cell (%d,%d)=%v: %w", x, y, v, ErrInvalidData)
			}
			seen[int(v)] = struct{}{}
		}
	}
	return sortedClasses(seen)
}

func sortedClasses(seen map[int]struct{}) ([]int, error) {
	if len(seen) == 0 {
		return nil, ErrEmptyClassSet
	}
	classes := make([]int, 0, len(seen))
	for c := range seen {
		classes = append(classes, c)
	}
	sort.Ints(classes)
	return classes, nil
}

// integral reports whether v is finite and has no fractional part.
func integral(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v == math.Trunc(v)
}

// shape validates a row-length accessor and returns (height, width).
func shape(h int, rowLen func(y int) int) (int, int, error) {
	if h == 0 || rowLen(0) == 0 {
		return 0, 0, ErrEmptyGrid
	}
	w := rowLen(0)
	for y := 1; y < h; y++ {
		if rowLen(y) != w {
			return 0, 0, ErrNonRectangular
		}
	}
	return h, w, nil
}
