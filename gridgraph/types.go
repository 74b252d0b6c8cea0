package gridgraph

import "fmt"

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// String returns "4" or "8", matching the notation used in configuration files.
func (c Connectivity) String() string {
	switch c {
	case Conn4:
		return "4"
	case Conn8:
		return "8"
	default:
		return fmt.Sprintf("Connectivity(%d)", int(c))
	}
}

// ParseConnectivity maps 4 or 8 to the corresponding Connectivity.
func ParseConnectivity(n int) (Connectivity, error) {
	switch n {
	case 4:
		return Conn4, nil
	case 8:
		return Conn8, nil
	default:
		return 0, fmt.Errorf("parse connectivity %d: %w", n, ErrBadConnectivity)
	}
}

// GridOptions contains tunable parameters for grid analysis.
type GridOptions struct {
	// LandThreshold specifies the minimum cell value considered foreground.
	LandThreshold int
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
}

// DefaultGridOptions returns a GridOptions with default settings:
// LandThreshold=1 (values ≥1 are foreground), Conn=Conn8.
//
// Eight-connectivity is the usual convention for ecological patches:
// cells touching at a corner belong to the same patch.
func DefaultGridOptions() GridOptions {
	return GridOptions{
		LandThreshold: 1,
		Conn:          Conn8,
	}
}

// GridGraph treats a 2D integer grid as a graph. It is immutable once built.
// Width and Height define dimensions; CellValues[y][x] holds the original input value.
// Conn and LandThreshold are set from GridOptions during construction.
// neighborOffsets is precomputed for efficient adjacency lookups.
type GridGraph struct {
	Width, Height   int
	CellValues      [][]int
	Conn            Connectivity
	LandThreshold   int
	neighborOffsets [][2]int
}

// LabelGrid is the result of connected-component labeling.
// Labels holds Width×Height entries in row-major order; 0 marks background
// and patches carry labels 1..N in the order their first cell is met by a
// row-major scan from the top-left corner.
type LabelGrid struct {
	Width, Height int
	Labels        []int
}

// At returns the label at (x,y), or 0 when (x,y) lies outside the grid.
// Returning background outside the grid is what perimeter counting relies on.
// Complexity: O(1).
func (lg LabelGrid) At(x, y int) int {
	if x < 0 || x >= lg.Width || y < 0 || y >= lg.Height {
		return 0
	}
	return lg.Labels[y*lg.Width+x]
}

// Rows returns the labels as a freshly allocated [][]int (row y, column x).
func (lg LabelGrid) Rows() [][]int {
	out := make([][]int, lg.Height)
	for y := 0; y < lg.Height; y++ {
		out[y] = make([]int, lg.Width)
		copy(out[y], lg.Labels[y*lg.Width:(y+1)*lg.Width])
	}
	return out
}
