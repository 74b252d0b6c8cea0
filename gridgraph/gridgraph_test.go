package gridgraph_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/landmetrics/gridgraph"
)

//----------------------------------------------------------------------------//
// NewGridGraph and InBounds Tests
//----------------------------------------------------------------------------//

// TestNewGridGraph_Errors verifies that NewGridGraph rejects empty or ragged inputs.
func TestNewGridGraph_Errors(t *testing.T) {
	cases := []struct {
		name string
		grid [][]int
		opts gridgraph.GridOptions
		err  error
	}{
		{"EmptyRows", [][]int{}, gridgraph.DefaultGridOptions(), gridgraph.ErrEmptyGrid},
		{"EmptyCols", [][]int{{}}, gridgraph.DefaultGridOptions(), gridgraph.ErrEmptyGrid},
		{"NonRectangular", [][]int{{1, 2}, {3}}, gridgraph.DefaultGridOptions(), gridgraph.ErrNonRectangular},
		{"BadConn", [][]int{{1}}, gridgraph.GridOptions{LandThreshold: 1, Conn: 3}, gridgraph.ErrBadConnectivity},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gridgraph.NewGridGraph(tc.grid, tc.opts)
			if !errors.Is(err, tc.err) {
				t.Errorf("NewGridGraph(%v) error = %v; want %v", tc.grid, err, tc.err)
			}
		})
	}
}

// TestInBounds checks InBounds on a 3×2 grid under Conn4.
func TestInBounds(t *testing.T) {
	grid := [][]int{
		{0, 1, 0},
		{1, 0, 1},
	}
	opts := gridgraph.DefaultGridOptions()
	opts.Conn = gridgraph.Conn4
	gg, err := gridgraph.NewGridGraph(grid, opts)
	if err != nil {
		t.Fatalf("NewGridGraph error: %v", err)
	}

	valid := [][2]int{{0, 0}, {2, 1}, {1, 1}}
	for _, xy := range valid {
		if !gg.InBounds(xy[0], xy[1]) {
			t.Errorf("InBounds(%d,%d)=false; want true", xy[0], xy[1])
		}
	}
	invalid := [][2]int{{-1, 0}, {3, 0}, {1, 2}, {2, -1}}
	for _, xy := range invalid {
		if gg.InBounds(xy[0], xy[1]) {
			t.Errorf("InBounds(%d,%d)=true; want false", xy[0], xy[1])
		}
	}
}

// TestNewGridGraph_DeepCopy ensures later mutation of the input does not leak in.
func TestNewGridGraph_DeepCopy(t *testing.T) {
	grid := [][]int{{1, 0}, {0, 1}}
	gg, err := gridgraph.From2D(grid, gridgraph.Conn4)
	if err != nil {
		t.Fatalf("From2D error: %v", err)
	}
	grid[0][1] = 1
	if gg.CellValues[0][1] != 0 {
		t.Error("GridGraph shares storage with its input")
	}
}

// TestLandThreshold verifies values below the threshold are background.
func TestLandThreshold(t *testing.T) {
	gg, err := gridgraph.NewGridGraph([][]int{{1, 2, 3}}, gridgraph.GridOptions{LandThreshold: 2, Conn: gridgraph.Conn4})
	if err != nil {
		t.Fatalf("NewGridGraph error: %v", err)
	}
	if gg.IsLand(0, 0) || !gg.IsLand(1, 0) || gg.IsLand(5, 0) {
		t.Error("IsLand does not honour LandThreshold or bounds")
	}
	if _, n := gg.Label(); n != 1 {
		t.Errorf("patches = %d; want 1", n)
	}
}

//----------------------------------------------------------------------------//
// Labeling properties
//----------------------------------------------------------------------------//

// TestLabel_AllFalse: an all-false mask yields no patches and an all-zero grid.
func TestLabel_AllFalse(t *testing.T) {
	lg, n, err := gridgraph.Label([][]int{{0, 0, 0}, {0, 0, 0}}, gridgraph.Conn8)
	if err != nil {
		t.Fatalf("Label error: %v", err)
	}
	if n != 0 {
		t.Errorf("n = %d; want 0", n)
	}
	for i, l := range lg.Labels {
		if l != 0 {
			t.Fatalf("Labels[%d] = %d; want 0", i, l)
		}
	}
}

// TestLabel_DiagonalPair: two corner-touching cells form one patch under Conn8
// and two patches under Conn4.
func TestLabel_DiagonalPair(t *testing.T) {
	mask := [][]int{
		{1, 0},
		{0, 1},
	}
	cases := []struct {
		conn gridgraph.Connectivity
		want int
	}{
		{gridgraph.Conn8, 1},
		{gridgraph.Conn4, 2},
	}
	for _, tc := range cases {
		t.Run("Conn"+tc.conn.String(), func(t *testing.T) {
			_, n, err := gridgraph.Label(mask, tc.conn)
			if err != nil {
				t.Fatalf("Label error: %v", err)
			}
			if n != tc.want {
				t.Errorf("n = %d; want %d", n, tc.want)
			}
		})
	}
}

// TestLabel_Checkerboard: on a 4×4 checkerboard every true cell is isolated
// under Conn4 and all of them join under Conn8.
func TestLabel_Checkerboard(t *testing.T) {
	mask := make([][]int, 4)
	trues := 0
	for y := range mask {
		mask[y] = make([]int, 4)
		for x := range mask[y] {
			if (x+y)%2 == 0 {
				mask[y][x] = 1
				trues++
			}
		}
	}

	_, n4, err := gridgraph.Label(mask, gridgraph.Conn4)
	if err != nil {
		t.Fatalf("Label Conn4 error: %v", err)
	}
	if n4 != trues {
		t.Errorf("Conn4 patches = %d; want %d", n4, trues)
	}

	_, n8, err := gridgraph.Label(mask, gridgraph.Conn8)
	if err != nil {
		t.Fatalf("Label Conn8 error: %v", err)
	}
	if n8 != 1 {
		t.Errorf("Conn8 patches = %d; want 1", n8)
	}
}

// TestParseConnectivity covers the configuration-file notation.
func TestParseConnectivity(t *testing.T) {
	if c, err := gridgraph.ParseConnectivity(4); err != nil || c != gridgraph.Conn4 {
		t.Errorf("ParseConnectivity(4) = %v, %v", c, err)
	}
	if c, err := gridgraph.ParseConnectivity(8); err != nil || c != gridgraph.Conn8 {
		t.Errorf("ParseConnectivity(8) = %v, %v", c, err)
	}
	if _, err := gridgraph.ParseConnectivity(6); !errors.Is(err, gridgraph.ErrBadConnectivity) {
		t.Errorf("ParseConnectivity(6) err = %v; want ErrBadConnectivity", err)
	}
}

// TestOffsets checks neighbourhood sizes and rejection of other values.
func TestOffsets(t *testing.T) {
	for conn, want := range map[gridgraph.Connectivity]int{gridgraph.Conn4: 4, gridgraph.Conn8: 8} {
		off, err := gridgraph.Offsets(conn)
		if err != nil {
			t.Fatalf("Offsets(%v) error: %v", conn, err)
		}
		if len(off) != want {
			t.Errorf("Offsets(%v) has %d entries; want %d", conn, len(off), want)
		}
	}
	if _, err := gridgraph.Offsets(gridgraph.Connectivity(6)); !errors.Is(err, gridgraph.ErrBadConnectivity) {
		t.Errorf("Offsets(6) error = %v; want ErrBadConnectivity", err)
	}
}
