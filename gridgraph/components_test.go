// File: gridgraph/components_test.go
package gridgraph

import (
	"reflect"
	"sort"
	"testing"
)

// TestConnectedComponents_Simple4 tests ConnectedComponents on a simple 4×3 grid
// with orthogonal connectivity (Conn4).
//
// Grid (1 = foreground, 0 = background):
//
//	0 1 1 0
//	1 1 0 0
//	0 0 1 1
//
// Expected: 2 components of sizes 4 and 2.
func TestConnectedComponents_Simple4(t *testing.T) {
	grid := [][]int{
		{0, 1, 1, 0},
		{1, 1, 0, 0},
		{0, 0, 1, 1},
	}
	gg, err := From2D(grid, Conn4)
	if err != nil {
		t.Fatalf("From2D failed: %v", err)
	}

	comps := gg.ConnectedComponents()
	if len(comps) != 2 {
		t.Fatalf("got %d components; want 2", len(comps))
	}

	sizes := []int{len(comps[0]), len(comps[1])}
	sort.Ints(sizes)
	want := []int{2, 4}
	if !reflect.DeepEqual(sizes, want) {
		t.Errorf("component sizes = %v; want %v", sizes, want)
	}
}

// TestConnectedComponents_Diagonal8 tests ConnectedComponents on a 5×5 grid
// using diagonal connectivity (Conn8) to catch “touching corners” patches.
//
// Grid:
//
//	1 0 0 0 1
//	0 1 0 1 0
//	0 0 1 0 0
//	0 1 0 1 0
//	1 0 0 0 1
//
// With Conn8, all 9 ones connect through diagonal hops into a single patch.
func TestConnectedComponents_Diagonal8(t *testing.T) {
	grid := [][]int{
		{1, 0, 0, 0, 1},
		{0, 1, 0, 1, 0},
		{0, 0, 1, 0, 0},
		{0, 1, 0, 1, 0},
		{1, 0, 0, 0, 1},
	}
	gg, err := From2D(grid, Conn8)
	if err != nil {
		t.Fatalf("From2D failed: %v", err)
	}

	comps := gg.ConnectedComponents()
	if len(comps) != 1 {
		t.Fatalf("got %d components; want 1", len(comps))
	}
	if size := len(comps[0]); size != 9 {
		t.Errorf("component size = %d; want 9", size)
	}
}

// TestConnectedComponents_EmptyAndAllWater tests edge cases:
//   - completely background grid → zero components
//   - single foreground cell → one component of size 1
func TestConnectedComponents_EmptyAndAllWater(t *testing.T) {
	gg1, _ := From2D([][]int{{0, 0}, {0, 0}}, Conn4)
	if comps := gg1.ConnectedComponents(); len(comps) != 0 {
		t.Errorf("all-background: got %d components; want 0", len(comps))
	}

	gg2, _ := From2D([][]int{{0, 1}}, Conn4)
	comps2 := gg2.ConnectedComponents()
	if len(comps2) != 1 {
		t.Fatalf("single cell: got %d components; want 1", len(comps2))
	}
	if len(comps2[0]) != 1 {
		t.Errorf("single cell: component size = %d; want 1", len(comps2[0]))
	}
}

// TestConnectedComponents_InvalidRects ensures From2D rejects bad inputs.
func TestConnectedComponents_InvalidRects(t *testing.T) {
	if _, err := From2D(nil, Conn4); err != ErrEmptyGrid {
		t.Errorf("nil grid: got %v; want ErrEmptyGrid", err)
	}
	if _, err := From2D([][]int{{1}, {}}, Conn4); err != ErrNonRectangular {
		t.Errorf("jagged grid: got %v; want ErrNonRectangular", err)
	}
	if _, err := From2D([][]int{{1}}, Connectivity(7)); err != ErrBadConnectivity {
		t.Errorf("bad conn: got %v; want ErrBadConnectivity", err)
	}
}

// TestLabel_ContiguousLabels checks that labels cover exactly [1,n] and that
// every component from ConnectedComponents maps to a single label.
func TestLabel_ContiguousLabels(t *testing.T) {
	grid := [][]int{
		{1, 0, 1, 1, 0},
		{1, 0, 0, 1, 0},
		{0, 0, 0, 0, 0},
		{1, 1, 0, 0, 1},
	}
	gg, err := From2D(grid, Conn4)
	if err != nil {
		t.Fatalf("From2D failed: %v", err)
	}
	lg, n := gg.Label()
	if n != 4 {
		t.Fatalf("Label n = %d; want 4", n)
	}

	seen := make(map[int]bool)
	for i, l := range lg.Labels {
		x, y := gg.Coordinate(i)
		if grid[y][x] == 0 && l != 0 {
			t.Errorf("background (%d,%d) labeled %d", x, y, l)
		}
		if grid[y][x] == 1 && (l < 1 || l > n) {
			t.Errorf("foreground (%d,%d) label %d outside [1,%d]", x, y, l, n)
		}
		if l > 0 {
			seen[l] = true
		}
	}
	if len(seen) != n {
		t.Errorf("distinct labels = %d; want %d", len(seen), n)
	}

	for ci, comp := range gg.ConnectedComponents() {
		want := lg.Labels[comp[0]]
		for _, idx := range comp {
			if lg.Labels[idx] != want {
				t.Errorf("component %d split across labels %d and %d", ci, want, lg.Labels[idx])
			}
		}
	}
}

// TestLabel_ScanOrder checks that the first patch met in row-major order gets label 1.
func TestLabel_ScanOrder(t *testing.T) {
	lg, n, err := Label([][]int{
		{0, 0, 1},
		{1, 0, 0},
	}, Conn4)
	if err != nil {
		t.Fatalf("Label error: %v", err)
	}
	if n != 2 {
		t.Fatalf("n = %d; want 2", n)
	}
	if lg.At(2, 0) != 1 || lg.At(0, 1) != 2 {
		t.Errorf("labels = %v; want top-right=1, left=2", lg.Rows())
	}
	if lg.At(-1, 0) != 0 || lg.At(3, 0) != 0 || lg.At(0, 2) != 0 {
		t.Error("At outside grid must return background 0")
	}
}
