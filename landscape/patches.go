package landscape

import "github.com/katalvlaran/landmetrics/gridgraph"

// patchStats holds per-patch aggregates, indexed by label-1.
type patchStats struct {
	cells     []float64 // member cells
	weights   []float64 // sum of class-mask values
	perimeter []float64 // 4-edges to non-patch cells, raster edge included
	inner     []float64 // 4-edges to non-patch cells inside the raster only
	internal  []float64 // ordered 4-neighbour pairs inside the patch
}

// labelEdges holds label mismatches over the zero-padded label grid.
type labelEdges struct {
	horizontal, vertical int
}

var orthogonal = [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// collectPatchStats walks the label grid once and fills every per-patch sum.
// Complexity: O(W×H).
func collectPatchStats(lg gridgraph.LabelGrid, n int, m Mask) patchStats {
	ps := patchStats{
		cells:     make([]float64, n),
		weights:   make([]float64, n),
		perimeter: make([]float64, n),
		inner:     make([]float64, n),
		internal:  make([]float64, n),
	}
	for y := 0; y < lg.Height; y++ {
		for x := 0; x < lg.Width; x++ {
			l := lg.Labels[y*lg.Width+x]
			if l == 0 {
				continue
			}
			p := l - 1
			ps.cells[p]++
			ps.weights[p] += float64(m.Values[y*m.Width+x])
			for _, d := range orthogonal {
				nx, ny := x+d[0], y+d[1]
				inside := nx >= 0 && nx < lg.Width && ny >= 0 && ny < lg.Height
				switch {
				case lg.At(nx, ny) == l:
					ps.internal[p]++
				case inside:
					ps.perimeter[p]++
					ps.inner[p]++
				default:
					ps.perimeter[p]++
				}
			}
		}
	}
	return ps
}

// countLabelEdges counts horizontally and vertically adjacent pairs with
// different labels after padding the grid with a one-cell zero border.
// The padding makes the raster's own edge count as boundary wherever a patch
// touches it.
func countLabelEdges(lg gridgraph.LabelGrid) labelEdges {
	var e labelEdges
	for y := 0; y < lg.Height; y++ {
		for x := -1; x < lg.Width; x++ {
			if lg.At(x, y) != lg.At(x+1, y) {
				e.horizontal++
			}
		}
	}
	for x := 0; x < lg.Width; x++ {
		for y := -1; y < lg.Height; y++ {
			if lg.At(x, y) != lg.At(x, y+1) {
				e.vertical++
			}
		}
	}
	return e
}

// nonZero returns the entries of s that are not 0.
func nonZero(s []float64) []float64 {
	out := make([]float64, 0, len(s))
	for _, v := range s {
		if v != 0 {
			out = append(out, v)
		}
	}
	return out
}
