package landscape

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/landmetrics/gridgraph"
)

// NeighbourMatrix counts class co-occurrence over the 8-neighbourhood.
//
// Entry (i,j) is the number of (cell, neighbour) pairs where the cell holds
// classes[i] and the neighbour holds classes[j]. Each unordered pair is seen
// from both sides, so the matrix is symmetric. No-data cells and positions
// beyond the raster edge are skipped. classes is the sorted class list of g.
//
// Returns ErrEmptyClassSet when g is entirely no-data.
// Complexity: O(8·W·H).
func NeighbourMatrix(g *Grid) (*mat.Dense, []int, error) {
	classes, err := Classify(g)
	if err != nil {
		return nil, nil, err
	}
	index := make(map[int]int, len(classes))
	for i, c := range classes {
		index[c] = i
	}
	offsets, _ := gridgraph.Offsets(gridgraph.Conn8)

	counts := mat.NewDense(len(classes), len(classes), nil)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			v := g.At(x, y)
			if v == g.NoData {
				continue
			}
			i := index[v]
			for _, d := range offsets {
				nx, ny := x+d[0], y+d[1]
				if nx < 0 || ny < 0 || nx >= g.Width || ny >= g.Height {
					continue
				}
				n := g.At(nx, ny)
				if n == g.NoData {
					continue
				}
				j := index[n]
				counts.Set(i, j, counts.At(i, j)+1)
			}
		}
	}
	return counts, classes, nil
}
