package landscape

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// NearestNeighborDistance returns the mean Euclidean distance between patches.
// For every unordered pair of patches the smallest cell-to-cell distance is
// taken; the pairs are averaged and scaled by the cell size.
//
// No patches gives NaN, a single patch gives 0.
//
// Complexity: O(N²) in the number of class cells. Fine for tiles of moderate
// size; a full-scene raster with a dominant class will be slow.
func (c *Class) NearestNeighborDistance() Value {
	switch {
	case c.NumPatches == 0:
		return defined(math.NaN())
	case c.NumPatches < 2:
		return defined(0)
	}

	cells := make([][][2]int, c.NumPatches)
	lg := c.Labels
	for y := 0; y < lg.Height; y++ {
		for x := 0; x < lg.Width; x++ {
			if l := lg.Labels[y*lg.Width+x]; l != 0 {
				cells[l-1] = append(cells[l-1], [2]int{x, y})
			}
		}
	}

	dists := make([]float64, 0, c.NumPatches*(c.NumPatches-1)/2)
	for i := 1; i < c.NumPatches; i++ {
		for j := 0; j < i; j++ {
			best := math.MaxInt
			for _, a := range cells[i] {
				for _, b := range cells[j] {
					dx, dy := a[0]-b[0], a[1]-b[1]
					if d := dx*dx + dy*dy; d < best {
						best = d
					}
				}
			}
			dists = append(dists, math.Sqrt(float64(best)))
		}
	}
	return defined(stat.Mean(dists, nil) * c.cellSize)
}
