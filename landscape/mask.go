package landscape

// Mask is the per-class view of a Grid: which cells belong to the class and
// the value each member cell carries in class-weighted sums.
//
// For a class code c≠0 the value is c itself (the grid value survives, all
// other cells are zeroed). Class 0 cannot be told apart from "not this class"
// that way, so it uses an explicit inclusion mask of 1s. Without class
// normalization every member carries 1.
type Mask struct {
	Class         int
	Width, Height int
	Values        []int // row-major; 0 outside the class
}

// Mask builds the class mask for class.
func (g *Grid) Mask(class int, normalized bool) Mask {
	weight := 1
	if normalized && class != 0 {
		weight = class
	}
	m := Mask{Class: class, Width: g.Width, Height: g.Height, Values: make([]int, len(g.cells))}
	for i, v := range g.cells {
		if v == class {
			m.Values[i] = weight
		}
	}
	return m
}

// Contains reports whether (x,y) is inside the grid and belongs to the class.
func (m Mask) Contains(x, y int) bool {
	if x < 0 || x >= m.Width || y < 0 || y >= m.Height {
		return false
	}
	return m.Values[y*m.Width+x] != 0
}

// Count returns the number of member cells.
func (m Mask) Count() int {
	n := 0
	for _, v := range m.Values {
		if v != 0 {
			n++
		}
	}
	return n
}

// Binary returns the 0/1 membership grid consumed by the patch labeler.
func (m Mask) Binary() [][]int {
	out := make([][]int, m.Height)
	for y := range out {
		row := make([]int, m.Width)
		for x := range row {
			if m.Values[y*m.Width+x] != 0 {
				row[x] = 1
			}
		}
		out[y] = row
	}
	return out
}

// Erode applies binary erosion with the full 3×3 structuring element.
// A member survives only if all eight neighbours are members; cells outside
// the grid count as background, so the raster edge always erodes.
func (m Mask) Erode() Mask {
	out := Mask{Class: m.Class, Width: m.Width, Height: m.Height, Values: make([]int, len(m.Values))}
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			if !m.Contains(x, y) {
				continue
			}
			keep := true
			for dy := -1; dy <= 1 && keep; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if !m.Contains(x+dx, y+dy) {
						keep = false
						break
					}
				}
			}
			if keep {
				out.Values[y*m.Width+x] = m.Values[y*m.Width+x]
			}
		}
	}
	return out
}
