package landscape

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/landmetrics/gridgraph"
)

// PatchStat selects the aggregate used by Class.PatchArea.
type PatchStat int

const (
	PatchMax PatchStat = iota
	PatchMin
	PatchMean
	PatchMedian
)

// Class is the prepared state of one class: its mask, label grid and
// per-patch aggregates. It is read-only after construction and safe for
// concurrent use.
type Class struct {
	Code       int
	Mask       Mask
	Labels     gridgraph.LabelGrid
	NumPatches int

	grid           *Grid
	cellSize       float64
	cellArea       float64
	landscapeCells int
	normalized     bool
	patches        patchStats
	edges          labelEdges
}

// newClass builds the mask, labels it and collects per-patch statistics.
func newClass(g *Grid, code int, cellSize float64, landscapeCells int, o Options) (*Class, error) {
	m := g.Mask(code, o.classNormalization)
	lg, n, err := gridgraph.Label(m.Binary(), o.conn)
	if err != nil {
		return nil, fmt.Errorf("label class %d: %w", code, err)
	}
	return &Class{
		Code:           code,
		Mask:           m,
		Labels:         lg,
		NumPatches:     n,
		grid:           g,
		cellSize:       cellSize,
		cellArea:       cellSize * cellSize,
		landscapeCells: landscapeCells,
		normalized:     o.classNormalization,
		patches:        collectPatchStats(lg, n, m),
		edges:          countLabelEdges(lg),
	}, nil
}

// divisor is the class-code normalization divisor (1 when disabled).
func (c *Class) divisor() (float64, error) {
	if !c.normalized {
		return 1, nil
	}
	if c.Code == 0 {
		return 0, fmt.Errorf("normalize by class code 0: %w", ErrDivisionByZero)
	}
	return float64(c.Code), nil
}

// Area returns the class cover: labeled cells × cellsize².
func (c *Class) Area() float64 {
	n := 0
	for _, l := range c.Labels.Labels {
		if l != 0 {
			n++
		}
	}
	return float64(n) * c.cellArea
}

// LandscapeArea returns the summed area of every class in the class list.
func (c *Class) LandscapeArea() float64 {
	return float64(c.landscapeCells) * c.cellArea
}

// Proportion returns the share of the classified landscape covered by the class.
// The denominator is every cell in the class list, class 0 included. LecoS
// divided by the non-zero cells instead, which counts non-zero no-data cells
// and leaves class 0 out, so its numbers differ on such rasters.
func (c *Class) Proportion() Value {
	return ratio(float64(c.Mask.Count()), float64(c.landscapeCells))
}

// PatchDensity returns patches per unit landscape area.
func (c *Class) PatchDensity() Value {
	return ratio(float64(c.NumPatches), c.LandscapeArea())
}

// EdgeLength returns the total boundary length of the class patches. The
// label grid is zero-padded first, so patch sides on the raster edge count.
func (c *Class) EdgeLength() float64 {
	return float64(c.edges.horizontal+c.edges.vertical) * c.cellSize
}

// EdgeDensity returns EdgeLength per unit landscape area.
func (c *Class) EdgeDensity() Value {
	return ratio(c.EdgeLength(), c.LandscapeArea())
}

// AvgPatchPerimeter is EdgeLength with the mismatch indicators averaged over
// all padded pairs instead of summed.
func (c *Class) AvgPatchPerimeter() float64 {
	w, h := float64(c.Labels.Width), float64(c.Labels.Height)
	mh := float64(c.edges.horizontal) / ((h + 2) * (w + 1))
	mv := float64(c.edges.vertical) / ((h + 1) * (w + 2))
	return (mh + mv) * c.cellSize
}

// PatchArea aggregates per-patch areas: class-mask sums × cellsize² divided
// by the class code. Undefined when the class has no patch.
func (c *Class) PatchArea(s PatchStat) (Value, error) {
	sizes := nonZero(c.patches.weights)
	if len(sizes) == 0 {
		return undefined(), nil
	}
	div, err := c.divisor()
	if err != nil {
		return Value{}, err
	}
	var agg float64
	switch s {
	case PatchMax:
		agg = floats.Max(sizes)
	case PatchMin:
		agg = floats.Min(sizes)
	case PatchMean:
		agg = stat.Mean(sizes, nil)
	case PatchMedian:
		agg = percentile(sizes, 50)
	default:
		return Value{}, fmt.Errorf("patch statistic %d: %w", s, ErrUnknownMetric)
	}
	return defined(agg * c.cellArea / div), nil
}

// LargestPatchIndex is the greatest patch area as a percentage of LandscapeArea.
func (c *Class) LargestPatchIndex() (Value, error) {
	ma, err := c.PatchArea(PatchMax)
	if err != nil || !ma.Defined() {
		return ma, err
	}
	v := ratio(ma.Float, c.LandscapeArea())
	if v.Defined() {
		v.Float *= 100
	}
	return v, nil
}

// FractalDimensionIndex averages 2·ln(0.25·p)/ln(a) over patches, with p the
// padded perimeter length and a the patch area. A one-cell patch at unit cell
// size gives 0/0 and the NaN propagates into the mean.
func (c *Class) FractalDimensionIndex() Value {
	if c.NumPatches == 0 {
		return undefined()
	}
	fdi := make([]float64, c.NumPatches)
	for i := range fdi {
		a := c.patches.cells[i] * c.cellArea
		p := c.patches.perimeter[i] * c.cellSize
		fdi[i] = (2 * math.Log(0.25*p)) / math.Log(a)
	}
	return defined(stat.Mean(fdi, nil))
}

// AvgShapeRatio averages perimeter/area over patches, or with correction
// 0.25·perimeter/√area. Perimeters here are counted without padding and areas
// are class-mask sums, both in cell units.
func (c *Class) AvgShapeRatio(corrected bool) Value {
	d := make([]float64, 0, c.NumPatches)
	for i, a := range c.patches.weights {
		if a == 0 {
			continue
		}
		p := c.patches.inner[i]
		if corrected {
			d = append(d, (0.25*p)/math.Sqrt(a))
		} else {
			d = append(d, p/a)
		}
	}
	if len(d) == 0 {
		return undefined()
	}
	return defined(stat.Mean(d, nil))
}

// CoreArea is the area left after eroding the class with a 3×3 element.
func (c *Class) CoreArea() float64 {
	return float64(c.Mask.Erode().Count()) * c.cellArea
}

// LikeAdjacency is Σinternal / Σ(internal + 2·perimeter) over patches.
func (c *Class) LikeAdjacency() Value {
	internal := floats.Sum(c.patches.internal)
	outer := floats.Sum(c.patches.perimeter)
	return ratio(internal, internal+2*outer)
}

// CohesionIndex returns the patch cohesion index
// (1 − Σinternal/Σ(internal·√cells)) × ((1 − 1/√N)/10) × 100,
// N being every cell of the raster, no-data included.
func (c *Class) CohesionIndex() Value {
	var num, den float64
	for i := 0; i < c.NumPatches; i++ {
		num += c.patches.internal[i]
		den += c.patches.internal[i] * math.Sqrt(c.patches.cells[i])
	}
	if den == 0 {
		return undefined()
	}
	n := float64(c.grid.Len())
	return defined((1 - num/den) * ((1 - 1/math.Sqrt(n)) / 10) * 100)
}

// normalizedAreas returns per-patch class-mask sums divided by the class code.
func (c *Class) normalizedAreas() ([]float64, error) {
	sizes := nonZero(c.patches.weights)
	if len(sizes) == 0 {
		return nil, nil
	}
	div, err := c.divisor()
	if err != nil {
		return nil, err
	}
	floats.Scale(1/div, sizes)
	return sizes, nil
}

// LandscapeDivisionIndex is 1 − Σ(cells_i / landscape cells)².
func (c *Class) LandscapeDivisionIndex() (Value, error) {
	sizes, err := c.normalizedAreas()
	if err != nil {
		return Value{}, err
	}
	if c.landscapeCells == 0 {
		return undefined(), nil
	}
	var sum float64
	for _, s := range sizes {
		r := s / float64(c.landscapeCells)
		sum += r * r
	}
	return defined(1 - sum), nil
}

// SplittingIndex is LandscapeArea² / Σ area_i².
func (c *Class) SplittingIndex() (Value, error) {
	sq, err := c.sumSquaredAreas()
	if err != nil {
		return Value{}, err
	}
	la := c.LandscapeArea()
	return ratio(la*la, sq), nil
}

// EffectiveMeshSize is Σ area_i² / LandscapeArea.
func (c *Class) EffectiveMeshSize() (Value, error) {
	sq, err := c.sumSquaredAreas()
	if err != nil {
		return Value{}, err
	}
	return ratio(sq, c.LandscapeArea()), nil
}

func (c *Class) sumSquaredAreas() (float64, error) {
	sizes, err := c.normalizedAreas()
	if err != nil {
		return 0, err
	}
	var sq float64
	for _, s := range sizes {
		a := s * c.cellArea
		sq += a * a
	}
	return sq, nil
}
