package landscape

import "fmt"

// Metric identifies one per-class statistic of the catalog.
type Metric int

// Catalog order. ListMetricNames reports names in this order.
const (
	MetricLandCover Metric = iota
	MetricProportion
	MetricEdgeLength
	MetricEdgeDensity
	MetricNumPatches
	MetricPatchDensity
	MetricGreatestPatchArea
	MetricSmallestPatchArea
	MetricMeanPatchArea
	MetricMedianPatchArea
	MetricLargestPatchIndex
	MetricNearestNeighbor
	MetricMeanPatchPerimeter
	MetricFractalDimension
	MetricShapeRatio
	MetricShapeIndex
	MetricCoreArea
	MetricLikeAdjacencies
	MetricCohesion
	MetricDivision
	MetricMeshSize
	MetricSplitting

	metricCount
)

// UnknownMetricName is the legacy result name for a metric outside the catalog.
const UnknownMetricName = "None"

var metricNames = [metricCount]string{
	MetricLandCover:          "Land cover",
	MetricProportion:         "Landscape Proportion",
	MetricEdgeLength:         "Edge length",
	MetricEdgeDensity:        "Edge density",
	MetricNumPatches:         "Number of Patches",
	MetricPatchDensity:       "Patch density",
	MetricGreatestPatchArea:  "Greatest patch area",
	MetricSmallestPatchArea:  "Smallest patch area",
	MetricMeanPatchArea:      "Mean patch area",
	MetricMedianPatchArea:    "Median patch area",
	MetricLargestPatchIndex:  "Largest Patch Index",
	MetricNearestNeighbor:    "Euclidean Nearest-Neighbor Distance",
	MetricMeanPatchPerimeter: "Mean patch perimeter",
	MetricFractalDimension:   "Fractal Dimension Index",
	MetricShapeRatio:         "Mean patch shape ratio",
	MetricShapeIndex:         "Mean Shape Index",
	MetricCoreArea:           "Overall Core area",
	MetricLikeAdjacencies:    "Like adjacencies",
	MetricCohesion:           "Patch cohesion index",
	MetricDivision:           "Landscape division",
	MetricMeshSize:           "Effective Meshsize",
	MetricSplitting:          "Splitting Index",
}

// metricFunc computes one metric on prepared class state.
type metricFunc func(c *Class) (Value, error)

func plain(f func(c *Class) Value) metricFunc {
	return func(c *Class) (Value, error) { return f(c), nil }
}

func scalar(f func(c *Class) float64) metricFunc {
	return func(c *Class) (Value, error) { return defined(f(c)), nil }
}

func patchArea(s PatchStat) metricFunc {
	return func(c *Class) (Value, error) { return c.PatchArea(s) }
}

// dispatch maps every Metric to its implementation. Tests assert there is no gap.
var dispatch = [metricCount]metricFunc{
	MetricLandCover:          scalar((*Class).Area),
	MetricProportion:         plain((*Class).Proportion),
	MetricEdgeLength:         scalar((*Class).EdgeLength),
	MetricEdgeDensity:        plain((*Class).EdgeDensity),
	MetricNumPatches:         scalar(func(c *Class) float64 { return float64(c.NumPatches) }),
	MetricPatchDensity:       plain((*Class).PatchDensity),
	MetricGreatestPatchArea:  patchArea(PatchMax),
	MetricSmallestPatchArea:  patchArea(PatchMin),
	MetricMeanPatchArea:      patchArea(PatchMean),
	MetricMedianPatchArea:    patchArea(PatchMedian),
	MetricLargestPatchIndex:  (*Class).LargestPatchIndex,
	MetricNearestNeighbor:    plain((*Class).NearestNeighborDistance),
	MetricMeanPatchPerimeter: scalar((*Class).AvgPatchPerimeter),
	MetricFractalDimension:   plain((*Class).FractalDimensionIndex),
	MetricShapeRatio:         plain(func(c *Class) Value { return c.AvgShapeRatio(false) }),
	MetricShapeIndex:         plain(func(c *Class) Value { return c.AvgShapeRatio(true) }),
	MetricCoreArea:           scalar((*Class).CoreArea),
	MetricLikeAdjacencies:    plain((*Class).LikeAdjacency),
	MetricCohesion:           plain((*Class).CohesionIndex),
	MetricDivision:           (*Class).LandscapeDivisionIndex,
	MetricMeshSize:           (*Class).EffectiveMeshSize,
	MetricSplitting:          (*Class).SplittingIndex,
}

// String returns the catalog name, e.g. "Edge density".
func (m Metric) String() string {
	if m < 0 || m >= metricCount {
		return fmt.Sprintf("Metric(%d)", int(m))
	}
	return metricNames[m]
}

// Valid reports whether m is part of the catalog.
func (m Metric) Valid() bool {
	return m >= 0 && m < metricCount
}

// ParseMetric maps a catalog name to its Metric. Matching is exact.
func ParseMetric(name string) (Metric, bool) {
	for i, n := range metricNames {
		if n == name {
			return Metric(i), true
		}
	}
	return 0, false
}

// Metrics returns the whole catalog in order.
func Metrics() []Metric {
	out := make([]Metric, metricCount)
	for i := range out {
		out[i] = Metric(i)
	}
	return out
}

// ListMetricNames returns the catalog names in order.
func ListMetricNames() []string {
	return append([]string(nil), metricNames[:]...)
}

// Compute evaluates m on prepared class state.
func (c *Class) Compute(m Metric) (Result, error) {
	if !m.Valid() {
		return Result{}, fmt.Errorf("%v: %w", m, ErrUnknownMetric)
	}
	v, err := dispatch[m](c)
	if err != nil {
		return Result{}, fmt.Errorf("%s (class %d): %w", m, c.Code, err)
	}
	return Result{Name: m.String(), Value: v}, nil
}
