package landscape

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// LandscapeMetric identifies a class-independent landscape statistic.
type LandscapeMetric int

const (
	LandMean LandscapeMetric = iota
	LandMin
	LandSum
	LandMax
	LandStdDev
	LandLowerQuartile
	LandMedian
	LandUpperQuartile
	LandShannon
	LandEvenness
	LandSimpson

	landscapeMetricCount
)

var landscapeMetricNames = [landscapeMetricCount]string{
	LandMean:          "LC_Mean",
	LandMin:           "LC_Min",
	LandSum:           "LC_Sum",
	LandMax:           "LC_Max",
	LandStdDev:        "LC_SD",
	LandLowerQuartile: "LC_LQua",
	LandMedian:        "LC_Med",
	LandUpperQuartile: "LC_UQua",
	LandShannon:       "DIV_SH",
	LandEvenness:      "DIV_EV",
	LandSimpson:       "DIV_SI",
}

// String returns the metric identifier, e.g. "LC_Mean".
func (m LandscapeMetric) String() string {
	if m < 0 || m >= landscapeMetricCount {
		return fmt.Sprintf("LandscapeMetric(%d)", int(m))
	}
	return landscapeMetricNames[m]
}

// ParseLandscapeMetric maps an identifier back to its LandscapeMetric.
func ParseLandscapeMetric(name string) (LandscapeMetric, bool) {
	for i, n := range landscapeMetricNames {
		if n == name {
			return LandscapeMetric(i), true
		}
	}
	return 0, false
}

// LandscapeMetrics lists every landscape statistic in catalog order.
func LandscapeMetrics() []LandscapeMetric {
	out := make([]LandscapeMetric, landscapeMetricCount)
	for i := range out {
		out[i] = LandscapeMetric(i)
	}
	return out
}

// LandscapeMetricNames lists the identifiers of LandscapeMetrics.
func LandscapeMetricNames() []string {
	return append([]string(nil), landscapeMetricNames[:]...)
}

// summarize computes m over the non-no-data cell values.
func (a *Analyzer) summarize(m LandscapeMetric) Value {
	switch m {
	case LandShannon:
		return a.Diversity(Shannon)
	case LandEvenness:
		return a.Diversity(Evenness)
	case LandSimpson:
		return a.Diversity(Simpson)
	}

	vals := a.grid.Values()
	if len(vals) == 0 {
		return undefined()
	}
	switch m {
	case LandMean:
		return defined(stat.Mean(vals, nil))
	case LandMin:
		return defined(floats.Min(vals))
	case LandSum:
		return defined(floats.Sum(vals))
	case LandMax:
		return defined(floats.Max(vals))
	case LandStdDev:
		return defined(stat.PopStdDev(vals, nil))
	case LandLowerQuartile:
		return defined(percentile(vals, 25))
	case LandMedian:
		return defined(percentile(vals, 50))
	case LandUpperQuartile:
		return defined(percentile(vals, 75))
	default:
		return undefined()
	}
}

// percentile returns the q-th percentile (0..100) of x with linear
// interpolation between the two closest ranks at (n−1)·q/100. x is not
// modified.
func percentile(x []float64, q float64) float64 {
	s := append([]float64(nil), x...)
	sort.Float64s(s)
	rank := q / 100 * float64(len(s)-1)
	lo := int(math.Floor(rank))
	hi := int(math.Ceil(rank))
	return s[lo] + (s[hi]-s[lo])*(rank-float64(lo))
}
