package landscape

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/stat"
)

// DiversityIndex selects a landscape diversity formula.
type DiversityIndex int

const (
	// Shannon: −Σ p·ln(p).
	Shannon DiversityIndex = iota
	// Simpson: 1 − Σ p².
	Simpson
	// Evenness: Shannon / ln(number of classes).
	Evenness
)

// String returns the lower-case index name.
func (d DiversityIndex) String() string {
	switch d {
	case Shannon:
		return "shannon"
	case Simpson:
		return "simpson"
	case Evenness:
		return "evenness"
	default:
		return fmt.Sprintf("DiversityIndex(%d)", int(d))
	}
}

// ParseDiversityIndex accepts "shannon", "simpson" and "evenness"
// (also the historical spelling "eveness"), case-insensitively.
func ParseDiversityIndex(s string) (DiversityIndex, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "shannon":
		return Shannon, nil
	case "simpson":
		return Simpson, nil
	case "evenness", "eveness":
		return Evenness, nil
	}
	return 0, fmt.Errorf("diversity index %q: %w", s, ErrUnknownMetric)
}

// Diversity computes the requested index over class proportions of the
// whole grid. With fewer than two classes the index is not applicable: the
// result carries StatusNotApplicable and a warning is logged.
func (a *Analyzer) Diversity(index DiversityIndex) Value {
	k := len(a.classes)
	if k < 2 {
		a.opts.logger.Printf("landscape: diversity %s needs at least two land-cover classes, got %d", index, k)
		return notApplicable()
	}

	p := make([]float64, k)
	var total float64
	for i, cl := range a.classes {
		p[i] = float64(a.grid.CountClass(cl))
		total += p[i]
	}
	if total == 0 {
		return undefined()
	}
	for i := range p {
		p[i] /= total
	}

	switch index {
	case Shannon:
		return defined(stat.Entropy(p))
	case Simpson:
		var sq float64
		for _, v := range p {
			sq += v * v
		}
		return defined(1 - sq)
	case Evenness:
		return defined(stat.Entropy(p) / math.Log(float64(k)))
	default:
		return undefined()
	}
}
