package landscape

import (
	"math"
	"strconv"
)

// Status classifies a metric outcome.
type Status int

const (
	// StatusOK: Float holds the value. NaN is possible where a formula
	// propagates it (e.g. fractal dimension of a one-cell patch).
	StatusOK Status = iota
	// StatusUndefined: the statistic has no value (zero denominator, no patches).
	StatusUndefined
	// StatusNotApplicable: the metric needs more input than the landscape
	// offers (diversity over fewer than two classes).
	StatusNotApplicable
	// StatusUnknownMetric: legacy answer for names outside the catalog.
	StatusUnknownMetric
)

var statusNames = [...]string{"ok", "undefined", "not_applicable", "unknown_metric"}

// String returns the lower-case status name used in exports.
func (s Status) String() string {
	if s < 0 || int(s) >= len(statusNames) {
		return "Status(" + strconv.Itoa(int(s)) + ")"
	}
	return statusNames[s]
}

// Value is a scalar metric outcome.
type Value struct {
	Float  float64
	Status Status
}

// Defined reports whether Float carries a computed number.
func (v Value) Defined() bool {
	return v.Status == StatusOK
}

// Result pairs a metric name with its Value.
type Result struct {
	Name string
	Value
}

// Zero is the substitute value used when a whole unit of work fails.
var Zero = Value{}

func defined(f float64) Value {
	return Value{Float: f}
}

func undefined() Value {
	return Value{Float: math.NaN(), Status: StatusUndefined}
}

func notApplicable() Value {
	return Value{Float: math.NaN(), Status: StatusNotApplicable}
}

// ratio divides num by den, Undefined when den is zero.
func ratio(num, den float64) Value {
	if den == 0 {
		return undefined()
	}
	return defined(num / den)
}
