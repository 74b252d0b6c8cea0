package landscape

import "testing"

// TestDispatchComplete fails when a Metric is added without an implementation
// or a catalog name.
func TestDispatchComplete(t *testing.T) {
	seen := make(map[string]bool, metricCount)
	for m := Metric(0); m < metricCount; m++ {
		if dispatch[m] == nil {
			t.Errorf("%d: no dispatch entry", m)
		}
		name := metricNames[m]
		if name == "" {
			t.Errorf("%d: no name", m)
		}
		if seen[name] {
			t.Errorf("%q listed twice", name)
		}
		seen[name] = true
	}
	for m := LandscapeMetric(0); m < landscapeMetricCount; m++ {
		if landscapeMetricNames[m] == "" {
			t.Errorf("landscape metric %d: no name", m)
		}
	}
}

func TestPercentile(t *testing.T) {
	x := []float64{5, 1, 4, 2, 3}
	cases := []struct{ q, want float64 }{
		{0, 1}, {25, 2}, {50, 3}, {75, 4}, {100, 5}, {62.5, 3.5},
	}
	for _, tc := range cases {
		if got := percentile(x, tc.q); got != tc.want {
			t.Errorf("percentile(%v)=%v; want %v", tc.q, got, tc.want)
		}
	}
	if x[0] != 5 {
		t.Error("percentile sorted its input in place")
	}
}
