package landscape_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/landmetrics/landscape"
)

// randomGrid fills an n×n grid with k classes and ~5% no-data.
func randomGrid(b *testing.B, n, k int) *landscape.Grid {
	b.Helper()
	rng := rand.New(rand.NewSource(42))
	values := make([][]int, n)
	for y := range values {
		values[y] = make([]int, n)
		for x := range values[y] {
			if rng.Intn(20) == 0 {
				values[y][x] = nodata
				continue
			}
			values[y][x] = 1 + rng.Intn(k)
		}
	}
	return mustGrid(b, values, nodata)
}

func BenchmarkPrepare(b *testing.B) {
	a, err := landscape.NewAnalyzer(randomGrid(b, 256, 4), 30, nil)
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := a.Prepare(1); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkComputeMetrics skips the O(N²) nearest-neighbour metric.
func BenchmarkComputeMetrics(b *testing.B) {
	a, err := landscape.NewAnalyzer(randomGrid(b, 256, 4), 30, nil)
	if err != nil {
		b.Fatal(err)
	}
	var metrics []landscape.Metric
	for _, m := range landscape.Metrics() {
		if m != landscape.MetricNearestNeighbor {
			metrics = append(metrics, m)
		}
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := a.ComputeMetrics(2, metrics...); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkNearestNeighborDistance(b *testing.B) {
	a, err := landscape.NewAnalyzer(randomGrid(b, 48, 6), 30, nil)
	if err != nil {
		b.Fatal(err)
	}
	c, err := a.Prepare(3)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.NearestNeighborDistance()
	}
}
