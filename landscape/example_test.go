package landscape_test

import (
	"fmt"

	"github.com/katalvlaran/landmetrics/landscape"
)

// ExampleAnalyzer_ComputeMetric classifies a small tile and reports a few
// class metrics at 30 m resolution.
//
//	255 255 255 255 255
//	255  1   1   2  255
//	255  1   1   2  255
//	255  2   2   2  255
//	255 255 255 255 255
func ExampleAnalyzer_ComputeMetric() {
	g, _ := landscape.NewGrid([][]int{
		{255, 255, 255, 255, 255},
		{255, 1, 1, 2, 255},
		{255, 1, 1, 2, 255},
		{255, 2, 2, 2, 255},
		{255, 255, 255, 255, 255},
	}, 255)
	a, _ := landscape.NewAnalyzer(g, 30, nil)
	fmt.Println("classes:", a.Classes())

	for _, name := range []string{"Land cover", "Edge length", "Number of Patches", "Largest Patch Index"} {
		r, _ := a.ComputeMetric(name, 1)
		fmt.Printf("%s: %.2f\n", r.Name, r.Float)
	}
	// Output:
	// classes: [1 2]
	// Land cover: 3600.00
	// Edge length: 240.00
	// Number of Patches: 1.00
	// Largest Patch Index: 44.44
}

// ExampleAnalyzer_Diversity shows the single-class case.
func ExampleAnalyzer_Diversity() {
	mixed, _ := landscape.NewGrid([][]int{{1, 1}, {2, 3}}, 0)
	a, _ := landscape.NewAnalyzer(mixed, 1, nil)
	fmt.Printf("simpson: %.3f\n", a.Diversity(landscape.Simpson).Float)

	uniform, _ := landscape.NewGrid([][]int{{1, 1}, {1, 1}}, 0)
	b, _ := landscape.NewAnalyzer(uniform, 1, nil)
	fmt.Println("simpson:", b.Diversity(landscape.Simpson).Status)
	// Output:
	// simpson: 0.625
	// simpson: not_applicable
}
