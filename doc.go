// Package landmetrics computes landscape-ecology metrics from categorical
// rasters: where are the patches of each land-cover class, how big, how
// fragmented, how far apart, and how diverse is the landscape as a whole.
//
// Packages:
//
//	gridgraph/  a 2D grid seen as a graph; connected-component labeling (Conn4/Conn8)
//	landscape/  Grid, class masks, per-class metrics, diversity, summary statistics
//	raster/     georeferenced rasters (ASCII grid, GeoTIFF, ...) and class images
//	vector/     tile ids from an ESRI shapefile
//	batch/      bounded worker pool over tiles with per-tile failure isolation
//	export/     ';'-separated tables and a SQL store (sqlite, postgres)
//	config/     YAML batch configuration
//	cmd/landmetrics command-line front end
//
// Quick example:
//
//	g, _ := landscape.NewGrid([][]int{
//		{1, 1, 0},
//		{0, 1, 2},
//	}, 255)
//	a, _ := landscape.NewAnalyzer(g, 30, nil)
//	r, _ := a.ComputeMetric("Edge length", 1)
//	fmt.Println(r.Name, r.Float)
//
// Pure Go throughout: image decoding, shapefiles and sqlite need no cgo.
package landmetrics
