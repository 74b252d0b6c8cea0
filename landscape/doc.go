// Package landscape computes landscape-ecology metrics over categorical
// rasters: patch statistics, shape and adjacency indices, and diversity.
//
// Overview:
//
//   - A Grid holds integer class codes and one no-data code.
//   - Classify lists the classes present (sorted, no-data excluded).
//   - For a class, Grid.Mask builds the class mask, gridgraph.Label splits it
//     into patches, and Class keeps the per-patch aggregates every metric
//     needs.
//   - Analyzer ties a Grid, a cell size and a class list together and
//     evaluates metrics by catalog name (ComputeMetric) or by typed
//     identifier (Class.Compute, Analyzer.Landscape).
//
// Metrics (catalog names, see ListMetricNames):
//
//   - Cover and density: "Land cover", "Landscape Proportion",
//     "Number of Patches", "Patch density", "Edge length", "Edge density".
//   - Patch area: "Greatest patch area", "Smallest patch area",
//     "Mean patch area", "Median patch area", "Largest Patch Index".
//   - Shape: "Mean patch perimeter", "Fractal Dimension Index",
//     "Mean patch shape ratio", "Mean Shape Index", "Overall Core area".
//   - Aggregation: "Euclidean Nearest-Neighbor Distance", "Like adjacencies",
//     "Patch cohesion index", "Landscape division", "Effective Meshsize",
//     "Splitting Index".
//   - Landscape level: LC_Mean, LC_Min, LC_Sum, LC_Max, LC_SD, LC_LQua,
//     LC_Med, LC_UQua, DIV_SH, DIV_EV, DIV_SI.
//
// Conventions:
//
//   - Edge lengths pad the label grid with background, so the raster border
//     counts as patch boundary.
//   - Patch areas are class-mask sums divided by the class code. Class 0
//     therefore fails with ErrDivisionByZero unless the Analyzer is built with
//     WithClassNormalization(false).
//   - Metrics without a value (no patches, empty denominator) return
//     StatusUndefined; diversity over fewer than two classes returns
//     StatusNotApplicable. Neither is an error.
//   - Unknown metric names answer ("None", 0) with StatusUnknownMetric, or
//     ErrUnknownMetric under WithStrictMetricNames.
//
// Concurrency:
//
//   - Grid and Analyzer are immutable after construction. Each metric call
//     prepares its own Class, so concurrent callers need no locking.
//
// Complexity:
//
//   - Labeling and all per-patch sums: O(W×H).
//   - Euclidean Nearest-Neighbor Distance: O(N²) in class cells.
package landscape
