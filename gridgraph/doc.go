// Package gridgraph treats a 2D grid of cells as a graph, enabling
// component analysis and connected-component labeling.
//
// What:
//
//   - GridGraph wraps a rectangular [][]int grid with tunable LandThreshold.
//   - Identifies connected components (patches) of cells with value ≥ LandThreshold.
//   - Labels components into a LabelGrid (0 = background, 1..N = patches).
//
// Why:
//
//   - Landscape ecology: patch delineation of land-cover class masks.
//   - Topology analysis: count lakes, islands, and heterogeneous regions.
//
// Complexity:
//
//   - ConnectedComponents: O(W×H×d), Memory: O(W×H)    (d = number of neighbors, 4 or 8).
//   - Label:               O(W×H×d), Memory: O(W×H).
//
// Options:
//
//   - GridOptions.LandThreshold: minimum value considered foreground.
//   - GridOptions.Conn: Conn4 (4-neighbors) or Conn8 (8-neighbors, default).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrBadConnectivity: connectivity is neither Conn4 nor Conn8.
package gridgraph
