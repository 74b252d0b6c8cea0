package main

import (
	"bytes"
	"context"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tileASCII = `NCOLS 5
NROWS 5
XLLCORNER 0
YLLCORNER 0
CELLSIZE 30
NODATA_VALUE 255
255 255 255 255 255
255 1 1 2 255
255 1 1 2 255
255 2 2 2 255
255 255 255 255 255
`

var quiet = log.New(io.Discard, "", 0)

func writeTile(t *testing.T, dir, name string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(tileASCII), 0o644))
	return p
}

func defaults() analysisFlags { return analysisFlags{conn: 8} }

func TestRunMetrics(t *testing.T) {
	p := writeTile(t, t.TempDir(), "t1.asc")
	var out bytes.Buffer
	require.NoError(t, runMetrics(&out, quiet, p, defaults(), []int{1}, []string{"Land cover", "Edge length"}, false, ";"))
	assert.Equal(t, "tile_id;class;Land cover;Edge length\nt1;1;3600;240\n", out.String())
}

func TestRunMetrics_UnknownName(t *testing.T) {
	p := writeTile(t, t.TempDir(), "t1.asc")
	var out bytes.Buffer
	require.NoError(t, runMetrics(&out, quiet, p, defaults(), []int{1}, []string{"Richness"}, false, ";"))
	assert.Contains(t, out.String(), "None")

	err := runMetrics(&out, quiet, p, defaults(), []int{1}, []string{"Richness"}, true, ";")
	assert.Error(t, err)
}

func TestRunMetrics_AllClasses(t *testing.T) {
	p := writeTile(t, t.TempDir(), "t1.asc")
	var out bytes.Buffer
	require.NoError(t, runMetrics(&out, quiet, p, defaults(), nil, nil, false, ","))
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[1], "t1,1,3600,"))
	assert.True(t, strings.HasPrefix(lines[2], "t1,2,4500,"))
}

func TestRunLandscape(t *testing.T) {
	p := writeTile(t, t.TempDir(), "t1.asc")
	var out bytes.Buffer
	require.NoError(t, runLandscape(&out, quiet, p, defaults(), ";"))
	assert.True(t, strings.HasPrefix(out.String(), "tile_id;LC_Mean;LC_Min;LC_Sum;"))
	assert.Contains(t, out.String(), "t1;")
}

func TestRunList(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, runList(&out))
	assert.Contains(t, out.String(), "Euclidean Nearest-Neighbor Distance")
	assert.Contains(t, out.String(), "DIV_EV")
}

func TestRunNeighbours(t *testing.T) {
	p := writeTile(t, t.TempDir(), "t1.asc")
	var out bytes.Buffer
	require.NoError(t, runNeighbours(&out, p, defaults()))
	assert.Contains(t, out.String(), "classes: [1 2]")
	assert.Contains(t, out.String(), "12")
}

func TestRunBatch(t *testing.T) {
	dir := t.TempDir()
	writeTile(t, dir, "1.asc")
	writeTile(t, dir, "2.asc")
	csvPath := filepath.Join(dir, "out.csv")
	cfg := "tiles: {ids: ['2', '1', '3']}\n" +
		"raster: " + filepath.Join(dir, "{id}.asc") + "\n" +
		"classes: [1]\n" +
		"metrics: [Land cover]\n" +
		"workers: 2\n" +
		"output:\n  csv: " + csvPath + "\n" +
		"  database: {driver: sqlite, dsn: " + filepath.Join(dir, "r.db") + "}\n"
	cfgPath := filepath.Join(dir, "run.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfg), 0o644))

	require.NoError(t, runBatch(context.Background(), quiet, cfgPath))
	b, err := os.ReadFile(csvPath)
	require.NoError(t, err)
	assert.Equal(t, "tile_id;class;Land cover\n1;1;3600\n2;1;3600\n3;1;0\n", string(b))
}
