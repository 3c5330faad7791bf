// SPDX-License-Identifier: MIT
package report_test

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/prism/matrix"
	"github.com/katalvlaran/prism/report"
)

func sample(t *testing.T) ([]float64, *matrix.Array) {
	t.Helper()
	a, err := matrix.NewArray(3, 2, matrix.Real)
	require.NoError(t, err)
	require.NoError(t, a.SetChannel(0, 0, []float64{1, 2, 3}))
	require.NoError(t, a.SetChannel(0, 1, []float64{4, 5, 6}))
	require.NoError(t, a.SetChannel(1, 1, []float64{math.Inf(1), 8, 9}))

	return []float64{0.1, 0.2, 0.3}, a
}

// TestColumns checks pair order.
func TestColumns(t *testing.T) {
	assert.Equal(t, []string{"A-A", "A-B", "B-B"}, report.Columns([]string{"A", "B"}))
}

// TestWriteTSV checks header, values and shape errors.
func TestWriteTSV(t *testing.T) {
	x, a := sample(t)
	var buf bytes.Buffer
	require.NoError(t, report.WriteTSV(&buf, "r", x, a, []string{"A", "B"}))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "r\tA-A\tA-B\tB-B", lines[0])
	assert.Equal(t, "0.1\t1\t4\t+Inf", lines[1])
	assert.Equal(t, "0.3\t3\t6\t9", lines[3])

	assert.ErrorIs(t, report.WriteTSV(&buf, "r", x[:2], a, []string{"A", "B"}), report.ErrShape)
	assert.ErrorIs(t, report.WriteTSV(&buf, "r", x, a, []string{"A"}), report.ErrShape)
	assert.ErrorIs(t, report.WriteTSV(&buf, "r", x, nil, nil), report.ErrShape)
}

// TestPlot saves PNG and SVG renderings.
func TestPlot(t *testing.T) {
	x, a := sample(t)
	p, err := report.Plot("g(r)", "r", "g", x, a, []string{"A", "B"})
	require.NoError(t, err)
	assert.Equal(t, "g(r)", p.Title.Text)

	dir := t.TempDir()
	for _, name := range []string{"gr.png", "gr.svg"} {
		path := filepath.Join(dir, name)
		require.NoError(t, report.SavePlot(p, path))
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Positive(t, info.Size())
	}

	_, err = report.Plot("", "", "", x[:1], a, []string{"A", "B"})
	assert.ErrorIs(t, err, report.ErrShape)

	path := filepath.Join(dir, "pairs.pdf")
	require.NoError(t, report.PlotPairs(path, "h(r)", x, a, []string{"A", "B"}))
	assert.FileExists(t, path)
	assert.ErrorIs(t, report.PlotPairs(path, "h(r)", x, a, []string{"A"}), report.ErrShape)
}
