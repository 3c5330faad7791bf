// SPDX-License-Identifier: MIT
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/prism"
	"github.com/katalvlaran/prism/matrix"
)

// ErrShape indicates an axis, array and type list that do not agree.
var ErrShape = fmt.Errorf("report: shape mismatch: %w", prism.ErrConfiguration)

// Plot size used by SavePlot.
const (
	PlotWidth  = 6 * vg.Inch
	PlotHeight = 4 * vg.Inch
)

// Columns returns the pair labels "A-B" in matrix.PairIndex order.
func Columns(types []string) []string {
	n := len(types)
	cols := make([]string, matrix.PairCount(n))
	for p := range cols {
		i, j := matrix.PairAt(p, n)
		cols[p] = types[i] + "-" + types[j]
	}

	return cols
}

func check(x []float64, a *matrix.Array, types []string) error {
	switch {
	case a == nil:
		return fmt.Errorf("nil array: %w", ErrShape)
	case a.Length() != len(x):
		return fmt.Errorf("axis has %d points, array %d: %w", len(x), a.Length(), ErrShape)
	case a.Rank() != len(types):
		return fmt.Errorf("%d types for rank %d: %w", len(types), a.Rank(), ErrShape)
	}

	return nil
}

// WriteTSV writes a header "axis A-A A-B ..." and one row per grid point.
func WriteTSV(w io.Writer, axis string, x []float64, a *matrix.Array, types []string) error {
	if err := check(x, a, types); err != nil {
		return err
	}
	out := csv.NewWriter(w)
	out.Comma = '\t'

	if err := out.Write(append([]string{axis}, Columns(types)...)); err != nil {
		return err
	}
	channels := make([][]float64, a.Pairs())
	for p := range channels {
		channels[p], _ = a.ChannelAt(p)
	}
	row := make([]string, len(channels)+1)
	for i, xi := range x {
		row[0] = strconv.FormatFloat(xi, 'g', 10, 64)
		for p, ch := range channels {
			row[p+1] = strconv.FormatFloat(ch[i], 'g', 10, 64)
		}
		if err := out.Write(row); err != nil {
			return err
		}
	}
	out.Flush()

	return out.Error()
}

// Plot draws one line per pair. Non-finite points, such as an infinite
// potential of mean force inside the core, are dropped.
func Plot(title, xLabel, yLabel string, x []float64, a *matrix.Array, types []string) (*plot.Plot, error) {
	if err := check(x, a, types); err != nil {
		return nil, err
	}
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel

	var lines []interface{}
	for i, label := range Columns(types) {
		ch, _ := a.ChannelAt(i)
		pts := make(plotter.XYs, 0, len(x))
		for k, xk := range x {
			if math.IsNaN(ch[k]) || math.IsInf(ch[k], 0) {
				continue
			}
			pts = append(pts, plotter.XY{X: xk, Y: ch[k]})
		}
		if len(pts) == 0 {
			continue
		}
		lines = append(lines, label, pts)
	}
	if err := plotutil.AddLines(p, lines...); err != nil {
		return nil, err
	}

	return p, nil
}

// SavePlot writes p to path; the extension picks the format (.png, .svg, .pdf).
func SavePlot(p *plot.Plot, path string) error {
	return p.Save(PlotWidth, PlotHeight, path)
}

// PlotPairs draws and saves a plot with the y axis labelled by title.
func PlotPairs(path, title string, x []float64, a *matrix.Array, types []string) error {
	p, err := Plot(title, "", title, x, a, types)
	if err != nil {
		return err
	}

	return SavePlot(p, path)
}
