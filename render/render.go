// Package render draws analysis results with gonum/plot.
package render

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/leonjayakusuma/NumIntViz/convergence"
	"github.com/leonjayakusuma/NumIntViz/gonumExtensions"
	"github.com/leonjayakusuma/NumIntViz/quadrature"
	"github.com/leonjayakusuma/NumIntViz/signal"
)

// CurveSamples is the number of points used to draw the integrand.
const CurveSamples = 200

// ErrNothingToPlot is returned when no point survives the filtering of a
// logarithmic plot.
var ErrNothingToPlot = errors.New("render: nothing to plot")

// Convergence draws the absolute error against the discretization size of
// every series on log-log axes. Points with a non-positive size or a
// non-finite error are left out.
func Convergence(series []convergence.Series, title string) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "n"
	p.Y.Label.Text = "absolute error"
	p.X.Scale = plot.LogScale{}
	p.Y.Scale = plot.LogScale{}
	p.X.Tick.Marker = plot.LogTicks{Prec: -1}
	p.Y.Tick.Marker = plot.LogTicks{Prec: -1}
	p.Legend.Top = true

	var lines []interface{}
	for _, s := range series {
		pts := make(plotter.XYs, 0, s.Len())
		for index, n := range s.Sizes {
			e := s.Errors[index]
			if n <= 0 || gonumExtensions.NonFinite(e) || e <= 0 {
				continue
			}
			pts = append(pts, plotter.XY{X: float64(n), Y: e})
		}
		if len(pts) == 0 {
			continue
		}
		lines = append(lines, s.Rule.String(), pts)
	}
	if len(lines) == 0 {
		return nil, ErrNothingToPlot
	}
	if err := plotutil.AddLinePoints(p, lines...); err != nil {
		return nil, fmt.Errorf("failed to add convergence lines: %w", err)
	}
	return p, nil
}

// Samples draws f over [a, b] together with the points res sampled.
func Samples(f signal.Signal, a, b float64, res quadrature.Result, method string) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = method
	p.X.Label.Text = "x"
	p.Y.Label.Text = "f(x)"
	p.Legend.Top = true

	x := gonumExtensions.Linspace(CurveSamples, math.Min(a, b), math.Max(a, b))
	curve, err := plotter.NewLine(finite(x, f.Values(x)))
	if err != nil {
		return nil, fmt.Errorf("failed to draw function: %w", err)
	}
	p.Add(curve)
	p.Legend.Add("f(x)", curve)

	if res.Evaluated() {
		points, err := plotter.NewScatter(finite(res.X, res.Y))
		if err != nil {
			return nil, fmt.Errorf("failed to draw samples: %w", err)
		}
		points.Color = plotutil.Color(1)
		points.Shape = plotutil.Shape(0)
		p.Add(points)
		p.Legend.Add(fmt.Sprintf("samples (%d)", len(res.X)), points)
	}
	return p, nil
}

// Save writes p to path. The format follows the file extension.
func Save(p *plot.Plot, width, height float64, path string) error {
	if err := p.Save(vg.Length(width)*vg.Inch, vg.Length(height)*vg.Inch, path); err != nil {
		return fmt.Errorf("failed to save plot: %w", err)
	}
	return nil
}

func finite(x, y []float64) plotter.XYs {
	pts := make(plotter.XYs, 0, len(x))
	for index := range x {
		if gonumExtensions.NonFinite(x[index], y[index]) {
			continue
		}
		pts = append(pts, plotter.XY{X: x[index], Y: y[index]})
	}
	return pts
}
