// Package plotting renders diagnostic plots for fitted regression models
// through gonum's plot package. The regression core only ever hands over
// plain float slices; everything about rendering lives here.
package plotting

import (
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/YuminosukeSato/esol/pkg/errors"
)

// Parity builds a predicted-versus-measured scatter plot with the y = x
// identity line as reference. A perfect model puts every point on the line.
func Parity(measured, predicted []float64) (*plot.Plot, error) {
	n := len(measured)
	if n == 0 {
		return nil, errors.NewValueError("plotting.Parity", "empty input")
	}
	if len(predicted) != n {
		return nil, errors.NewDimensionError("plotting.Parity", n, len(predicted), 0)
	}

	pts := make(plotter.XYs, n)
	lo, hi := math.Inf(1), math.Inf(-1)
	for i := 0; i < n; i++ {
		pts[i].X = measured[i]
		pts[i].Y = predicted[i]
		lo = math.Min(lo, math.Min(measured[i], predicted[i]))
		hi = math.Max(hi, math.Max(measured[i], predicted[i]))
	}

	p := plot.New()
	p.Title.Text = "Predicted vs Measured"
	p.X.Label.Text = "Measured"
	p.Y.Label.Text = "Predicted"

	scatter, err := plotter.NewScatter(pts)
	if err != nil {
		return nil, errors.Wrap(err, "plotting.Parity: scatter")
	}

	identity, err := plotter.NewLine(plotter.XYs{{X: lo, Y: lo}, {X: hi, Y: hi}})
	if err != nil {
		return nil, errors.Wrap(err, "plotting.Parity: identity line")
	}

	p.Add(scatter, identity)
	p.Legend.Add("y = x", identity)

	return p, nil
}

// SaveParity renders the parity plot to path. The image format follows the
// file extension (.png, .svg, .pdf, ...).
func SaveParity(measured, predicted []float64, path string) error {
	p, err := Parity(measured, predicted)
	if err != nil {
		return err
	}
	if err := p.Save(5*vg.Inch, 5*vg.Inch, path); err != nil {
		return errors.Wrapf(err, "plotting.SaveParity: %s", path)
	}
	return nil
}
