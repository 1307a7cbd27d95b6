// Package plotting renders the training cost curve of a fitted model.
package plotting

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/YuminosukeSato/logreg/linear"
	"github.com/YuminosukeSato/logreg/pkg/errors"
)

// CostCurve builds a line plot of cost against iteration number.
func CostCurve(h linear.History) (*plot.Plot, error) {
	if h.Len() == 0 {
		return nil, errors.NewEmptyDataError("plotting.CostCurve")
	}

	p := plot.New()
	p.Title.Text = "Cost Function vs Iteration"
	p.X.Label.Text = "Number Of Iterations"
	p.Y.Label.Text = "Cost Function"
	p.Add(plotter.NewGrid())

	line, err := plotter.NewLine(h)
	if err != nil {
		return nil, errors.Wrap(err, "plotting.CostCurve: invalid cost history")
	}
	line.LineStyle.Width = vg.Points(1.5)
	p.Add(line)

	return p, nil
}

// SaveCostCurve writes the cost curve to path. The image format is chosen
// from the file extension (.png, .svg, .pdf, ...).
func SaveCostCurve(h linear.History, path string, width, height vg.Length) error {
	p, err := CostCurve(h)
	if err != nil {
		return err
	}
	if err := p.Save(width, height, path); err != nil {
		return errors.Wrapf(err, "plotting.SaveCostCurve: writing %s", path)
	}
	return nil
}
