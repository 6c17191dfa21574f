package report

import (
	"errors"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Histogram saves the distribution of scores with the category thresholds
// drawn as dashed lines. The image format follows filename's extension.
func Histogram(scores []float64, thresholds []float64, filename string) error {
	if len(scores) == 0 {
		return errors.New("no scores to plot")
	}
	p := plot.New()
	p.Title.Text = "Predicted wine quality"
	p.X.Label.Text = "Score"
	p.Y.Label.Text = "Wines"

	h, err := plotter.NewHist(plotter.Values(scores), bins(len(scores)))
	if err != nil {
		return err
	}
	h.FillColor = color.RGBA{R: 128, G: 0, B: 32, A: 200}
	p.Add(h)

	var top float64
	for _, b := range h.Bins {
		top = max(top, b.Weight)
	}
	for _, x := range thresholds {
		l, err := plotter.NewLine(plotter.XYs{{X: x, Y: 0}, {X: x, Y: top}})
		if err != nil {
			return err
		}
		l.Color = color.Gray{Y: 80}
		l.Dashes = []vg.Length{vg.Points(4), vg.Points(3)}
		p.Add(l)
	}

	return p.Save(6*vg.Inch, 4*vg.Inch, filename)
}

func bins(n int) int {
	switch {
	case n < 10:
		return 5
	case n > 400:
		return 40
	default:
		return n / 10
	}
}
