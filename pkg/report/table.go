package report

import (
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"winequality/pkg/features"
	"winequality/pkg/stats"
)

func newTable(w io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	return t
}

// Prediction renders one score and its label.
func Prediction(w io.Writer, score float64, label string, imputed []string) {
	t := newTable(w)
	t.AppendHeader(table.Row{"Score", "Category"})
	t.AppendRow(table.Row{score, label})
	if len(imputed) > 0 {
		t.AppendFooter(table.Row{"Imputed", len(imputed)})
	}
	t.Render()
}

// Summary renders batch statistics and per-category counts.
func Summary(w io.Writer, s stats.Summary, counts map[string]int, failed int) {
	t := newTable(w)
	t.AppendHeader(table.Row{"Metric", "Value"})
	t.AppendRows([]table.Row{
		{"rows scored", s.Count},
		{"rows failed", failed},
		{"mean", s.Mean},
		{"median", s.Median},
		{"std dev", s.StdDev},
		{"min", s.Min},
		{"max", s.Max},
		{"p10", s.P10},
		{"p90", s.P90},
	})
	t.AppendSeparator()
	for _, c := range []string{"Bad", "Regular", "Good"} {
		t.AppendRow(table.Row{c, counts[c]})
	}
	t.Render()
}

// Artifacts renders the imputer fill values per feature alongside the loaded kinds.
func Artifacts(w io.Writer, strategy string, fill []float64, scaler, model string) {
	t := newTable(w)
	t.SetTitle("imputer: %s | scaler: %s | model: %s", strategy, scaler, model)
	t.AppendHeader(table.Row{"#", "Feature", "Fill value"})
	for i, name := range features.Wine.FeatureNames {
		var v any = "-"
		if i < len(fill) {
			v = fill[i]
		}
		t.AppendRow(table.Row{i + 1, name, v})
	}
	t.Render()
}
