package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"winequality/pkg/data"
	"winequality/pkg/pipeline"
	"winequality/pkg/report"
	"winequality/pkg/stats"
)

type batchFlags struct {
	in   string
	out  string
	plot string
}

func newBatchCmd(root *rootFlags) *cobra.Command {
	var bf batchFlags
	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Score every row of a CSV or XLSX file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBatch(cmd, root, &bf)
		},
	}
	f := cmd.Flags()
	f.StringVar(&bf.in, "in", "", "input .csv or .xlsx with a header row (required)")
	f.StringVar(&bf.out, "out", "", "write per-row results to this CSV")
	f.StringVar(&bf.plot, "plot", "", "save a score histogram (.png, .svg or .pdf)")
	_ = cmd.MarkFlagRequired("in")
	return cmd
}

func runBatch(cmd *cobra.Command, root *rootFlags, bf *batchFlags) error {
	tab, err := data.ReadFile(bf.in)
	if err != nil {
		return err
	}
	e, err := setup(cmd, root)
	if err != nil {
		return err
	}
	if len(tab.Ignored) > 0 {
		e.logger.InfoContext(cmd.Context(), "ignoring non-feature columns", slog.Any("columns", tab.Ignored))
	}

	outcomes, err := e.pipe.RunBatch(cmd.Context(), tab.Rows)
	if err != nil {
		return err
	}

	records := make([]data.Record, len(outcomes))
	counts := make(map[string]int)
	var scores []float64
	failed := 0
	for i, o := range outcomes {
		// Row numbers are 1-based data rows, matching spreadsheet line minus header.
		records[i] = data.Record{Row: o.Index + 1, Err: o.Err}
		if o.Err != nil {
			failed++
			continue
		}
		records[i].Score = o.Result.Score
		records[i].Category = string(o.Result.Category)
		counts[string(o.Result.Category)]++
		scores = append(scores, o.Result.Score)
	}

	if bf.out != "" {
		f, err := os.Create(bf.out)
		if err != nil {
			return err
		}
		if err := data.WriteCSV(f, records); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}
	}

	if len(scores) == 0 {
		return fmt.Errorf("none of the %d rows could be scored", len(records))
	}
	summary, err := stats.Summarize(scores)
	if err != nil {
		return err
	}
	report.Summary(cmd.OutOrStdout(), summary, counts, failed)

	if bf.plot != "" {
		if err := report.Histogram(scores, []float64{pipeline.RegularFrom, pipeline.GoodFrom}, bf.plot); err != nil {
			return fmt.Errorf("plot: %w", err)
		}
	}
	return nil
}
