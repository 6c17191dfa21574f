package main

import (
	"github.com/spf13/cobra"

	"winequality/pkg/report"
)

func newInspectCmd(root *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect",
		Short: "Load the artifacts and show what they contain",
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := setup(cmd, root)
			if err != nil {
				return err
			}
			d := e.store.Describe()
			report.Artifacts(cmd.OutOrStdout(), d.ImputerStrategy, d.ImputerFill, d.ScalerKind, d.ModelKind)
			return nil
		},
	}
}
