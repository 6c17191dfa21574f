// winequality predicts a wine quality score from physicochemical measurements.
//
// Usage:
//
//	winequality predict --alcohol=9.4 --ph=3.51 ... [--json] [--lang=es]
//	winequality predict --input wine.json
//	winequality batch --in wines.csv [--out scores.csv] [--plot scores.png]
//	winequality serve [--addr=:8080]
//	winequality inspect
//	winequality version
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// version is set at build time via -ldflags.
var version = "dev"

type rootFlags struct {
	configPath  string
	artifactDir string
	imputer     string
	scaler      string
	model       string
	logLevel    string
	logFormat   string
}

func newRootCmd() *cobra.Command {
	var flags rootFlags
	root := &cobra.Command{
		Use:           "winequality",
		Short:         "Predict wine quality from physicochemical measurements",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
	}

	f := root.PersistentFlags()
	f.StringVar(&flags.configPath, "config", "", "YAML config file")
	f.StringVar(&flags.artifactDir, "artifact-dir", "", "directory holding the artifacts")
	f.StringVar(&flags.imputer, "imputer", "", "imputer artifact (.json, .yaml or .gob)")
	f.StringVar(&flags.scaler, "scaler", "", "scaler artifact (.json, .yaml or .gob)")
	f.StringVar(&flags.model, "model", "", "model artifact (.json, .yaml or .gob)")
	f.StringVar(&flags.logLevel, "log-level", "", "debug, info, warn or error")
	f.StringVar(&flags.logFormat, "log-format", "", "text or json")

	root.AddCommand(
		newPredictCmd(&flags),
		newBatchCmd(&flags),
		newServeCmd(&flags),
		newInspectCmd(&flags),
		newVersionCmd(),
	)
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
