package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"winequality/pkg/data"
	"winequality/pkg/features"
	"winequality/pkg/report"
)

type predictFlags struct {
	input  string
	asJSON bool
	lang   string
	values map[string]*string
}

// flagName turns "free sulfur dioxide" into "free-sulfur-dioxide".
func flagName(feature string) string {
	return strings.ToLower(strings.ReplaceAll(feature, " ", "-"))
}

func newPredictCmd(root *rootFlags) *cobra.Command {
	pf := predictFlags{values: make(map[string]*string, features.NumFeatures)}
	cmd := &cobra.Command{
		Use:   "predict",
		Short: "Score one wine; omitted measurements are imputed",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPredict(cmd, root, &pf)
		},
	}

	f := cmd.Flags()
	f.StringVar(&pf.input, "input", "", "JSON file with feature values (overrides per-feature flags)")
	f.BoolVar(&pf.asJSON, "json", false, "print the result as JSON")
	f.StringVar(&pf.lang, "lang", "en", "category label language (en or es)")
	for _, name := range features.Wine.FeatureNames {
		pf.values[name] = f.String(flagName(name), "", name)
	}
	return cmd
}

func runPredict(cmd *cobra.Command, root *rootFlags, pf *predictFlags) error {
	raw, err := collectInput(cmd, pf)
	if err != nil {
		return err
	}

	e, err := setup(cmd, root)
	if err != nil {
		return err
	}
	res, err := e.pipe.Run(cmd.Context(), raw)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if pf.asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(struct {
			Score    float64  `json:"score"`
			Category string   `json:"category"`
			Label    string   `json:"label"`
			Imputed  []string `json:"imputed,omitempty"`
		}{res.Score, string(res.Category), res.Category.Label(pf.lang), res.Imputed})
	}
	report.Prediction(out, res.Score, res.Category.Label(pf.lang), res.Imputed)
	return nil
}

func collectInput(cmd *cobra.Command, pf *predictFlags) (features.RawInput, error) {
	if pf.input != "" {
		f, err := os.Open(pf.input)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return data.ReadJSON(f)
	}
	raw := make(features.RawInput)
	for name, v := range pf.values {
		if cmd.Flags().Changed(flagName(name)) {
			raw[name] = *v
		}
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("no measurements given; set at least one of --%s ... or --input", flagName(features.Wine.FeatureNames[0]))
	}
	return raw, nil
}
