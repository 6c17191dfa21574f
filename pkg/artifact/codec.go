package artifact

import (
	"encoding/gob"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"winequality/pkg/dataprep"
	"winequality/pkg/features"
	"winequality/pkg/model"
	"winequality/pkg/stats"
)

// Envelope is the on-disk shape shared by all three artifacts. Only the
// fields relevant to Kind are set.
type Envelope struct {
	Kind     string   `json:"kind" yaml:"kind"`
	Features []string `json:"features,omitempty" yaml:"features,omitempty"`

	// imputer
	Strategy   string    `json:"strategy,omitempty" yaml:"strategy,omitempty"`
	Statistics []float64 `json:"statistics,omitempty" yaml:"statistics,omitempty"`

	// scalers
	Mean   []float64 `json:"mean,omitempty" yaml:"mean,omitempty"`
	Scale  []float64 `json:"scale,omitempty" yaml:"scale,omitempty"`
	Min    []float64 `json:"min,omitempty" yaml:"min,omitempty"`
	Center []float64 `json:"center,omitempty" yaml:"center,omitempty"`

	// models
	Coef      []float64               `json:"coef,omitempty" yaml:"coef,omitempty"`
	Intercept float64                 `json:"intercept,omitempty" yaml:"intercept,omitempty"`
	NFeatures int                     `json:"n_features,omitempty" yaml:"n_features,omitempty"`
	Trees     []*model.RegressionTree `json:"trees,omitempty" yaml:"trees,omitempty"`
}

// decoder reads one envelope in a specific serialization format.
type decoder func(r io.Reader, env *Envelope) error

var decoders = map[string]decoder{
	".json": func(r io.Reader, env *Envelope) error {
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		return dec.Decode(env)
	},
	".yaml": decodeYAML,
	".yml":  decodeYAML,
	".gob": func(r io.Reader, env *Envelope) error {
		return gob.NewDecoder(r).Decode(env)
	},
}

func decodeYAML(r io.Reader, env *Envelope) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	return dec.Decode(env)
}

func decoderFor(path string) (decoder, error) {
	ext := strings.ToLower(filepath.Ext(path))
	d, ok := decoders[ext]
	if !ok {
		return nil, fmt.Errorf("unsupported artifact format %q", ext)
	}
	return d, nil
}

// Encode writes env in the format implied by path's extension. It is used by
// tooling that produces fixture artifacts.
func Encode(w io.Writer, path string, env *Envelope) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(env)
	case ".yaml", ".yml":
		enc := yaml.NewEncoder(w)
		if err := enc.Encode(env); err != nil {
			return err
		}
		return enc.Close()
	case ".gob":
		return gob.NewEncoder(w).Encode(env)
	default:
		return fmt.Errorf("unsupported artifact format %q", filepath.Ext(path))
	}
}

func (env *Envelope) imputer() (*dataprep.SimpleImputer, error) {
	if env.Kind != "simple" {
		return nil, fmt.Errorf("unknown imputer kind %q", env.Kind)
	}
	return &dataprep.SimpleImputer{Strategy: env.Strategy, Statistics: env.Statistics}, nil
}

func (env *Envelope) scaler() (stats.Scaler, error) {
	switch env.Kind {
	case "standard":
		return &stats.StandardScaler{Mean: env.Mean, Scale: env.Scale}, nil
	case "minmax":
		return &stats.MinMaxScaler{Min: env.Min, Scale: env.Scale}, nil
	case "robust":
		return &stats.RobustScaler{Center: env.Center, Scale: env.Scale}, nil
	default:
		return nil, fmt.Errorf("unknown scaler kind %q", env.Kind)
	}
}

func (env *Envelope) regressor() (model.Regressor, error) {
	switch env.Kind {
	case "linear":
		return model.NewLinearRegression(env.Coef, env.Intercept), nil
	case "forest":
		n := env.NFeatures
		if n == 0 {
			n = features.NumFeatures
		}
		return &model.ForestRegressor{NFeatures: n, Trees: env.Trees}, nil
	default:
		return nil, fmt.Errorf("unknown model kind %q", env.Kind)
	}
}
