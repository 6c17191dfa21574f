package artifact

import (
	"bufio"
	"errors"
	"fmt"
	"os"

	"winequality/pkg/dataprep"
	"winequality/pkg/features"
	"winequality/pkg/model"
	"winequality/pkg/stats"
)

// Paths locates the three persisted artifacts.
type Paths struct {
	Imputer string
	Scaler  string
	Model   string
}

// LoadError reports an artifact that could not be read, decoded or validated.
// The store cannot run without all three artifacts, so callers treat it as fatal.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load artifact %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Store holds the fitted imputer, scaler and model. It is immutable after
// Load and safe for concurrent use without locking.
type Store struct {
	imputer *dataprep.SimpleImputer
	scaler  stats.Scaler
	model   model.Regressor
}

// Load reads the imputer, scaler and model in that order and stops at the
// first failure.
func Load(p Paths) (*Store, error) {
	var s Store

	env, err := readEnvelope(p.Imputer)
	if err != nil {
		return nil, err
	}
	if s.imputer, err = env.imputer(); err == nil {
		err = s.imputer.Validate(features.NumFeatures)
	}
	if err != nil {
		return nil, &LoadError{Path: p.Imputer, Err: err}
	}

	if env, err = readEnvelope(p.Scaler); err != nil {
		return nil, err
	}
	if s.scaler, err = env.scaler(); err == nil {
		err = s.scaler.Validate(features.NumFeatures)
	}
	if err != nil {
		return nil, &LoadError{Path: p.Scaler, Err: err}
	}

	if env, err = readEnvelope(p.Model); err != nil {
		return nil, err
	}
	if s.model, err = env.regressor(); err == nil {
		err = s.model.Validate(features.NumFeatures)
	}
	if err != nil {
		return nil, &LoadError{Path: p.Model, Err: err}
	}

	return &s, nil
}

// New assembles a store from already-constructed components, validating them
// against the schema width.
func New(im *dataprep.SimpleImputer, sc stats.Scaler, m model.Regressor) (*Store, error) {
	if im == nil || sc == nil || m == nil {
		return nil, errors.New("artifact: imputer, scaler and model are all required")
	}
	for _, err := range []error{
		im.Validate(features.NumFeatures),
		sc.Validate(features.NumFeatures),
		m.Validate(features.NumFeatures),
	} {
		if err != nil {
			return nil, fmt.Errorf("artifact: %w", err)
		}
	}
	return &Store{imputer: im, scaler: sc, model: m}, nil
}

func readEnvelope(path string) (*Envelope, error) {
	dec, err := decoderFor(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	defer f.Close()

	var env Envelope
	if err := dec(bufio.NewReader(f), &env); err != nil {
		return nil, &LoadError{Path: path, Err: fmt.Errorf("decode: %w", err)}
	}
	if len(env.Features) > 0 {
		if err := features.Wine.Match(env.Features); err != nil {
			return nil, &LoadError{Path: path, Err: err}
		}
	}
	return &env, nil
}

// Impute fills every missing entry of vec using the fitted imputer. Present
// values are never altered.
func (s *Store) Impute(vec features.Vector) ([]float64, error) {
	row, err := vec.Ordered()
	if err != nil {
		return nil, err
	}
	out, err := s.imputer.Transform(row)
	if err != nil {
		return nil, &features.InternalError{Stage: "impute", Err: err}
	}
	return out, nil
}

// Scale applies the fitted scaler to a fully imputed row. A non-finite entry
// means imputation was skipped and is reported as an InternalError.
func (s *Store) Scale(row []float64) ([]float64, error) {
	if len(row) != features.NumFeatures {
		return nil, &features.SchemaMismatchError{
			Reason: fmt.Sprintf("expected %d features, got %d", features.NumFeatures, len(row)),
		}
	}
	out, err := s.scaler.Transform([][]float64{row})
	if err != nil {
		return nil, &features.InternalError{Stage: "scale", Err: err}
	}
	return out[0], nil
}

// Predict runs the model on one scaled row.
func (s *Store) Predict(row []float64) (float64, error) {
	if len(row) != features.NumFeatures {
		return 0, &features.SchemaMismatchError{
			Reason: fmt.Sprintf("expected %d features, got %d", features.NumFeatures, len(row)),
		}
	}
	return s.model.Predict([][]float64{row})[0], nil
}

// Description summarizes the loaded artifacts for display.
type Description struct {
	ImputerStrategy string
	ImputerFill     []float64
	ScalerKind      string
	ModelKind       string
}

// Describe reports what was loaded.
func (s *Store) Describe() Description {
	fill := make([]float64, len(s.imputer.Statistics))
	copy(fill, s.imputer.Statistics)
	return Description{
		ImputerStrategy: s.imputer.Strategy,
		ImputerFill:     fill,
		ScalerKind:      s.scaler.Kind(),
		ModelKind:       s.model.Kind(),
	}
}
