package features

import (
	"fmt"
	"math"
	"sort"
)

// Value is a single measurement: either a finite float or missing.
type Value struct {
	v       float64
	present bool
}

// Some returns a present value.
func Some(v float64) Value { return Value{v: v, present: true} }

// Missing returns the missing marker.
func Missing() Value { return Value{} }

// Get returns the float and whether it is present.
func (v Value) Get() (float64, bool) { return v.v, v.present }

// IsMissing reports whether v carries no measurement.
func (v Value) IsMissing() bool { return !v.present }

func (v Value) String() string {
	if !v.present {
		return "<missing>"
	}
	return fmt.Sprintf("%g", v.v)
}

// Vector maps every schema feature to a Value. Missing entries are explicit
// keys holding Missing(), never absent keys.
type Vector map[string]Value

// NewVector builds a Vector for typed callers. A nil pointer or NaN is
// missing; infinities are rejected because the pipeline only accepts finite
// numbers. Keys outside the schema fail with SchemaMismatchError.
func NewVector(in map[string]*float64) (Vector, error) {
	if err := checkKeys(keysOf(in)); err != nil {
		return nil, err
	}
	vec := make(Vector, Wine.Len())
	for _, name := range Wine.FeatureNames {
		p := in[name]
		switch {
		case p == nil || math.IsNaN(*p):
			vec[name] = Missing()
		case math.IsInf(*p, 0):
			return nil, &InvalidFeatureValueError{Feature: name, RawValue: fmt.Sprint(*p)}
		default:
			vec[name] = Some(*p)
		}
	}
	return vec, nil
}

// Ordered lays the vector out in schema order. The key set must equal the
// schema exactly.
func (vec Vector) Ordered() ([]Value, error) {
	if len(vec) != Wine.Len() {
		var missing []string
		for _, name := range Wine.FeatureNames {
			if _, ok := vec[name]; !ok {
				missing = append(missing, name)
			}
		}
		extra := unknownKeys(keysOf(vec))
		return nil, &SchemaMismatchError{Missing: missing, Unknown: extra,
			Reason: fmt.Sprintf("expected %d features, got %d", Wine.Len(), len(vec))}
	}
	out := make([]Value, Wine.Len())
	for i, name := range Wine.FeatureNames {
		v, ok := vec[name]
		if !ok {
			return nil, &SchemaMismatchError{Missing: []string{name}, Unknown: unknownKeys(keysOf(vec))}
		}
		out[i] = v
	}
	return out, nil
}

// MissingFeatures lists, in schema order, the features holding Missing().
func (vec Vector) MissingFeatures() []string {
	var out []string
	for _, name := range Wine.FeatureNames {
		if v, ok := vec[name]; ok && v.IsMissing() {
			out = append(out, name)
		}
	}
	return out
}

func keysOf[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}

func unknownKeys(keys []string) []string {
	var out []string
	for _, k := range keys {
		if !Wine.Has(k) {
			out = append(out, k)
		}
	}
	sort.Strings(out)
	return out
}

func checkKeys(keys []string) error {
	if extra := unknownKeys(keys); len(extra) > 0 {
		return &SchemaMismatchError{Unknown: extra}
	}
	return nil
}
