package features

import (
	"math"
	"strconv"
	"strings"
)

// RawInput is what a caller collected per feature. An absent key or a blank
// string means the measurement was left empty.
type RawInput map[string]string

// Validate turns raw text into a Vector. Features are visited in schema order
// and the first value that does not parse as a finite number stops validation.
// No range checks are made: negative acidity is accepted.
func Validate(raw RawInput) (Vector, error) {
	if err := checkKeys(keysOf(raw)); err != nil {
		return nil, err
	}
	vec := make(Vector, Wine.Len())
	for _, name := range Wine.FeatureNames {
		s := strings.TrimSpace(raw[name])
		if s == "" {
			vec[name] = Missing()
			continue
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, &InvalidFeatureValueError{Feature: name, RawValue: raw[name]}
		}
		vec[name] = Some(f)
	}
	return vec, nil
}
