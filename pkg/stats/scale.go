package stats

import (
	"errors"
	"fmt"
	"math"
)

// ErrNotFinite is returned when a scaler sees NaN or Inf in its input.
var ErrNotFinite = errors.New("input contains a non-finite value")

// Scaler applies a pre-fitted per-column transform.
type Scaler interface {
	Kind() string
	Validate(nFeatures int) error
	Transform(X [][]float64) ([][]float64, error)
}

// StandardScaler standardizes columns with learned mean and scale: (x-mean)/scale.
type StandardScaler struct {
	Mean  []float64 `json:"mean" yaml:"mean"`
	Scale []float64 `json:"scale" yaml:"scale"`
}

// MinMaxScaler maps columns with x*scale + min.
type MinMaxScaler struct {
	Min   []float64 `json:"min" yaml:"min"`
	Scale []float64 `json:"scale" yaml:"scale"`
}

// RobustScaler scales columns using median and IQR: (x-center)/scale.
type RobustScaler struct {
	Center []float64 `json:"center" yaml:"center"`
	Scale  []float64 `json:"scale" yaml:"scale"`
}

func (s *StandardScaler) Kind() string { return "standard" }
func (s *MinMaxScaler) Kind() string   { return "minmax" }
func (s *RobustScaler) Kind() string   { return "robust" }

func (s *StandardScaler) Validate(n int) error {
	return checkParams(n, []param{{"mean", s.Mean}, {"scale", s.Scale}}, s.Scale)
}

func (s *MinMaxScaler) Validate(n int) error {
	return checkParams(n, []param{{"min", s.Min}, {"scale", s.Scale}}, s.Scale)
}

func (s *RobustScaler) Validate(n int) error {
	return checkParams(n, []param{{"center", s.Center}, {"scale", s.Scale}}, s.Scale)
}

func (s *StandardScaler) Transform(X [][]float64) ([][]float64, error) {
	return apply(X, len(s.Mean), func(j int, v float64) float64 { return (v - s.Mean[j]) / s.Scale[j] })
}

func (s *MinMaxScaler) Transform(X [][]float64) ([][]float64, error) {
	return apply(X, len(s.Min), func(j int, v float64) float64 { return v*s.Scale[j] + s.Min[j] })
}

func (s *RobustScaler) Transform(X [][]float64) ([][]float64, error) {
	return apply(X, len(s.Center), func(j int, v float64) float64 { return (v - s.Center[j]) / s.Scale[j] })
}

func apply(X [][]float64, cols int, f func(j int, v float64) float64) ([][]float64, error) {
	Y := make([][]float64, len(X))
	for i, row := range X {
		if len(row) != cols {
			return nil, fmt.Errorf("row %d has %d columns, scaler expects %d", i, len(row), cols)
		}
		if !allFinite(row) {
			return nil, fmt.Errorf("row %d: %w", i, ErrNotFinite)
		}
		out := make([]float64, cols)
		for j, v := range row {
			out[j] = f(j, v)
		}
		Y[i] = out
	}
	return Y, nil
}

type param struct {
	name   string
	values []float64
}

// checkParams reports the first bad parameter in declaration order.
func checkParams(n int, params []param, scale []float64) error {
	for _, p := range params {
		if len(p.values) != n {
			return fmt.Errorf("scaler %s has %d values, expected %d", p.name, len(p.values), n)
		}
		if !allFinite(p.values) {
			return fmt.Errorf("scaler %s: %w", p.name, ErrNotFinite)
		}
	}
	for j, s := range scale {
		if s == 0 {
			return fmt.Errorf("scaler scale %d is zero", j)
		}
	}
	return nil
}

func allFinite(x []float64) bool {
	for _, v := range x {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
