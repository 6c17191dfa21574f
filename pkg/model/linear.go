package model

import (
	"errors"
	"fmt"
	"math"
	"runtime"
	"sync"

	"gonum.org/v1/gonum/floats"
)

// LinearRegression is a fitted linear model: Coef·x + Intercept.
type LinearRegression struct {
	Coef      []float64 `json:"coef" yaml:"coef"`
	Intercept float64   `json:"intercept" yaml:"intercept"`
}

// parallelRows is the batch size above which Predict fans out across cores.
const parallelRows = 256

// NewLinearRegression returns a model with the given coefficients and intercept.
func NewLinearRegression(coef []float64, intercept float64) *LinearRegression {
	return &LinearRegression{Coef: coef, Intercept: intercept}
}

func (m *LinearRegression) Kind() string     { return "linear" }
func (m *LinearRegression) NumFeatures() int { return len(m.Coef) }

func (m *LinearRegression) Validate(nFeatures int) error {
	if len(m.Coef) != nFeatures {
		return fmt.Errorf("linear model has %d coefficients, expected %d", len(m.Coef), nFeatures)
	}
	for _, c := range append([]float64{m.Intercept}, m.Coef...) {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return errors.New("linear model has a non-finite parameter")
		}
	}
	return nil
}

// Predict returns predictions for rows in X. Large batches are split across
// GOMAXPROCS workers; each row is independent.
func (m *LinearRegression) Predict(X [][]float64) []float64 {
	if len(X) == 0 {
		return nil
	}
	pred := make([]float64, len(X))
	if len(X) < parallelRows {
		for i, row := range X {
			pred[i] = floats.Dot(m.Coef, row) + m.Intercept
		}
		return pred
	}

	var wg sync.WaitGroup
	workers := runtime.GOMAXPROCS(0)
	rowsPerWorker := (len(X) + workers - 1) / workers
	for w := 0; w < workers; w++ {
		s := w * rowsPerWorker
		e := min(s+rowsPerWorker, len(X))
		if s >= e {
			continue
		}
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			for i := s; i < e; i++ {
				pred[i] = floats.Dot(m.Coef, X[i]) + m.Intercept
			}
		}(s, e)
	}
	wg.Wait()
	return pred
}
