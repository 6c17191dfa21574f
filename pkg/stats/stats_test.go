package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStandardScaler(t *testing.T) {
	s := &StandardScaler{Mean: []float64{10, 0}, Scale: []float64{2, 0.5}}
	require.NoError(t, s.Validate(2))

	out, err := s.Transform([][]float64{{12, 1}, {10, -1}})
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1, 2}, {0, -2}}, out)
}

func TestMinMaxScaler(t *testing.T) {
	s := &MinMaxScaler{Min: []float64{-1}, Scale: []float64{0.5}}
	require.NoError(t, s.Validate(1))

	out, err := s.Transform([][]float64{{4}})
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1}}, out)
}

func TestRobustScaler(t *testing.T) {
	s := &RobustScaler{Center: []float64{3}, Scale: []float64{2}}
	out, err := s.Transform([][]float64{{7}})
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{2}}, out)
}

func TestScalerRejectsNonFiniteInput(t *testing.T) {
	s := &StandardScaler{Mean: []float64{0, 0}, Scale: []float64{1, 1}}
	_, err := s.Transform([][]float64{{1, math.NaN()}})
	assert.ErrorIs(t, err, ErrNotFinite)

	_, err = s.Transform([][]float64{{math.Inf(-1), 1}})
	assert.ErrorIs(t, err, ErrNotFinite)

	_, err = s.Transform([][]float64{{1}})
	assert.ErrorContains(t, err, "scaler expects 2")
}

func TestScalerValidate(t *testing.T) {
	assert.Error(t, (&StandardScaler{Mean: []float64{0}, Scale: []float64{0}}).Validate(1))
	assert.Error(t, (&StandardScaler{Mean: []float64{0}, Scale: []float64{1}}).Validate(2))
	assert.ErrorIs(t, (&RobustScaler{Center: []float64{math.NaN()}, Scale: []float64{1}}).Validate(1), ErrNotFinite)
}

func TestScalerValidateReportsFirstParam(t *testing.T) {
	s := &MinMaxScaler{Min: []float64{0}, Scale: []float64{math.Inf(1), 1}}
	for i := 0; i < 20; i++ {
		assert.EqualError(t, s.Validate(2), "scaler min has 1 values, expected 2")
	}
}

func TestSummarize(t *testing.T) {
	s, err := Summarize([]float64{4, 5, 6, 7, 8})
	require.NoError(t, err)
	assert.Equal(t, 5, s.Count)
	assert.InDelta(t, 6, s.Mean, 1e-12)
	assert.InDelta(t, 6, s.Median, 1e-12)
	assert.InDelta(t, math.Sqrt(2), s.StdDev, 1e-12)
	assert.Equal(t, 4.0, s.Min)
	assert.Equal(t, 8.0, s.Max)

	_, err = Summarize(nil)
	assert.Error(t, err)
}
