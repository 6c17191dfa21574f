package dataprep

import (
	"errors"
	"fmt"
	"math"

	"winequality/pkg/features"
)

// Strategies an imputer may have been fitted with. The strategy is recorded
// for display only; Transform always uses the persisted Statistics.
const (
	StrategyMean         = "mean"
	StrategyMedian       = "median"
	StrategyMostFrequent = "most_frequent"
	StrategyConstant     = "constant"
)

// SimpleImputer fills missing entries with one pre-fitted value per column.
type SimpleImputer struct {
	Strategy   string    `json:"strategy" yaml:"strategy"`
	Statistics []float64 `json:"statistics" yaml:"statistics"`
}

// NewSimpleImputer returns an imputer over the given per-column fill values.
func NewSimpleImputer(strategy string, statistics []float64) (*SimpleImputer, error) {
	im := &SimpleImputer{Strategy: strategy, Statistics: statistics}
	if err := im.Validate(len(statistics)); err != nil {
		return nil, err
	}
	return im, nil
}

// Validate checks that the imputer covers nFeatures columns with finite fill values.
func (im *SimpleImputer) Validate(nFeatures int) error {
	switch im.Strategy {
	case StrategyMean, StrategyMedian, StrategyMostFrequent, StrategyConstant, "":
	default:
		return fmt.Errorf("unknown imputation strategy %q", im.Strategy)
	}
	if len(im.Statistics) != nFeatures {
		return fmt.Errorf("imputer has %d statistics, expected %d", len(im.Statistics), nFeatures)
	}
	for j, s := range im.Statistics {
		if math.IsNaN(s) || math.IsInf(s, 0) {
			return fmt.Errorf("imputer statistic %d is not finite", j)
		}
	}
	return nil
}

// Transform replaces each missing entry of row with its column statistic.
// Present values are copied unchanged.
func (im *SimpleImputer) Transform(row []features.Value) ([]float64, error) {
	if len(row) != len(im.Statistics) {
		return nil, errors.New("row width does not match imputer")
	}
	out := make([]float64, len(row))
	for j, v := range row {
		if f, ok := v.Get(); ok {
			out[j] = f
			continue
		}
		out[j] = im.Statistics[j]
	}
	return out, nil
}
