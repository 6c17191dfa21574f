package model

import (
	"errors"
	"fmt"
	"math"
	"sync"
)

// leaf marks a node without children.
const leaf = -1

// RegressionTree is a fitted CART regression tree stored as parallel arrays.
// Node 0 is the root; x[Feature[i]] <= Threshold[i] goes to ChildrenLeft[i].
type RegressionTree struct {
	ChildrenLeft  []int     `json:"children_left" yaml:"children_left"`
	ChildrenRight []int     `json:"children_right" yaml:"children_right"`
	Feature       []int     `json:"feature" yaml:"feature"`
	Threshold     []float64 `json:"threshold" yaml:"threshold"`
	Value         []float64 `json:"value" yaml:"value"`
}

// ForestRegressor averages the predictions of its trees.
type ForestRegressor struct {
	NFeatures int               `json:"n_features" yaml:"n_features"`
	Trees     []*RegressionTree `json:"trees" yaml:"trees"`
}

func (f *ForestRegressor) Kind() string     { return "forest" }
func (f *ForestRegressor) NumFeatures() int { return f.NFeatures }

func (f *ForestRegressor) Validate(nFeatures int) error {
	if f.NFeatures != 0 && f.NFeatures != nFeatures {
		return fmt.Errorf("forest was fitted on %d features, expected %d", f.NFeatures, nFeatures)
	}
	if len(f.Trees) == 0 {
		return errors.New("forest has no trees")
	}
	for i, t := range f.Trees {
		if t == nil {
			return fmt.Errorf("tree %d is empty", i)
		}
		if err := t.validate(nFeatures); err != nil {
			return fmt.Errorf("tree %d: %w", i, err)
		}
	}
	return nil
}

// Predict runs one goroutine per tree and averages the results. Trees are
// summed in order so the result does not depend on scheduling.
func (f *ForestRegressor) Predict(X [][]float64) []float64 {
	n := len(X)
	if n == 0 {
		return nil
	}

	all := make([][]float64, len(f.Trees))
	var wg sync.WaitGroup
	for k, tree := range f.Trees {
		wg.Add(1)
		go func(k int, t *RegressionTree) {
			defer wg.Done()
			preds := make([]float64, n)
			for i, row := range X {
				preds[i] = t.predictSingle(row)
			}
			all[k] = preds
		}(k, tree)
	}
	wg.Wait()

	out := make([]float64, n)
	for i := range out {
		var sum float64
		for _, preds := range all {
			sum += preds[i]
		}
		out[i] = sum / float64(len(all))
	}
	return out
}

func (t *RegressionTree) predictSingle(x []float64) float64 {
	node := 0
	for t.ChildrenLeft[node] != leaf {
		if x[t.Feature[node]] <= t.Threshold[node] {
			node = t.ChildrenLeft[node]
		} else {
			node = t.ChildrenRight[node]
		}
	}
	return t.Value[node]
}

// validate checks array lengths, index bounds and that every walk from the
// root terminates at a leaf.
func (t *RegressionTree) validate(nFeatures int) error {
	n := len(t.ChildrenLeft)
	if n == 0 {
		return errors.New("no nodes")
	}
	if len(t.ChildrenRight) != n || len(t.Feature) != n || len(t.Threshold) != n || len(t.Value) != n {
		return errors.New("node arrays differ in length")
	}
	for i := 0; i < n; i++ {
		l, r := t.ChildrenLeft[i], t.ChildrenRight[i]
		if (l == leaf) != (r == leaf) {
			return fmt.Errorf("node %d has one child", i)
		}
		if l == leaf {
			if math.IsNaN(t.Value[i]) || math.IsInf(t.Value[i], 0) {
				return fmt.Errorf("leaf %d has a non-finite value", i)
			}
			continue
		}
		// Children always sit after their parent, which rules out cycles.
		if l <= i || r <= i || l >= n || r >= n {
			return fmt.Errorf("node %d has out-of-range children", i)
		}
		if t.Feature[i] < 0 || t.Feature[i] >= nFeatures {
			return fmt.Errorf("node %d splits on feature %d", i, t.Feature[i])
		}
		if math.IsNaN(t.Threshold[i]) {
			return fmt.Errorf("node %d has a NaN threshold", i)
		}
	}
	return nil
}
