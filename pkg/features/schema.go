package features

import "fmt"

// Schema describes the ordered columns every artifact was fitted against.
type Schema struct {
	FeatureNames []string
}

// Wine is the fixed column order of the physicochemical measurements.
var Wine = Schema{FeatureNames: []string{
	"fixed acidity",
	"volatile acidity",
	"citric acid",
	"residual sugar",
	"chlorides",
	"free sulfur dioxide",
	"total sulfur dioxide",
	"density",
	"pH",
	"sulphates",
	"alcohol",
}}

// NumFeatures is the width of every vector in the pipeline.
const NumFeatures = 11

// Len returns the number of columns.
func (s Schema) Len() int { return len(s.FeatureNames) }

// Index returns the column position of name, or -1.
func (s Schema) Index(name string) int {
	for i, n := range s.FeatureNames {
		if n == name {
			return i
		}
	}
	return -1
}

// Has reports whether name is a column of s.
func (s Schema) Has(name string) bool { return s.Index(name) >= 0 }

// Names returns a copy of the column names so callers cannot reorder the schema.
func (s Schema) Names() []string {
	out := make([]string, len(s.FeatureNames))
	copy(out, s.FeatureNames)
	return out
}

// Match checks that names is exactly the schema, in schema order.
func (s Schema) Match(names []string) error {
	if len(names) != len(s.FeatureNames) {
		return &SchemaMismatchError{Reason: fmt.Sprintf("expected %d features, got %d", len(s.FeatureNames), len(names))}
	}
	for i, n := range names {
		if n != s.FeatureNames[i] {
			return &SchemaMismatchError{Reason: fmt.Sprintf("column %d is %q, expected %q", i, n, s.FeatureNames[i])}
		}
	}
	return nil
}
