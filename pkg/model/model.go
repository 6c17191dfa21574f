package model

// Regressor is a pre-trained model mapping fixed-order rows to real scores.
type Regressor interface {
	Kind() string
	NumFeatures() int
	Validate(nFeatures int) error
	Predict(X [][]float64) []float64
}
