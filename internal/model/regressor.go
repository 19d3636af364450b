package model

// Regressor predicts one value per input row.
type Regressor interface {
	Predict(rows [][]float64) ([]float64, error)
}

// RegressorFunc adapts a plain function to the Regressor interface.
type RegressorFunc func(rows [][]float64) ([]float64, error)

func (f RegressorFunc) Predict(rows [][]float64) ([]float64, error) {
	return f(rows)
}

// estimator evaluates a single, already scaled, feature row.
type estimator interface {
	eval(x []float64) float64
}
