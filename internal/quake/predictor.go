package quake

import (
	"errors"
	"fmt"

	"github.com/ringnet/quakecast/internal/model"
)

var ErrEmptyPrediction = errors.New("model returned no prediction")

// Predictor runs a single-row inference against a model.
type Predictor struct {
	Model model.Regressor
}

// Predict wraps features into a one-row matrix and returns the first output.
func (p Predictor) Predict(features []float64) (float64, error) {
	out, err := p.Model.Predict([][]float64{features})
	if err != nil {
		return 0, fmt.Errorf("predict: %w", err)
	}
	if len(out) == 0 {
		return 0, ErrEmptyPrediction
	}
	return out[0], nil
}

// Estimate predicts the magnitude and derives its distance band.
func (p Predictor) Estimate(features []float64) (Result, error) {
	m, err := p.Predict(features)
	if err != nil {
		return Result{}, err
	}
	return Result{Magnitude: m, Distance: EstimateDistance(m)}, nil
}
