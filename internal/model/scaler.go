package model

import (
	"fmt"
	"math"
)

// Scaler standardizes features as (x - mean) / scale before estimation.
type Scaler struct {
	Mean  []float64 `json:"mean" yaml:"mean"`
	Scale []float64 `json:"scale" yaml:"scale"`
}

func (s *Scaler) validate(nFeatures int) error {
	if len(s.Mean) != nFeatures || len(s.Scale) != nFeatures {
		return fmt.Errorf("%w: scaler has %d means and %d scales for %d features",
			ErrCorruptModel, len(s.Mean), len(s.Scale), nFeatures)
	}
	for i, v := range s.Scale {
		if v == 0 || math.IsNaN(v) {
			return fmt.Errorf("%w: scaler scale[%d] is %v", ErrCorruptModel, i, v)
		}
	}
	return nil
}

// transform writes the scaled row into dst and returns it.
func (s *Scaler) transform(dst, x []float64) []float64 {
	for i, v := range x {
		dst[i] = (v - s.Mean[i]) / s.Scale[i]
	}
	return dst
}
