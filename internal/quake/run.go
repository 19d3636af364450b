package quake

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/ringnet/quakecast/internal/logger"
	"github.com/ringnet/quakecast/internal/model"
)

// LoadFunc opens the model used for a run.
type LoadFunc func() (model.Regressor, error)

// LoadFile returns a LoadFunc that reads the artifact at path.
func LoadFile(path string) LoadFunc {
	return func() (model.Regressor, error) {
		m, err := model.Load(path)
		if err != nil {
			return nil, err
		}
		return m, nil
	}
}

// Run executes one prediction and writes the result line to w.
func Run(ctx context.Context, load LoadFunc, args []string, w io.Writer) (Result, error) {
	log := logger.FromContext(ctx)

	start := time.Now()
	m, err := load()
	if err != nil {
		return Result{}, err
	}
	log.Debug("model ready", "took", time.Since(start))

	features, err := ParseFeatures(args)
	if err != nil {
		return Result{}, err
	}

	res, err := Predictor{Model: m}.Estimate(features)
	if err != nil {
		return Result{}, err
	}
	log.Debug("prediction", "magnitude", res.Magnitude, "distance", res.Distance)

	if _, err := fmt.Fprintln(w, res.String()); err != nil {
		return Result{}, fmt.Errorf("write result: %w", err)
	}
	return res, nil
}
