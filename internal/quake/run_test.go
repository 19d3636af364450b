package quake

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ringnet/quakecast/internal/model"
)

// constant returns a loader for a model that always predicts v.
func constant(v ...float64) LoadFunc {
	return func() (model.Regressor, error) {
		return model.RegressorFunc(func(rows [][]float64) ([]float64, error) {
			return v, nil
		}), nil
	}
}

func TestRunPrintsMagnitudeAndDistance(t *testing.T) {
	tests := []struct {
		predicted float64
		want      string
	}{
		{6.5, "6.5,200\n"},
		{7.2, "7.2,500\n"},
		{3.1, "3.1,100\n"},
	}
	for _, tc := range tests {
		var out bytes.Buffer
		res, err := Run(context.Background(), constant(tc.predicted), twelveArgs(), &out)
		require.NoError(t, err)
		assert.Equal(t, tc.want, out.String())
		assert.Equal(t, tc.predicted, res.Magnitude)
	}
}

func TestRunPassesSingleRow(t *testing.T) {
	var seen [][]float64
	load := func() (model.Regressor, error) {
		return model.RegressorFunc(func(rows [][]float64) ([]float64, error) {
			seen = rows
			return []float64{5}, nil
		}), nil
	}

	_, err := Run(context.Background(), load, twelveArgs(), &bytes.Buffer{})
	require.NoError(t, err)
	require.Len(t, seen, 1)
	assert.Len(t, seen[0], FeatureCount)
	assert.Equal(t, 35.6, seen[0][0])
}

func TestRunTakesFirstOutput(t *testing.T) {
	var out bytes.Buffer
	_, err := Run(context.Background(), constant(5.5, 9.9), twelveArgs(), &out)
	require.NoError(t, err)
	assert.Equal(t, "5.5,200\n", out.String())
}

func TestRunFailsWithTooFewArguments(t *testing.T) {
	var out bytes.Buffer
	_, err := Run(context.Background(), constant(6.5), twelveArgs()[:11], &out)
	require.ErrorIs(t, err, ErrMissingFeatures)
	assert.Empty(t, out.String())
}

func TestRunLoadsModelBeforeParsing(t *testing.T) {
	loadErr := errors.New("no artifact")
	load := func() (model.Regressor, error) { return nil, loadErr }

	_, err := Run(context.Background(), load, []string{"bad"}, &bytes.Buffer{})
	require.ErrorIs(t, err, loadErr)
}

func TestRunInferenceFailure(t *testing.T) {
	boom := errors.New("boom")
	load := func() (model.Regressor, error) {
		return model.RegressorFunc(func([][]float64) ([]float64, error) { return nil, boom }), nil
	}

	_, err := Run(context.Background(), load, twelveArgs(), &bytes.Buffer{})
	require.ErrorIs(t, err, boom)
}

func TestRunEmptyPrediction(t *testing.T) {
	_, err := Run(context.Background(), constant(), twelveArgs(), &bytes.Buffer{})
	require.ErrorIs(t, err, ErrEmptyPrediction)
}

func TestRunWithArtifactFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "earthquake_model.pkl")
	artifact := `{"kind":"linear","intercept":2,"coefficients":[0.5,0,0,0,0,0,0,0,0,0,0,0]}`
	require.NoError(t, os.WriteFile(path, []byte(artifact), 0o644))

	args := twelveArgs()
	args[0] = "10"

	var out bytes.Buffer
	_, err := Run(context.Background(), LoadFile(path), args, &out)
	require.NoError(t, err)
	assert.Equal(t, "7.0,500\n", out.String())
}

func TestRunMissingArtifact(t *testing.T) {
	_, err := Run(context.Background(), LoadFile(filepath.Join(t.TempDir(), "earthquake_model.pkl")), twelveArgs(), &bytes.Buffer{})
	require.ErrorIs(t, err, os.ErrNotExist)
}
