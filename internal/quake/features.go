package quake

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// FeatureCount is the width of the model input vector.
const FeatureCount = 12

var ErrMissingFeatures = errors.New("missing feature arguments")

// FeatureError reports an argument that is not a number.
type FeatureError struct {
	Position int // 1-based
	Value    string
	Err      error
}

func (e *FeatureError) Error() string {
	return fmt.Sprintf("feature %d: cannot parse %q as a number: %v", e.Position, e.Value, e.Err)
}

func (e *FeatureError) Unwrap() error { return e.Err }

// ParseFeatures converts the first FeatureCount arguments to float64.
// Later arguments are ignored.
func ParseFeatures(args []string) ([]float64, error) {
	if len(args) < FeatureCount {
		return nil, fmt.Errorf("%w: expected %d, got %d", ErrMissingFeatures, FeatureCount, len(args))
	}

	features := make([]float64, FeatureCount)
	for i, raw := range args[:FeatureCount] {
		v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			var numErr *strconv.NumError
			if errors.As(err, &numErr) {
				err = numErr.Err
			}
			return nil, &FeatureError{Position: i + 1, Value: raw, Err: err}
		}
		features[i] = v
	}
	return features, nil
}
