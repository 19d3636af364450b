package quake

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func twelveArgs() []string {
	return []string{"35.6", "-117.5", "8.2", "0.12", "3", "41", "0.5", "1", "1e2", " 7 ", "-0.25", "12"}
}

func TestParseFeatures(t *testing.T) {
	got, err := ParseFeatures(twelveArgs())
	require.NoError(t, err)
	assert.Equal(t, []float64{35.6, -117.5, 8.2, 0.12, 3, 41, 0.5, 1, 100, 7, -0.25, 12}, got)
}

func TestParseFeaturesIgnoresExtraArguments(t *testing.T) {
	args := append(twelveArgs(), "not-a-number", "99")
	got, err := ParseFeatures(args)
	require.NoError(t, err)
	assert.Len(t, got, FeatureCount)
}

func TestParseFeaturesTooFew(t *testing.T) {
	for _, n := range []int{0, 1, 11} {
		_, err := ParseFeatures(twelveArgs()[:n])
		require.ErrorIs(t, err, ErrMissingFeatures)
		assert.Contains(t, err.Error(), "got "+strconv.Itoa(n))
	}
}

func TestParseFeaturesNotANumber(t *testing.T) {
	args := twelveArgs()
	args[4] = "three"

	_, err := ParseFeatures(args)
	var fe *FeatureError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, 5, fe.Position)
	assert.Equal(t, "three", fe.Value)
	require.ErrorIs(t, err, strconv.ErrSyntax)
	assert.EqualError(t, err, `feature 5: cannot parse "three" as a number: invalid syntax`)
}

func TestParseFeaturesAcceptsSpecialValues(t *testing.T) {
	args := twelveArgs()
	args[0] = "inf"
	args[1] = "NaN"

	got, err := ParseFeatures(args)
	require.NoError(t, err)
	assert.True(t, got[0] > 1e308)
	assert.NotEqual(t, got[1], got[1])
}
