package quake

// Distance bands in the same unit the downstream backend expects.
const (
	DistanceMajor    = 500
	DistanceStrong   = 200
	DistanceModerate = 100
)

// EstimateDistance maps a magnitude to its destruction distance band.
func EstimateDistance(magnitude float64) int {
	switch {
	case magnitude >= 7:
		return DistanceMajor
	case magnitude >= 5:
		return DistanceStrong
	default:
		return DistanceModerate
	}
}
