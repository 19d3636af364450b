// Package quake turns twelve seismic input parameters into a predicted
// magnitude and a destruction distance.
//
// # Pipeline
//
// A prediction runs strictly top to bottom and fails fast:
//
//	load model -> parse 12 arguments -> predict -> estimate distance -> print
//
// The model is loaded before the arguments are parsed, so a missing artifact
// is reported even when the arguments are also wrong.
//
// # Input vector
//
// Exactly twelve float64 values. Their order and meaning are fixed by how the
// model was trained; this package treats them as opaque. Arguments beyond the
// twelfth are ignored. There are no bounds or plausibility checks.
//
// # Distance bands
//
// The destruction distance is a coarse placeholder, not an attenuation law:
//
//	magnitude >= 7      -> 500
//	5 <= magnitude < 7  -> 200
//	otherwise           -> 100
//
// NaN falls through every comparison and lands in the lowest band.
//
// # Output
//
// One line, "<magnitude>,<distance>". The magnitude keeps full precision in
// shortest round-trip form, written the way the model's original Python
// runtime printed floats: a whole number keeps a trailing ".0" and very large
// or very small values switch to exponent notation (1e-05, 1e+16).
package quake
