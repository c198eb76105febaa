// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// Sample is the set of floating point sample representations the level
// helpers accept.
type Sample interface {
	~float32 | ~float64
}

// RMS returns the root-mean-square of samples, accumulated in float64.
// An empty slice has an RMS of 0.
func RMS[S Sample](samples []S) float64 {
	if len(samples) == 0 {
		return 0
	}

	var sum float64
	for _, s := range samples {
		v := float64(s)
		sum += v * v
	}

	return math.Sqrt(sum / float64(len(samples)))
}

// DecibelsToAmplitude converts a level in dB to a linear amplitude ratio.
func DecibelsToAmplitude(db float64) float64 {
	return math.Pow(10, db/20)
}

// AmplitudeToDecibels converts a linear amplitude ratio to dB.
// Non-positive ratios map to -Inf.
func AmplitudeToDecibels(ratio float64) float64 {
	if ratio <= 0 {
		return math.Inf(-1)
	}
	return 20 * math.Log10(ratio)
}
