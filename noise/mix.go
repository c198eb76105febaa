// SPDX-License-Identifier: EPL-2.0

package noise

import (
	"github.com/ik5/audaug/utils"
)

// SilenceThreshold is the noise RMS below which a segment counts as
// digital silence and is not mixed.
const SilenceThreshold = 1e-9

// Gain returns the linear factor that brings noise with RMS noiseRMS to the
// requested loudness. In Relative mode loudnessDB is the SNR against a
// signal with RMS cleanRMS; in Absolute mode it is the target noise RMS in
// dBFS. noiseRMS must be at least SilenceThreshold.
func Gain(cleanRMS, noiseRMS float64, mode Mode, loudnessDB float64) float64 {
	target := utils.DecibelsToAmplitude(loudnessDB)
	if mode == Relative {
		target = cleanRMS / target
	}
	return target / noiseRMS
}

// Mix returns clean[i] + gain*noise[i] for every i. The result is not
// clipped. noise must be at least as long as clean.
func Mix[S utils.Sample](clean, noise []S, gain float64) []S {
	out := make([]S, len(clean))
	for i, v := range clean {
		out[i] = S(float64(v) + gain*float64(noise[i]))
	}
	return out
}
