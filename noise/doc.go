// SPDX-License-Identifier: EPL-2.0

// Package noise mixes background noise recordings into audio signals.
//
// For each call a Transform decides whether to apply (probability P),
// picks a noise file, samples a loudness from [MinDB, MaxDB] and a crop
// position. The noise is loaded at the signal's sample rate, cropped or
// looped to the signal's length, scaled and added:
//
//	bn, err := noise.New(noise.Options{
//	    Sounds: paths,
//	    MinDB:  noise.Float64(10),
//	    MaxDB:  noise.Float64(20),
//	    P:      noise.Float64(1),
//	}, loader.NewFile(nil), noise.WithSeed(42))
//	if err != nil {
//	    return err
//	}
//	out, err := bn.Apply(samples, 16000)
//
// # Loudness
//
// In Relative mode (the default) the loudness is a signal-to-noise ratio:
// the noise is scaled to RMS(signal) / 10^(dB/20). In Absolute mode it is
// the noise level in dBFS: the noise is scaled to an RMS of 10^(dB/20).
// Defaults are 3 to 30 dB SNR and -45 to -15 dBFS.
//
// Noise whose RMS is below SilenceThreshold cannot be scaled; the input
// is returned unchanged and a SilenceWarning is raised.
//
// # Reproducibility
//
// RandomizeParameters is the only consumer of randomness. FreezeParameters
// keeps the current record for every following Apply, which allows A/B
// comparisons such as swapping the noise transform while holding the
// noise file and loudness fixed. MarshalBinary and Restore carry an
// instance, random state included, across processes.
//
// # Configuration
//
// Options decode from YAML with LoadOptions. The deprecated
// min_snr_in_db/max_snr_in_db keys still work and raise a
// DeprecationWarning; mixing them with min_db/max_db is an error.
package noise
