// SPDX-License-Identifier: EPL-2.0

// Package audio holds the streaming primitives the rest of the module is
// built on.
//
// A Source yields interleaved float32 samples in [-1, 1):
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// ReadSamples returns io.EOF once the stream is exhausted, possibly
// together with the final samples. Decoders in formats/* produce Sources;
// Resampler and MonoMixer wrap them:
//
//	src := audio.NewMonoMixer(audio.NewResampler(decoded, 16000))
//	samples, err := audio.ReadAll(src, 4096)
//
// # Resampler
//
// Resampler converts the rate with Catmull-Rom cubic interpolation over a
// four-frame window. When downsampling, a one-pole lowpass runs ahead of
// the interpolator to tame aliasing. Output length is
// floor(frames * dstRate / srcRate), give or take one frame at the tail.
//
// # MonoMixer
//
// MonoMixer averages every frame to a single channel. Mono input passes
// straight through.
//
// # Registry
//
// Registry maps file extensions to Decoders. Keys are case-insensitive and
// a leading dot is ignored, so Lookup works directly on paths:
//
//	reg := audio.NewRegistry()
//	reg.Register("wav", wav.Decoder{})
//	dec, err := reg.Lookup("noises/Rain.WAV")
//
// Lookup returns ErrUnknownFormat for anything unregistered.
package audio
