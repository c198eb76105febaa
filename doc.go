// SPDX-License-Identifier: EPL-2.0

// Package audaug is a toolkit for augmenting speech and audio datasets with
// background noise.
//
// The module is split by concern:
//
//   - audio: the streaming Source contract, decoder Registry, cubic
//     Resampler and MonoMixer
//   - formats/wav, formats/aiff, formats/mp3, formats/vorbis: decoders
//     (and a 16-bit WAV writer)
//   - corpus: discovery of noise files on disk
//   - loader: decoding noise files to mono float32 at a requested rate,
//     with an optional LRU cache
//   - noise: the background-noise transform itself
//   - transform: the pipeline contract plus small building blocks
//
// This package holds ReadMono, the one-call path from a decoded Source to
// the mono float32 signal the noise transform works on:
//
//	src, err := wav.Decoder{}.Decode(file)
//	if err != nil {
//	    return err
//	}
//	samples, err := audaug.ReadMono(src, 16000, 4096)
//
// A complete augmentation:
//
//	paths, _ := corpus.Scan("noises/", loader.DefaultRegistry())
//	bn, err := noise.New(noise.Options{Sounds: paths}, loader.NewFile(nil))
//	if err != nil {
//	    return err
//	}
//	augmented, err := bn.Apply(samples, 16000)
package audaug
