// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis audio with github.com/jfreymuth/oggvorbis.
//
// The decoder produces float32 samples natively, interleaved across the
// stream's channels:
//
//	src, err := vorbis.Decoder{}.Decode(file)
//	if err != nil {
//	    return err
//	}
//	samples, err := audio.ReadAll(audio.NewMonoMixer(src), src.BufSize())
//
// ReadSamples needs a destination that holds at least one whole frame;
// otherwise it returns audio.ErrInvalidDstSize.
package vorbis
