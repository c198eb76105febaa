// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MPEG-1/2 Layer III audio with
// github.com/hajimehoshi/go-mp3.
//
// go-mp3 always produces interleaved stereo, so the returned audio.Source
// reports two channels even for mono files. Downmix with audio.NewMonoMixer:
//
//	src, err := mp3.Decoder{}.Decode(file)
//	if err != nil {
//	    return err
//	}
//	mono := audio.NewMonoMixer(audio.NewResampler(src, 16000))
//	samples, err := audio.ReadAll(mono, 4096)
//
// Decoding only; there is no MP3 encoder.
package mp3
