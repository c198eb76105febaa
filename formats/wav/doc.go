// SPDX-License-Identifier: EPL-2.0

// Package wav provides WAV audio file decoding and encoding.
//
// Decoding is backed by github.com/go-audio/wav, so files with extra chunks
// (LIST, fact, cue) and any chunk order decode correctly.
//
// # Supported Formats
//
// Decoding:
//   - integer PCM at 8 (unsigned), 16, 24 and 32 bits
//   - any channel count and sample rate
//
// Encoding:
//   - mono PCM 16-bit
//
// # Decoding WAV Files
//
//	file, _ := os.Open("noise.wav")
//	source, err := wav.Decoder{}.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//	samples, err := audio.ReadAll(source, 4096)
//
// Samples are float32 values in the range [-1.0, 1.0).
//
// # Writing WAV Files
//
// WriteWAV16 takes int16 PCM; WriteMono16 takes normalized float samples
// and clips anything beyond full scale:
//
//	file, _ := os.Create("augmented.wav")
//	err := wav.WriteMono16(file, 16000, samples)
//
// # Error Handling
//
//   - ErrNotWavFile: the input is not a RIFF/WAVE file
//   - ErrUnsupportedEncoding: the file holds float or compressed data
//   - ErrUnsupportedBitDepth: integer PCM at a depth other than 8/16/24/32
package wav
