// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"
	"github.com/ik5/audaug/utils"
)

const bitsPerSample = 16

// WriteWAV16 writes a mono 16-bit PCM WAV at sampleRate. samples must be int16 PCM.
// The encoder seeks back to patch the RIFF and data sizes on close, so w must
// be seekable (an *os.File usually is).
func WriteWAV16(w io.WriteSeeker, sampleRate int, samples []int16) error {
	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: 1, SampleRate: sampleRate},
		Data:           make([]int, len(samples)),
		SourceBitDepth: bitsPerSample,
	}
	for i, s := range samples {
		buf.Data[i] = int(s)
	}

	enc := gowav.NewEncoder(w, sampleRate, bitsPerSample, 1, formatPCM)
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("wav encode: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("wav finalize: %w", err)
	}
	return nil
}

// WriteMono16 writes normalized float samples as a mono 16-bit PCM WAV.
// Samples beyond full scale are clipped.
func WriteMono16(w io.WriteSeeker, sampleRate int, samples []float32) error {
	pcm := make([]int16, len(samples))
	for i, s := range samples {
		pcm[i] = utils.Float32ToInt16(s)
	}
	return WriteWAV16(w, sampleRate, pcm)
}
