// SPDX-License-Identifier: EPL-2.0

package audaug

import (
	"fmt"

	"github.com/ik5/audaug/audio"
)

// ReadMono drains src into a mono float32 signal at targetRate.
//
// The source is resampled with the cubic audio.Resampler only when its rate
// differs from targetRate, so same-rate input is returned sample exact.
// Channels are averaged with audio.MonoMixer. bufferSize is the read chunk
// in samples; 4096 is a reasonable default.
//
// ReadMono does not close src.
func ReadMono(src audio.Source, targetRate, bufferSize int) ([]float32, error) {
	if targetRate <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSampleRate, targetRate)
	}

	var chain audio.Source = src
	if src.SampleRate() != targetRate {
		chain = audio.NewResampler(chain, targetRate)
	}
	if chain.Channels() > 1 {
		chain = audio.NewMonoMixer(chain)
	}

	samples, err := audio.ReadAll(chain, bufferSize)
	if err != nil {
		return nil, fmt.Errorf("read mono: %w", err)
	}
	return samples, nil
}
