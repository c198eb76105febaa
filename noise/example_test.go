// SPDX-License-Identifier: EPL-2.0

package noise_test

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/ik5/audaug/internal/audiotest"
	"github.com/ik5/audaug/noise"
	"github.com/ik5/audaug/transform"
)

// memory is a Loader over in-memory signals.
type memory map[string][]float32

func (m memory) Load(path string, _ int) ([]float32, error) {
	s, ok := m[path]
	if !ok {
		return nil, fmt.Errorf("%s: not found", path)
	}
	return slices.Clone(s), nil
}

func Example() {
	noises := memory{
		"fan.wav":     audiotest.WhiteNoise(1, 0.2, 8000),
		"traffic.wav": audiotest.WhiteNoise(2, 0.4, 24000),
	}

	bn, err := noise.New(noise.Options{
		Sounds: []string{"fan.wav", "traffic.wav"},
		MinDB:  noise.Float64(10),
		MaxDB:  noise.Float64(20),
		P:      noise.Float64(1),
	}, noises, noise.WithSeed(42))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	speech := audiotest.Sine(220, 16000)
	out, err := bn.Apply(speech, 16000)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	p, state := bn.Parameters()
	fmt.Println(len(out), state, p.LoudnessDB >= 10 && p.LoudnessDB <= 20)
	// Output: 16000 randomized true
}

func ExampleTransform_FreezeParameters() {
	noises := memory{"hum.wav": audiotest.WhiteNoise(3, 0.3, 16000)}

	bn, err := noise.New(noise.Options{Sounds: []string{"hum.wav"}, P: noise.Float64(1)}, noises,
		noise.WithSeed(7), noise.WithLogger(slog.New(slog.DiscardHandler)))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	speech := audiotest.Sine(100, 16000)
	plain, _ := bn.Apply(speech, 16000)

	bn.FreezeParameters()
	bn.SetNoiseTransform(transform.Reverse{})
	reversed, _ := bn.Apply(speech, 16000)

	fmt.Println(slices.Equal(plain, reversed))
	// Output: false
}
