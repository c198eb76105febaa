// SPDX-License-Identifier: EPL-2.0

// Package transform defines the contract shared by waveform augmentations
// and a few small building blocks around it.
//
// Transforms work on mono float32 signals. They return a new slice and
// leave the input untouched.
package transform

import "fmt"

// Transform augments a mono signal sampled at sampleRate.
type Transform interface {
	Apply(samples []float32, sampleRate int) ([]float32, error)
}

// Func adapts an ordinary function to Transform.
type Func func(samples []float32, sampleRate int) ([]float32, error)

func (f Func) Apply(samples []float32, sampleRate int) ([]float32, error) {
	return f(samples, sampleRate)
}

// Reverse plays the signal backwards.
type Reverse struct{}

func (Reverse) Apply(samples []float32, _ int) ([]float32, error) {
	out := make([]float32, len(samples))
	for i, v := range samples {
		out[len(samples)-1-i] = v
	}
	return out, nil
}

// Gain scales the signal by a fixed linear factor.
type Gain float32

func (g Gain) Apply(samples []float32, _ int) ([]float32, error) {
	out := make([]float32, len(samples))
	for i, v := range samples {
		out[i] = v * float32(g)
	}
	return out, nil
}

// Compose runs transforms in order, feeding each one the previous output.
type Compose []Transform

func (c Compose) Apply(samples []float32, sampleRate int) ([]float32, error) {
	out := samples
	for i, t := range c {
		var err error
		out, err = t.Apply(out, sampleRate)
		if err != nil {
			return nil, fmt.Errorf("compose step %d: %w", i, err)
		}
	}
	if len(c) == 0 {
		out = append([]float32(nil), samples...)
	}
	return out, nil
}
