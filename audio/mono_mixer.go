// SPDX-License-Identifier: EPL-2.0

package audio

import "fmt"

// MonoMixer downmixes an interleaved multi-channel Source to a single
// channel by averaging every frame. A mono source is passed through
// untouched.
type MonoMixer struct {
	src     Source
	scratch []float32
}

func NewMonoMixer(src Source) *MonoMixer {
	return &MonoMixer{
		src:     src,
		scratch: make([]float32, 0, 8192),
	}
}

func (m *MonoMixer) SampleRate() int { return m.src.SampleRate() }
func (m *MonoMixer) Channels() int   { return 1 }
func (m *MonoMixer) BufSize() int    { return m.src.BufSize() }

func (m *MonoMixer) Close() error {
	if err := m.src.Close(); err != nil {
		return fmt.Errorf("mono mixer: %w", err)
	}
	return nil
}

// ReadSamples fills dst with up to len(dst) mono frames.
func (m *MonoMixer) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	channels := m.src.Channels()
	if channels <= 1 {
		return m.src.ReadSamples(dst)
	}

	want := len(dst) * channels
	if cap(m.scratch) < want {
		m.scratch = make([]float32, want)
	}
	m.scratch = m.scratch[:want]

	n, err := m.src.ReadSamples(m.scratch)
	if n == 0 {
		return 0, err
	}

	frames := n / channels
	scale := 1 / float32(channels)

	if channels == 2 {
		for f := range frames {
			dst[f] = (m.scratch[2*f] + m.scratch[2*f+1]) * 0.5
		}
		return frames, err
	}

	for f := range frames {
		frame := m.scratch[f*channels : (f+1)*channels]
		var sum float32
		for _, v := range frame {
			sum += v
		}
		dst[f] = sum * scale
	}

	return frames, err
}
