// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"

	"github.com/ik5/audaug/utils"
)

// Resampler streams from src to a target sample rate using cubic
// (Catmull-Rom) interpolation. It works on interleaved samples and keeps
// the channel count. When downsampling, every source frame first passes a
// one-pole low-pass filter to tame aliasing.
type Resampler struct {
	src      Source
	dstRate  int
	step     float64 // source frames consumed per output frame
	channels int

	// window holds frames k-1, k, k+1, k+2; output is interpolated
	// between window[1] and window[2] at fractional position pos.
	window [4][]float32
	have   [4]bool
	pos    float64
	primed bool
	eof    bool

	frame []float32

	lowpass bool
	alpha   float32
	state   []float32
}

func NewResampler(src Source, dstRate int) *Resampler {
	channels := src.Channels()
	step := float64(src.SampleRate()) / float64(dstRate)

	r := &Resampler{
		src:      src,
		dstRate:  dstRate,
		step:     step,
		channels: channels,
		frame:    make([]float32, channels),
		lowpass:  step > 1.0,
		alpha:    0.5,
		state:    make([]float32, channels),
	}
	for i := range r.window {
		r.window[i] = make([]float32, channels)
	}

	return r
}

func (r *Resampler) SampleRate() int { return r.dstRate }
func (r *Resampler) Channels() int   { return r.channels }
func (r *Resampler) BufSize() int    { return r.src.BufSize() }

func (r *Resampler) Close() error {
	if err := r.src.Close(); err != nil {
		return fmt.Errorf("resampler: %w", err)
	}
	return nil
}

// pull reads exactly one frame from the source into dst.
func (r *Resampler) pull(dst []float32) (bool, error) {
	if r.eof {
		return false, nil
	}

	n, err := r.src.ReadSamples(r.frame)
	if err == io.EOF {
		r.eof = true
	} else if err != nil {
		return false, fmt.Errorf("resampler: %w", err)
	}
	if n < r.channels {
		if n == 0 && err == nil {
			r.eof = true
		}
		return false, nil
	}

	copy(dst, r.frame)
	if r.lowpass {
		for c := range r.channels {
			dst[c] = r.alpha*dst[c] + (1-r.alpha)*r.state[c]
			r.state[c] = dst[c]
		}
	}

	return true, nil
}

func (r *Resampler) prime() error {
	r.primed = true

	ok, err := r.pull(r.window[1])
	if err != nil {
		return err
	}
	if !ok {
		return io.EOF
	}
	if r.lowpass {
		// seed the filter with the first frame so it starts without a ramp
		copy(r.state, r.frame)
		copy(r.window[1], r.frame)
	}
	copy(r.window[0], r.window[1])
	r.have[0], r.have[1] = true, true

	for i := 2; i < len(r.window); i++ {
		ok, err := r.pull(r.window[i])
		if err != nil {
			return err
		}
		r.have[i] = ok
		if !ok {
			copy(r.window[i], r.window[i-1])
		}
	}

	return nil
}

func (r *Resampler) advance() error {
	r.window[0], r.window[1], r.window[2], r.window[3] = r.window[1], r.window[2], r.window[3], r.window[0]
	r.have[0], r.have[1], r.have[2] = r.have[1], r.have[2], r.have[3]

	ok, err := r.pull(r.window[3])
	if err != nil {
		return err
	}
	r.have[3] = ok
	if !ok {
		copy(r.window[3], r.window[2])
	}

	return nil
}

// ReadSamples produces interleaved samples at the target rate.
// dst length must be a multiple of the channel count.
func (r *Resampler) ReadSamples(dst []float32) (int, error) {
	if r.channels == 0 || len(dst)%r.channels != 0 {
		return 0, ErrInvalidDstSize
	}

	if !r.primed {
		if err := r.prime(); err != nil {
			return 0, err
		}
	}

	frames := len(dst) / r.channels
	written := 0

	for written < frames {
		for r.pos >= 1.0 {
			if err := r.advance(); err != nil {
				return written * r.channels, err
			}
			r.pos -= 1.0
		}

		if !r.have[1] || !r.have[2] {
			return written * r.channels, io.EOF
		}

		x := float32(r.pos)
		out := dst[written*r.channels : (written+1)*r.channels]
		for c := range out {
			out[c] = utils.CubicInterpolate(r.window[0][c], r.window[1][c], r.window[2][c], r.window[3][c], x)
		}

		written++
		r.pos += r.step
	}

	return written * r.channels, nil
}
