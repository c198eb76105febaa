// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"
	"github.com/ik5/audaug/audio"
	"github.com/ik5/audaug/utils"
)

// go-mp3 always emits interleaved stereo 16-bit little endian PCM.
const (
	channels       = 2
	bytesPerSample = 2
)

// byteReader is the part of gomp3.Decoder the source needs, split out for tests.
type byteReader interface {
	Read([]byte) (int, error)
}

type source struct {
	dec        byteReader
	sampleRate int
	buf        []byte
	pending    int // bytes of a split sample carried over from the last read
	pcm        []int
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return channels }
func (s *source) Close() error    { return nil }
func (s *source) BufSize() int    { return cap(s.buf) / bytesPerSample }

func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	need := len(dst) * bytesPerSample
	if cap(s.buf) < need {
		buf := make([]byte, need)
		copy(buf, s.buf[:s.pending])
		s.buf = buf
	}
	s.buf = s.buf[:need]

	n := s.pending
	var err error
	for n < bytesPerSample && err == nil {
		var m int
		m, err = s.dec.Read(s.buf[n:need])
		n += m
	}
	if err != nil && !errors.Is(err, io.EOF) {
		return 0, fmt.Errorf("mp3: %w", err)
	}

	samples := n / bytesPerSample
	if cap(s.pcm) < samples {
		s.pcm = make([]int, samples)
	}
	s.pcm = s.pcm[:samples]
	for i := range samples {
		s.pcm[i] = int(int16(binary.LittleEndian.Uint16(s.buf[i*bytesPerSample:])))
	}
	utils.PCMToFloat32(dst[:samples], s.pcm, 16, false)

	s.pending = n - samples*bytesPerSample
	copy(s.buf, s.buf[samples*bytesPerSample:n])

	return samples, err
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("mp3: %w", err)
	}

	return &source{
		dec:        dec,
		sampleRate: dec.SampleRate(),
		buf:        make([]byte, 8192),
	}, nil
}
