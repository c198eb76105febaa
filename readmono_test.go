// SPDX-License-Identifier: EPL-2.0

package audaug

import (
	"errors"
	"math"
	"testing"

	"github.com/ik5/audaug/audio"
	"github.com/ik5/audaug/internal/audiotest"
)

func TestReadMono_Lengths(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		rate       int
		channels   int
		frames     int
		targetRate int
		want       int
	}{
		{"same rate mono", 16000, 1, 16000, 16000, 16000},
		{"same rate stereo", 16000, 2, 16000, 16000, 16000},
		{"downsample stereo", 44100, 2, 44100, 16000, 16000},
		{"downsample to 8k", 44100, 1, 44100, 8000, 8000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			src := audiotest.NewSineSource(tt.rate, tt.channels, tt.frames, 440)
			got, err := ReadMono(src, tt.targetRate, 4096)
			if err != nil {
				t.Fatalf("ReadMono() error = %v", err)
			}
			if len(got) != tt.want {
				t.Errorf("ReadMono() = %d samples, want %d", len(got), tt.want)
			}
		})
	}
}

func TestReadMono_SameRateIsExact(t *testing.T) {
	t.Parallel()

	in := []float32{0.1, -0.2, 0.3, -0.4, 0.5}
	got, err := ReadMono(audiotest.NewSliceSource(22050, 1, in), 22050, 2)
	if err != nil {
		t.Fatalf("ReadMono() error = %v", err)
	}
	if len(got) != len(in) {
		t.Fatalf("ReadMono() = %d samples, want %d", len(got), len(in))
	}
	for i := range in {
		if got[i] != in[i] {
			t.Errorf("sample %d = %v, want %v", i, got[i], in[i])
		}
	}
}

func TestReadMono_AveragesChannels(t *testing.T) {
	t.Parallel()

	in := []float32{1, 0, 0.5, -0.5, -1, 0}
	got, err := ReadMono(audiotest.NewSliceSource(8000, 2, in), 8000, 64)
	if err != nil {
		t.Fatalf("ReadMono() error = %v", err)
	}
	want := []float32{0.5, 0, -0.5}
	for i := range want {
		if math.Abs(float64(got[i]-want[i])) > 1e-7 {
			t.Errorf("sample %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestReadMono_Errors(t *testing.T) {
	t.Parallel()

	src := audiotest.NewSilentSource(8000, 1, 10)

	if _, err := ReadMono(src, 0, 64); !errors.Is(err, ErrInvalidSampleRate) {
		t.Errorf("ReadMono(rate 0) error = %v, want %v", err, ErrInvalidSampleRate)
	}
	if _, err := ReadMono(src, 8000, 0); !errors.Is(err, audio.ErrInvalidBufSize) {
		t.Errorf("ReadMono(buffer 0) error = %v, want %v", err, audio.ErrInvalidBufSize)
	}
}

func TestReadMono_LeavesSourceOpen(t *testing.T) {
	t.Parallel()

	src := audiotest.NewSilentSource(8000, 2, 100)
	if _, err := ReadMono(src, 16000, 64); err != nil {
		t.Fatalf("ReadMono() error = %v", err)
	}
	if src.Closed() {
		t.Error("ReadMono() closed the source")
	}
}

func BenchmarkReadMono(b *testing.B) {
	for b.Loop() {
		src := audiotest.NewSineSource(44100, 2, 44100, 440)
		if _, err := ReadMono(src, 16000, 4096); err != nil {
			b.Fatal(err)
		}
	}
}
