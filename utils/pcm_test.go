// SPDX-License-Identifier: EPL-2.0

package utils

import "testing"

func TestPCMToFloat32(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		src       []int
		bitDepth  int
		unsigned8 bool
		want      []float32
	}{
		{"8-bit unsigned", []int{0, 64, 128, 192}, 8, true, []float32{-1, -0.5, 0, 0.5}},
		{"8-bit signed", []int{-128, -64, 0, 64}, 8, false, []float32{-1, -0.5, 0, 0.5}},
		{"16-bit", []int{-32768, -16384, 0, 16384}, 16, false, []float32{-1, -0.5, 0, 0.5}},
		{"24-bit", []int{-8388608, 4194304}, 24, false, []float32{-1, 0.5}},
		{"32-bit", []int{-2147483648, 1073741824}, 32, false, []float32{-1, 0.5}},
		{"bogus depth falls back to 16", []int{16384}, 0, false, []float32{0.5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := make([]float32, len(tt.src))
			PCMToFloat32(got, tt.src, tt.bitDepth, tt.unsigned8)
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("got[%d] = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}
