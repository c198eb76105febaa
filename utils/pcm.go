// SPDX-License-Identifier: EPL-2.0

package utils

// PCMToFloat32 normalizes signed integer PCM of the given bit depth into
// dst. When unsigned8 is set, 8-bit input is treated as offset binary
// (centred on 128), as WAV stores it.
func PCMToFloat32(dst []float32, src []int, bitDepth int, unsigned8 bool) {
	if bitDepth == 8 && unsigned8 {
		for i, v := range src {
			dst[i] = float32(v-128) / 128.0
		}
		return
	}

	if bitDepth < 8 || bitDepth > 32 {
		bitDepth = 16
	}
	scale := 1 / float32(int64(1)<<(bitDepth-1))
	for i, v := range src {
		dst[i] = float32(v) * scale
	}
}
