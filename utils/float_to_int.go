// SPDX-License-Identifier: EPL-2.0

package utils

// Float32ToInt16 converts a normalized sample to 16-bit PCM. Values outside
// [-1, 1] are clamped, so this is where augmented audio that overshot full
// scale gets clipped on its way to disk.
func Float32ToInt16(x float32) int16 {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}
	// 32767 for the positive max avoids overflow
	return int16(x * 32767.0)
}

// Int16ToFloat32 converts a 16-bit PCM sample to a normalized float32.
func Int16ToFloat32(v int16) float32 {
	return float32(v) / 32768.0
}
