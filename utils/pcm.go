// SPDX-License-Identifier: EPL-2.0

package utils

// Float64ToInt16 converts a normalized sample in [-1, 1] to 16-bit PCM,
// clamping out-of-range values.
func Float64ToInt16(x float64) int16 {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	// Use 32767 for positive max to avoid overflow
	return int16(x * 32767.0)
}

// Int16Normalize converts a 16-bit PCM value to a float64 in [-1, 1].
func Int16Normalize(v int16) float64 {
	return float64(v) / 32768.0
}

// IntNormalize converts a PCM value of the given bit depth to [-1, 1].
func IntNormalize(v int, bitDepth int) float64 {
	return float64(v) / float64(int64(1)<<(bitDepth-1))
}
