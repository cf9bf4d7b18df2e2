// SPDX-License-Identifier: EPL-2.0

// Package wav decodes WAV recordings into signal.Source streams and writes
// the 16-bit intermediate WAV the external FLAC encoder consumes. PCM of 8,
// 16, 24, and 32 bit depth is accepted on input.
package wav
