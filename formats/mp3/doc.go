// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MP3 recordings into signal.Source streams. go-mp3
// always emits stereo 16-bit PCM, so the source reports two channels even
// for mono encodes; the mixdown handles it.
package mp3
