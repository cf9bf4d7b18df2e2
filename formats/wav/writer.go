// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"

	"github.com/oceanobs/hydroseis/utils"
)

// Write16 writes normalized mono samples as a 16-bit PCM WAV at sampleRate.
// This is the intermediate container handed to the external FLAC encoder.
func Write16(ws io.WriteSeeker, sampleRate int, samples []float64) error {
	enc := gowav.NewEncoder(ws, sampleRate, 16, 1, 1)

	// Convert and write in bounded chunks so a long recording never needs a
	// second full-size integer buffer.
	const chunkSize = 8192
	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: 1, SampleRate: sampleRate},
		SourceBitDepth: 16,
		Data:           make([]int, 0, chunkSize),
	}

	for off := 0; off < len(samples); off += chunkSize {
		end := min(off+chunkSize, len(samples))

		buf.Data = buf.Data[:end-off]
		for i, s := range samples[off:end] {
			buf.Data[i] = int(utils.Float64ToInt16(s))
		}

		if err := enc.Write(buf); err != nil {
			return fmt.Errorf("writing PCM chunk: %w", err)
		}
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("finalizing WAV: %w", err)
	}
	return nil
}
