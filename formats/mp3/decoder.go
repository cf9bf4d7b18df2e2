// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"errors"
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"

	"github.com/oceanobs/hydroseis/signal"
	"github.com/oceanobs/hydroseis/utils"
)

// ErrNotMP3File wraps a decoder construction failure.
var ErrNotMP3File = errors.New("not an MP3 file")

// mp3Reader is an interface over gomp3.Decoder to allow testing.
type mp3Reader interface {
	Read([]byte) (int, error)
	SampleRate() int
}

type source struct {
	dec        mp3Reader
	sampleRate int
	buf        []byte
}

func (s *source) SampleRate() int { return s.sampleRate }

// go-mp3 always produces stereo 16-bit little-endian PCM.
func (s *source) Channels() int { return 2 }
func (s *source) Close() error  { return nil }

func (s *source) ReadSamples(dst []float64) (int, error) {
	bytesNeeded := len(dst) * 2
	if cap(s.buf) < bytesNeeded {
		s.buf = make([]byte, bytesNeeded)
	}
	s.buf = s.buf[:bytesNeeded]

	n, err := s.dec.Read(s.buf)
	if n == 0 {
		if err != nil {
			return 0, err
		}
		return 0, nil
	}

	samples := n / 2
	for i := 0; i < samples; i++ {
		v := int16(uint16(s.buf[2*i]) | uint16(s.buf[2*i+1])<<8)
		dst[i] = utils.Int16Normalize(v)
	}

	return samples, err
}

type Decoder struct{}

func (Decoder) Decode(r io.ReadSeeker) (signal.Source, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotMP3File, err)
	}

	return &source{
		dec:        dec,
		sampleRate: dec.SampleRate(),
	}, nil
}
