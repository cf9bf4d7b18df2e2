// SPDX-License-Identifier: EPL-2.0

package signal

import (
	"fmt"
	"io"
	"time"
)

const (
	// MinSampleRate and MaxSampleRate bound the accepted input rates.
	MinSampleRate = 8000
	MaxSampleRate = 400000
	// MaxDuration caps the accepted recording length.
	MaxDuration = 24 * time.Hour
)

// Signal is a fully loaded mono recording at its original sample rate.
// It is owned by the pipeline invocation that loaded it and is discarded
// once the resampled output exists.
type Signal struct {
	Samples []float64
	Rate    int
}

// Duration is the elapsed time covered by the recording, computed from the
// original sample count and rate. Integer math keeps it exact for the
// rates this tool accepts.
func (s *Signal) Duration() time.Duration {
	return time.Duration(len(s.Samples)) * time.Second / time.Duration(s.Rate)
}

// Seconds is Duration expressed as a float, for rate arithmetic.
func (s *Signal) Seconds() float64 {
	return float64(len(s.Samples)) / float64(s.Rate)
}

// Resampled is the decimated output sequence plus the rate it achieved.
type Resampled struct {
	Samples []float64
	// Rate is the achieved output rate. The fractional-stride decimator
	// hits the nominal target exactly, so this equals the configured
	// target for every accepted input.
	Rate float64
}

func (r *Resampled) Duration() time.Duration {
	return time.Duration(float64(len(r.Samples)) / r.Rate * float64(time.Second))
}

// CheckBounds rejects implausible recordings before any processing: sample
// rates outside the accepted range and durations (sample count over rate)
// past 24 hours.
func CheckBounds(rate, sampleCount int) error {
	if rate < MinSampleRate || rate > MaxSampleRate {
		return fmt.Errorf("%w: got %d Hz", ErrSampleRateOutOfRange, rate)
	}
	if sampleCount > rate*int(MaxDuration/time.Second) {
		return fmt.Errorf("%w: %d samples at %d Hz", ErrDurationExceeded, sampleCount, rate)
	}
	return nil
}

// Collect drains src into a Signal, mixing multi-channel input down to mono
// and rejecting out-of-range sample rates and over-long recordings before
// the rest of the pipeline runs. The rate check happens before the first
// read; the duration check happens during the load so an implausibly long
// recording fails without being held in memory past the 24 h mark.
func Collect(src Source) (*Signal, error) {
	rate := src.SampleRate()
	if err := CheckBounds(rate, 0); err != nil {
		return nil, err
	}

	mono := src
	if src.Channels() > 1 {
		mono = NewMonoMixer(src)
	}

	maxSamples := rate * int(MaxDuration/time.Second)
	samples := make([]float64, 0, 1<<20)
	buf := make([]float64, 65536)

	for {
		n, err := mono.ReadSamples(buf)
		if n > 0 {
			samples = append(samples, buf[:n]...)
			if len(samples) > maxSamples {
				return nil, fmt.Errorf("%w: %d samples at %d Hz",
					ErrDurationExceeded, len(samples), rate)
			}
		}

		if err == io.EOF {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("reading samples: %w", err)
		}
	}

	return &Signal{Samples: samples, Rate: rate}, nil
}
