// SPDX-License-Identifier: EPL-2.0

package signal

import "math"

// DesignLowPass returns the coefficients of a Hamming-windowed sinc FIR
// low-pass filter with unity DC gain. cutoff and rate are in Hz; the filter
// is designed once per recording, from the original and target rates, and
// never depends on the chunk size.
func DesignLowPass(numTaps int, cutoff, rate float64) []float64 {
	taps := make([]float64, numTaps)
	fc := cutoff / rate // cycles per sample
	mid := float64(numTaps-1) / 2

	sum := 0.0
	for k := range taps {
		x := float64(k) - mid

		var sinc float64
		if x == 0 {
			sinc = 2 * fc
		} else {
			sinc = math.Sin(2*math.Pi*fc*x) / (math.Pi * x)
		}

		window := 0.54 - 0.46*math.Cos(2*math.Pi*float64(k)/float64(numTaps-1))
		taps[k] = sinc * window
		sum += taps[k]
	}

	// Unity gain at DC
	for k := range taps {
		taps[k] /= sum
	}

	return taps
}

// firFilter applies an FIR filter to a stream of chunks. The delay line
// holds the last numTaps-1 input samples so the output across a chunk
// boundary is identical to filtering the whole stream at once.
type firFilter struct {
	taps  []float64
	delay []float64
}

func newFIRFilter(taps []float64) *firFilter {
	return &firFilter{
		taps:  taps,
		delay: make([]float64, len(taps)-1),
	}
}

// Process filters in into out (same length). The first len(delay) samples of
// history come from the previous chunk; a fresh filter starts from zeros,
// matching a direct-form convolution over the full signal.
func (f *firFilter) Process(in, out []float64) {
	nd := len(f.delay)

	for n := range in {
		acc := 0.0
		for k, tap := range f.taps {
			idx := n - k
			if idx >= 0 {
				acc += tap * in[idx]
			} else if -idx <= nd {
				acc += tap * f.delay[nd+idx]
			}
		}
		out[n] = acc
	}

	// Carry the tail of this chunk into the delay line.
	if len(in) >= nd {
		copy(f.delay, in[len(in)-nd:])
	} else {
		copy(f.delay, f.delay[len(in):])
		copy(f.delay[nd-len(in):], in)
	}
}
