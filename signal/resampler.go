// SPDX-License-Identifier: EPL-2.0

package signal

import (
	"context"
	"fmt"
	"math"
)

const (
	// DefaultTargetRate is the archival output rate in Hz.
	DefaultTargetRate = 300
	// DefaultChunkSize bounds how many source samples are filtered at a
	// time, so multi-hour recordings never need a second full-size buffer.
	DefaultChunkSize = 1000000
	// DefaultFilterTaps is the anti-alias FIR length.
	DefaultFilterTaps = 101
)

// ResamplerConfig controls the decimation pipeline. Zero values take the
// package defaults.
type ResamplerConfig struct {
	TargetRate int
	ChunkSize  int
	FilterTaps int
}

func (c ResamplerConfig) withDefaults() ResamplerConfig {
	if c.TargetRate == 0 {
		c.TargetRate = DefaultTargetRate
	}
	if c.ChunkSize == 0 {
		c.ChunkSize = DefaultChunkSize
	}
	if c.FilterTaps == 0 {
		c.FilterTaps = DefaultFilterTaps
	}
	return c
}

// Resampler normalizes, low-pass filters, and decimates a Signal to the
// target rate in bounded-memory chunks. The anti-alias cutoff is the Nyquist
// frequency of the OUTPUT rate, so nothing above target/2 survives into the
// decimated sequence.
type Resampler struct {
	cfg ResamplerConfig
}

func NewResampler(cfg ResamplerConfig) *Resampler {
	return &Resampler{cfg: cfg.withDefaults()}
}

func (r *Resampler) TargetRate() int { return r.cfg.TargetRate }

// Resample runs the full pipeline on sig. The input slice is not modified;
// normalization scales samples on the way into the filter. ctx is checked at
// every chunk boundary, which is also where a batch abort takes effect.
func (r *Resampler) Resample(ctx context.Context, sig *Signal) (*Resampled, error) {
	if err := r.check(sig); err != nil {
		return nil, err
	}

	peak := 0.0
	for _, s := range sig.Samples {
		if a := math.Abs(s); a > peak {
			peak = a
		}
	}
	if peak == 0 {
		return nil, ErrSilentSignal
	}
	scale := 1 / peak

	taps := DesignLowPass(r.cfg.FilterTaps, float64(r.cfg.TargetRate)/2, float64(sig.Rate))
	filter := newFIRFilter(taps)
	dec := newDecimator(float64(sig.Rate) / float64(r.cfg.TargetRate))

	estimate := int(float64(len(sig.Samples))*float64(r.cfg.TargetRate)/float64(sig.Rate)) + 1
	out := make([]float64, 0, estimate)

	chunkIn := make([]float64, r.cfg.ChunkSize)
	chunkOut := make([]float64, r.cfg.ChunkSize)

	for off := 0; off < len(sig.Samples); off += r.cfg.ChunkSize {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("resampling aborted: %w", err)
		}

		end := min(off+r.cfg.ChunkSize, len(sig.Samples))
		n := end - off

		for i, s := range sig.Samples[off:end] {
			chunkIn[i] = s * scale
		}

		filter.Process(chunkIn[:n], chunkOut[:n])
		out = dec.process(chunkOut[:n], out)
	}

	out = dec.flush(out)

	return &Resampled{Samples: out, Rate: float64(r.cfg.TargetRate)}, nil
}

func (r *Resampler) check(sig *Signal) error {
	if err := CheckBounds(sig.Rate, len(sig.Samples)); err != nil {
		return err
	}
	if r.cfg.TargetRate <= 0 {
		return fmt.Errorf("%w: got %d Hz", ErrInvalidTargetRate, r.cfg.TargetRate)
	}
	if r.cfg.TargetRate >= sig.Rate {
		return fmt.Errorf("%w: %d Hz >= %d Hz", ErrTargetNotBelowSource, r.cfg.TargetRate, sig.Rate)
	}
	return nil
}

// decimator picks output samples at fractional source positions k*ratio,
// interpolating linearly between neighboring filtered samples. Positions are
// global to the whole recording, and the final sample of each chunk is kept
// so an output that straddles a boundary is computed exactly as it would be
// in a single unchunked pass.
type decimator struct {
	ratio   float64
	nextOut int64 // index k of the next output sample
	base    int64 // global index of the first sample in the current chunk
	prev    float64
}

func newDecimator(ratio float64) *decimator {
	return &decimator{ratio: ratio}
}

func (d *decimator) process(chunk []float64, out []float64) []float64 {
	end := d.base + int64(len(chunk))

	for {
		pos := float64(d.nextOut) * d.ratio
		i := int64(math.Floor(pos))
		if i+1 >= end {
			break
		}

		frac := pos - float64(i)
		var y0 float64
		if i < d.base {
			y0 = d.prev
		} else {
			y0 = chunk[i-d.base]
		}
		y1 := chunk[i+1-d.base]

		out = append(out, y0+frac*(y1-y0))
		d.nextOut++
	}

	d.base = end
	if len(chunk) > 0 {
		d.prev = chunk[len(chunk)-1]
	}
	return out
}

// flush emits any output that lands exactly on the final source sample,
// which the chunk loop cannot produce because it always interpolates toward
// the next sample.
func (d *decimator) flush(out []float64) []float64 {
	pos := float64(d.nextOut) * d.ratio
	i := int64(math.Floor(pos))
	if i == d.base-1 && pos-float64(i) < 1e-9 {
		out = append(out, d.prev)
		d.nextOut++
	}
	return out
}
