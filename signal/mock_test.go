package signal

import (
	"io"
	"math"
)

// mockSource generates deterministic waveforms for tests. It implements the
// Source interface.
type mockSource struct {
	sampleRate   int
	channels     int
	totalSamples int // per channel
	generated    int // per channel
	waveform     func(sample int, channel int) float64
}

func newMockSource(sampleRate, channels, totalSamples int, waveform func(sample int, channel int) float64) *mockSource {
	return &mockSource{
		sampleRate:   sampleRate,
		channels:     channels,
		totalSamples: totalSamples,
		waveform:     waveform,
	}
}

// newSineSource generates a sine wave of the given frequency.
func newSineSource(sampleRate, channels, totalSamples int, frequency float64) *mockSource {
	return newMockSource(sampleRate, channels, totalSamples, func(sample int, channel int) float64 {
		t := float64(sample) / float64(sampleRate)
		return math.Sin(2 * math.Pi * frequency * t)
	})
}

// newConstantSource generates a constant value.
func newConstantSource(sampleRate, channels, totalSamples int, value float64) *mockSource {
	return newMockSource(sampleRate, channels, totalSamples, func(sample int, channel int) float64 {
		return value
	})
}

func (m *mockSource) SampleRate() int { return m.sampleRate }
func (m *mockSource) Channels() int   { return m.channels }
func (m *mockSource) Close() error    { return nil }

func (m *mockSource) ReadSamples(dst []float64) (int, error) {
	if m.generated >= m.totalSamples {
		return 0, io.EOF
	}

	frames := len(dst) / m.channels
	remaining := m.totalSamples - m.generated
	if frames > remaining {
		frames = remaining
	}

	for f := 0; f < frames; f++ {
		for c := 0; c < m.channels; c++ {
			dst[f*m.channels+c] = m.waveform(m.generated+f, c)
		}
	}
	m.generated += frames

	if m.generated >= m.totalSamples {
		return frames * m.channels, io.EOF
	}
	return frames * m.channels, nil
}

// sineSignal builds a fully loaded Signal directly, bypassing Collect.
func sineSignal(rate, totalSamples int, frequency, amplitude float64) *Signal {
	samples := make([]float64, totalSamples)
	for i := range samples {
		t := float64(i) / float64(rate)
		samples[i] = amplitude * math.Sin(2*math.Pi*frequency*t)
	}
	return &Signal{Samples: samples, Rate: rate}
}
