package signal

import (
	"errors"
	"math"
	"testing"
	"time"
)

func TestCheckBounds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		rate        int
		sampleCount int
		wantErr     error
	}{
		{"typical hydrophone rate", 48000, 48000 * 60, nil},
		{"lowest accepted rate", 8000, 8000, nil},
		{"highest accepted rate", 400000, 400000, nil},
		{"rate too high", 500000, 500000, ErrSampleRateOutOfRange},
		{"rate too low", 4000, 4000, ErrSampleRateOutOfRange},
		{"exactly 24 hours", 8000, 8000 * 86400, nil},
		{"25 hour recording", 8000, 8000 * 90000, ErrDurationExceeded},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := CheckBounds(tt.rate, tt.sampleCount)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("CheckBounds(%d, %d) = %v, want %v", tt.rate, tt.sampleCount, err, tt.wantErr)
			}
		})
	}
}

func TestSignal_Duration(t *testing.T) {
	t.Parallel()

	sig := &Signal{Samples: make([]float64, 48000*10), Rate: 48000}
	if got := sig.Duration(); got != 10*time.Second {
		t.Errorf("Duration() = %v, want 10s", got)
	}
	if got := sig.Seconds(); got != 10.0 {
		t.Errorf("Seconds() = %v, want 10", got)
	}
}

func TestCollect_Mono(t *testing.T) {
	t.Parallel()

	src := newConstantSource(16000, 1, 1000, 0.25)
	sig, err := Collect(src)
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}

	if sig.Rate != 16000 {
		t.Errorf("Rate = %d, want 16000", sig.Rate)
	}
	if len(sig.Samples) != 1000 {
		t.Fatalf("len(Samples) = %d, want 1000", len(sig.Samples))
	}
	for i, s := range sig.Samples {
		if s != 0.25 {
			t.Fatalf("Samples[%d] = %v, want 0.25", i, s)
		}
	}
}

func TestCollect_MixesToMono(t *testing.T) {
	t.Parallel()

	// Left channel 1.0, right channel 0.0 — the mixdown averages to 0.5.
	src := newMockSource(16000, 2, 500, func(sample, channel int) float64 {
		if channel == 0 {
			return 1.0
		}
		return 0.0
	})

	sig, err := Collect(src)
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}
	if len(sig.Samples) != 500 {
		t.Fatalf("len(Samples) = %d, want 500", len(sig.Samples))
	}
	for i, s := range sig.Samples {
		if math.Abs(s-0.5) > 1e-12 {
			t.Fatalf("Samples[%d] = %v, want 0.5", i, s)
		}
	}
}

func TestCollect_RejectsBadRate(t *testing.T) {
	t.Parallel()

	src := newConstantSource(4000, 1, 10, 0.5)
	if _, err := Collect(src); !errors.Is(err, ErrSampleRateOutOfRange) {
		t.Errorf("Collect() error = %v, want ErrSampleRateOutOfRange", err)
	}
}

func TestMonoMixer_Stereo(t *testing.T) {
	t.Parallel()

	src := newMockSource(8000, 2, 100, func(sample, channel int) float64 {
		return float64(channel) // 0.0 left, 1.0 right
	})
	mixer := NewMonoMixer(src)

	if mixer.Channels() != 1 {
		t.Errorf("Channels() = %d, want 1", mixer.Channels())
	}

	buf := make([]float64, 100)
	n, _ := mixer.ReadSamples(buf)
	if n != 100 {
		t.Fatalf("ReadSamples() = %d, want 100", n)
	}
	for i := 0; i < n; i++ {
		if buf[i] != 0.5 {
			t.Fatalf("buf[%d] = %v, want 0.5", i, buf[i])
		}
	}
}
