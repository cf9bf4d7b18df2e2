package timestamp

import (
	"errors"
	"testing"
	"time"
)

func TestParseOffset(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    time.Duration
		wantErr bool
	}{
		{input: "UTC+8", want: 8 * time.Hour},
		{input: "UTC-3", want: -3 * time.Hour},
		{input: "UTC+0", want: 0},
		{input: "UTC-0", want: 0},
		{input: "UTC+05:30", want: 5*time.Hour + 30*time.Minute},
		{input: "UTC-03:30", want: -(3*time.Hour + 30*time.Minute)},
		{input: "UTC+23", want: 23 * time.Hour},
		{input: "UTC+24", wantErr: true},
		{input: "UTC8", wantErr: true},
		{input: "UTC+8:5", wantErr: true},
		{input: "UTC+08:60", wantErr: true},
		{input: "GMT+8", wantErr: true},
		{input: "", wantErr: true},
		{input: "+8", wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			got, err := ParseOffset(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrBadOffset) {
					t.Errorf("ParseOffset(%q) error = %v, want ErrBadOffset", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseOffset(%q) error = %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseOffset(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestComputeWindow(t *testing.T) {
	t.Parallel()

	local := time.Date(2024, 5, 17, 9, 25, 33, 0, time.UTC)
	offset, err := ParseOffset("UTC+8")
	if err != nil {
		t.Fatalf("ParseOffset() error = %v", err)
	}

	duration := 2 * time.Hour
	w := ComputeWindow(local, duration, offset, false)

	wantStart := time.Date(2024, 5, 17, 1, 25, 33, 0, time.UTC)
	if !w.Start.Equal(wantStart) {
		t.Errorf("Start = %v, want %v", w.Start, wantStart)
	}
	if !w.End.Equal(wantStart.Add(duration)) {
		t.Errorf("End = %v, want %v", w.End, wantStart.Add(duration))
	}
	if w.Degraded {
		t.Error("Degraded = true, want false")
	}
}

func TestComputeWindow_EndIsStartPlusDuration(t *testing.T) {
	t.Parallel()

	// duration = sample count / original rate, exactly.
	samples, rate := 479993, 48000
	duration := time.Duration(samples) * time.Second / time.Duration(rate)

	local := time.Date(2018, 7, 26, 14, 12, 41, 0, time.UTC)
	w := ComputeWindow(local, duration, -2*time.Hour, false)

	if got := w.End.Sub(w.Start); got != duration {
		t.Errorf("End - Start = %v, want %v", got, duration)
	}
	if !w.Start.Equal(local.Add(2 * time.Hour)) {
		t.Errorf("Start = %v, want local minus negative offset", w.Start)
	}
}
