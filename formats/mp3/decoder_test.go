package mp3

import (
	"encoding/binary"
	"io"
	"math"
	"testing"
)

// fakeMP3 serves a fixed block of 16-bit little-endian PCM bytes.
type fakeMP3 struct {
	data []byte
	off  int
	rate int
}

func (f *fakeMP3) SampleRate() int { return f.rate }

func (f *fakeMP3) Read(p []byte) (int, error) {
	if f.off >= len(f.data) {
		return 0, io.EOF
	}
	n := copy(p, f.data[f.off:])
	f.off += n
	return n, nil
}

func TestSource_ReadSamples(t *testing.T) {
	t.Parallel()

	pcm := []int16{0, 16384, -16384, 32767, -32768, 12345}
	data := make([]byte, len(pcm)*2)
	for i, v := range pcm {
		binary.LittleEndian.PutUint16(data[2*i:], uint16(v))
	}

	src := &source{dec: &fakeMP3{data: data, rate: 44100}, sampleRate: 44100}

	if src.SampleRate() != 44100 {
		t.Errorf("SampleRate() = %d, want 44100", src.SampleRate())
	}
	if src.Channels() != 2 {
		t.Errorf("Channels() = %d, want 2", src.Channels())
	}

	dst := make([]float64, len(pcm))
	n, err := src.ReadSamples(dst)
	if err != nil && err != io.EOF {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	if n != len(pcm) {
		t.Fatalf("ReadSamples() = %d, want %d", n, len(pcm))
	}

	for i, v := range pcm {
		want := float64(v) / 32768.0
		if math.Abs(dst[i]-want) > 1e-12 {
			t.Errorf("dst[%d] = %v, want %v", i, dst[i], want)
		}
	}
}
