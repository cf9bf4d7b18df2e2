// SPDX-License-Identifier: EPL-2.0

package flacenc

import (
	"context"
	"errors"
	"reflect"
	"testing"
)

func TestBuildArgsTagsSorted(t *testing.T) {
	t.Parallel()

	tags := map[string]string{
		"title":                 "Buoy 7",
		"initial_sampling_rate": "48000",
		"time_coverage_start":   "2024-05-17T01:25:33Z",
	}

	got := buildArgs("in.wav", "out.flac", tags)
	want := []string{
		"-hide_banner", "-loglevel", "error",
		"-y",
		"-i", "in.wav",
		"-c:a", "flac",
		"-compression_level", "8",
		"-metadata", "initial_sampling_rate=48000",
		"-metadata", "time_coverage_start=2024-05-17T01:25:33Z",
		"-metadata", "title=Buoy 7",
		"out.flac",
	}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("buildArgs = %q, want %q", got, want)
	}
}

func TestBuildArgsNoTags(t *testing.T) {
	t.Parallel()

	got := buildArgs("a.wav", "b.flac", nil)
	if got[len(got)-1] != "b.flac" {
		t.Errorf("last arg = %q, want output path", got[len(got)-1])
	}
	for _, a := range got {
		if a == "-metadata" {
			t.Error("unexpected -metadata argument with no tags")
		}
	}
}

func TestDiscoverPrefersEnv(t *testing.T) {
	t.Setenv("FFMPEG_EXE", "/opt/tools/ffmpeg")

	enc, err := Discover()
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	if enc.bin != "/opt/tools/ffmpeg" {
		t.Errorf("bin = %q, want /opt/tools/ffmpeg", enc.bin)
	}
}

func TestDiscoverMissingBinary(t *testing.T) {
	t.Setenv("FFMPEG_EXE", "")
	t.Setenv("PATH", t.TempDir())

	_, err := Discover()
	if !errors.Is(err, ErrEncoderNotFound) {
		t.Errorf("err = %v, want ErrEncoderNotFound", err)
	}
}

func TestEncodeMissingBinaryFails(t *testing.T) {
	t.Parallel()

	enc := NewFFmpeg("/nonexistent/ffmpeg")
	err := enc.Encode(context.Background(), "in.wav", "out.flac", nil)
	if !errors.Is(err, ErrEncoderFailed) {
		t.Errorf("err = %v, want ErrEncoderFailed", err)
	}
}

func TestLastLine(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want string
	}{
		{"", "no encoder output"},
		{"one\n", "one"},
		{"first\nsecond error line\n\n", "second error line"},
	}
	for _, tc := range cases {
		if got := lastLine([]byte(tc.in)); got != tc.want {
			t.Errorf("lastLine(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
