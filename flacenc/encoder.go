// SPDX-License-Identifier: EPL-2.0

// Package flacenc drives the external FLAC encoder. The archive wants a
// lossless compressed container with the archival fields embedded as tags;
// ffmpeg produces it from the intermediate 16-bit WAV the pipeline writes.
package flacenc

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"sort"
	"strings"
)

var (
	// ErrEncoderNotFound means no ffmpeg binary could be located.
	ErrEncoderNotFound = errors.New("ffmpeg not found; install it or set FFMPEG_EXE")
	// ErrEncoderFailed means the encoder ran and exited non-zero.
	ErrEncoderFailed = errors.New("external encoder failed")
)

// Encoder materializes a tagged FLAC from an intermediate WAV. The batch
// orchestrator treats it as an external collaborator: a failure is fatal for
// the file being processed, never for the batch.
type Encoder interface {
	Encode(ctx context.Context, wavPath, flacPath string, tags map[string]string) error
}

// FFmpeg invokes the ffmpeg binary once per file.
type FFmpeg struct {
	bin string
}

// Discover locates ffmpeg via the FFMPEG_EXE environment variable, falling
// back to PATH lookup.
func Discover() (*FFmpeg, error) {
	if bin := os.Getenv("FFMPEG_EXE"); bin != "" {
		return &FFmpeg{bin: bin}, nil
	}

	bin, err := exec.LookPath("ffmpeg")
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncoderNotFound, err)
	}
	return &FFmpeg{bin: bin}, nil
}

// NewFFmpeg uses an explicitly configured binary path.
func NewFFmpeg(bin string) *FFmpeg {
	return &FFmpeg{bin: bin}
}

func (f *FFmpeg) Encode(ctx context.Context, wavPath, flacPath string, tags map[string]string) error {
	cmd := exec.CommandContext(ctx, f.bin, buildArgs(wavPath, flacPath, tags)...)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("%w: %w: %s", ErrEncoderFailed, err, lastLine(out))
	}
	return nil
}

// buildArgs assembles the ffmpeg invocation. Tag order is sorted so repeated
// runs produce identical commands.
func buildArgs(wavPath, flacPath string, tags map[string]string) []string {
	args := []string{
		"-hide_banner", "-loglevel", "error",
		"-y",
		"-i", wavPath,
		"-c:a", "flac",
		"-compression_level", "8",
	}

	keys := make([]string, 0, len(tags))
	for k := range tags {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		args = append(args, "-metadata", k+"="+tags[k])
	}

	return append(args, flacPath)
}

// lastLine extracts the final non-empty line of encoder output, which is
// where ffmpeg puts the actual error.
func lastLine(out []byte) string {
	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		if l := strings.TrimSpace(lines[i]); l != "" {
			return l
		}
	}
	return "no encoder output"
}
