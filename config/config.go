// SPDX-License-Identifier: EPL-2.0

// Package config loads pipeline tuning from environment variables. Command
// line flags cover the per-run inputs; the environment covers knobs that
// rarely change between runs on the same machine.
package config

import (
	"os"
	"strconv"

	"github.com/oceanobs/hydroseis/signal"
)

// Config holds runtime tuning, loaded from environment variables.
type Config struct {
	// Resampling
	TargetRate int // archive sampling rate in Hz
	ChunkSize  int // samples per processing chunk
	FilterTaps int // FIR low-pass length

	// External tools
	FFmpegPath string // explicit ffmpeg binary, empty means discover

	// Batch
	Workers int // concurrent files
}

// Load reads configuration from environment variables with sane defaults.
func Load() Config {
	return Config{
		TargetRate: envInt("HYDROSEIS_TARGET_RATE", signal.DefaultTargetRate),
		ChunkSize:  envInt("HYDROSEIS_CHUNK_SIZE", signal.DefaultChunkSize),
		FilterTaps: envInt("HYDROSEIS_FILTER_TAPS", signal.DefaultFilterTaps),
		FFmpegPath: envStr("FFMPEG_EXE", ""),
		Workers:    envInt("HYDROSEIS_WORKERS", 1),
	}
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
