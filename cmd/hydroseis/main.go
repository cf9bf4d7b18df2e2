// SPDX-License-Identifier: EPL-2.0

// Package main provides the hydroseis command line tool. It converts
// hydrophone recordings into FLAC, MiniSEED, and StationXML artifacts for
// seismological archival.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/oceanobs/hydroseis/batch"
	"github.com/oceanobs/hydroseis/config"
	"github.com/oceanobs/hydroseis/flacenc"
	"github.com/oceanobs/hydroseis/formats"
	"github.com/oceanobs/hydroseis/metadata"
)

// Version is set at compile time via ldflags.
var Version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	_ = godotenv.Load()

	offsetFlag := flag.String("offset", "UTC+0", "UTC offset of the recorder clock (UTC±HH or UTC±HH:MM)")
	archivalFlag := flag.String("archival", "", "path to the archival metadata template (key=value lines)")
	stationFlag := flag.String("station", "", "path to the station metadata template (key=value lines)")
	outFlag := flag.String("out", "", "output directory (default: next to each input)")
	plotFlag := flag.Bool("plot", false, "plot original and resampled views of the first file")
	verboseFlag := flag.Bool("v", false, "debug logging")
	flag.Parse()

	level := zerolog.InfoLevel
	if *verboseFlag {
		level = zerolog.DebugLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().
		Timestamp().
		Str("version", Version).
		Logger()

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: hydroseis -archival FILE -station FILE [-offset UTC±HH] [-out DIR] [-plot] INPUT...")
		return 1
	}
	if *archivalFlag == "" || *stationFlag == "" {
		log.Error().Msg("both -archival and -station templates are required")
		return 1
	}

	arch, err := loadArchival(*archivalFlag)
	if err != nil {
		log.Error().Err(err).Str("file", *archivalFlag).Msg("archival template")
		return 1
	}
	station, err := loadStation(*stationFlag)
	if err != nil {
		log.Error().Err(err).Str("file", *stationFlag).Msg("station template")
		return 1
	}

	cfg := config.Load()

	var enc flacenc.Encoder
	if cfg.FFmpegPath != "" {
		enc = flacenc.NewFFmpeg(cfg.FFmpegPath)
	} else {
		enc, err = flacenc.Discover()
		if err != nil {
			log.Error().Err(err).Msg("encoder discovery")
			return 1
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var opts []batch.Option
	if *outFlag != "" {
		opts = append(opts, batch.WithOutputDir(*outFlag))
	}
	opts = append(opts, batch.WithProgress(func(res batch.Result) {
		if res.Err == nil {
			log.Debug().Str("file", res.Job.Path).Msg("done")
		}
	}))

	o := batch.New(cfg, formats.NewRegistry(), enc, log, opts...)
	report, err := o.Run(ctx, batch.Request{
		Paths:    flag.Args(),
		Offset:   *offsetFlag,
		Archival: arch,
		Station:  station,
		Plot:     *plotFlag,
	})
	if err != nil {
		log.Error().Err(err).Msg("batch aborted")
		return 1
	}

	switch report.Outcome() {
	case batch.OutcomeOK:
		return 0
	case batch.OutcomePartial:
		return 3
	default:
		return 1
	}
}

func loadArchival(path string) (metadata.Archival, error) {
	f, err := os.Open(path)
	if err != nil {
		return metadata.Archival{}, err
	}
	defer f.Close()
	return metadata.ParseArchival(f)
}

func loadStation(path string) (metadata.Station, error) {
	f, err := os.Open(path)
	if err != nil {
		return metadata.Station{}, err
	}
	defer f.Close()
	return metadata.ParseStation(f)
}
