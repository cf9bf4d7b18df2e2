// SPDX-License-Identifier: EPL-2.0

package hydroseis

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/oceanobs/hydroseis/batch"
	"github.com/oceanobs/hydroseis/config"
	"github.com/oceanobs/hydroseis/flacenc"
	"github.com/oceanobs/hydroseis/formats"
)

// Options overrides the environment-driven defaults of Process. Zero fields
// keep the defaults.
type Options struct {
	// Config replaces the configuration read from the environment.
	Config *config.Config
	// Encoder replaces the discovered ffmpeg encoder.
	Encoder flacenc.Encoder
	// Logger replaces the no-op logger.
	Logger *zerolog.Logger
	// Batch options are passed through to the orchestrator.
	Batch []batch.Option
}

// Process converts every file in req.Paths using environment configuration
// and a discovered ffmpeg binary. See batch.Orchestrator for the per-file
// pipeline and failure semantics.
func Process(ctx context.Context, req batch.Request) (*batch.Report, error) {
	return ProcessWith(ctx, req, Options{})
}

// ProcessWith is Process with explicit collaborators, mainly for embedding
// the pipeline into a larger program.
func ProcessWith(ctx context.Context, req batch.Request, opts Options) (*batch.Report, error) {
	cfg := config.Load()
	if opts.Config != nil {
		cfg = *opts.Config
	}

	enc := opts.Encoder
	if enc == nil {
		var err error
		if cfg.FFmpegPath != "" {
			enc = flacenc.NewFFmpeg(cfg.FFmpegPath)
		} else {
			if enc, err = flacenc.Discover(); err != nil {
				return nil, err
			}
		}
	}

	log := zerolog.Nop()
	if opts.Logger != nil {
		log = *opts.Logger
	}

	o := batch.New(cfg, formats.NewRegistry(), enc, log, opts.Batch...)
	return o.Run(ctx, req)
}
