// SPDX-License-Identifier: EPL-2.0

package batch

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/oceanobs/hydroseis/config"
	"github.com/oceanobs/hydroseis/flacenc"
	"github.com/oceanobs/hydroseis/formats/wav"
	"github.com/oceanobs/hydroseis/metadata"
	"github.com/oceanobs/hydroseis/mseed"
	"github.com/oceanobs/hydroseis/signal"
	"github.com/oceanobs/hydroseis/stationxml"
	"github.com/oceanobs/hydroseis/timestamp"
	"github.com/oceanobs/hydroseis/utils"
)

// ErrUnsupportedFormat means no decoder is registered for the input's
// extension.
var ErrUnsupportedFormat = errors.New("no decoder registered for extension")

// Request carries the shared inputs of one run.
type Request struct {
	Paths    []string
	Offset   string // UTC±HH or UTC±HH:MM, applies to every filename date
	Archival metadata.Archival
	Station  metadata.Station
	// Plot routes the first file's original and resampled views to the
	// configured Plotter.
	Plot bool
}

// Orchestrator runs conversion batches. It is safe to reuse across runs.
type Orchestrator struct {
	cfg       config.Config
	reg       *signal.Registry
	enc       flacenc.Encoder
	resampler *signal.Resampler
	plotter   Plotter
	progress  func(Result)
	outDir    string
	log       zerolog.Logger
}

// Option tweaks an Orchestrator at construction.
type Option func(*Orchestrator)

// WithPlotter replaces the default no-op plotter.
func WithPlotter(p Plotter) Option {
	return func(o *Orchestrator) { o.plotter = p }
}

// WithProgress installs a callback invoked once per finished file, from
// worker goroutines.
func WithProgress(fn func(Result)) Option {
	return func(o *Orchestrator) { o.progress = fn }
}

// WithOutputDir writes artifacts to dir instead of next to each input.
func WithOutputDir(dir string) Option {
	return func(o *Orchestrator) { o.outDir = dir }
}

func New(cfg config.Config, reg *signal.Registry, enc flacenc.Encoder, log zerolog.Logger, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		cfg: cfg,
		reg: reg,
		enc: enc,
		resampler: signal.NewResampler(signal.ResamplerConfig{
			TargetRate: cfg.TargetRate,
			ChunkSize:  cfg.ChunkSize,
			FilterTaps: cfg.FilterTaps,
		}),
		plotter: noopPlotter{},
		log:     log,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Run validates the shared inputs, then converts every file in req.Paths.
// A non-nil error means the batch never started: a malformed offset or an
// invalid metadata template. Per-file failures land in the Report instead.
func (o *Orchestrator) Run(ctx context.Context, req Request) (*Report, error) {
	offset, err := timestamp.ParseOffset(req.Offset)
	if err != nil {
		return nil, fmt.Errorf("pre-flight: %w", err)
	}

	// Validate templates against a probe window before touching any file.
	probe := timestamp.ComputeWindow(time.Now().UTC(), 0, offset, false)
	if err := metadata.Validate(req.Archival, req.Station, probe); err != nil {
		return nil, fmt.Errorf("pre-flight: %w", err)
	}

	workers := max(o.cfg.Workers, 1)
	report := &Report{}
	jobs := make(chan Job)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range jobs {
				res := o.processFile(ctx, job, offset, req)
				report.add(res)

				if res.Err != nil {
					o.log.Error().Err(res.Err).Str("job", job.ID.String()).
						Str("file", job.Path).Msg("file failed")
				} else {
					o.log.Info().Str("job", job.ID.String()).Str("file", job.Path).
						Strs("artifacts", res.Artifacts).
						Bool("degraded", res.Degraded).Msg("file converted")
				}
				if o.progress != nil {
					o.progress(res)
				}
			}
		}()
	}

	for i, p := range req.Paths {
		jobs <- Job{ID: uuid.New(), Path: p, plot: req.Plot && i == 0}
	}
	close(jobs)
	wg.Wait()

	o.log.Info().Int("succeeded", report.Succeeded).Int("failed", report.Failed).
		Str("outcome", string(report.Outcome())).Msg("batch finished")
	return report, nil
}

// processFile runs the whole per-file pipeline. Any failure removes the
// artifacts written so far, so a failed file leaves nothing behind.
func (o *Orchestrator) processFile(ctx context.Context, job Job, offset time.Duration, req Request) (res Result) {
	res.Job = job

	var artifacts []string
	defer func() {
		if res.Err != nil {
			for _, a := range artifacts {
				os.Remove(a)
			}
			return
		}
		res.Artifacts = artifacts
	}()

	if err := ctx.Err(); err != nil {
		res.Err = err
		return res
	}

	in, err := os.Open(job.Path)
	if err != nil {
		res.Err = fmt.Errorf("open input: %w", err)
		return res
	}
	defer in.Close()

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(job.Path), "."))
	dec, ok := o.reg.Get(ext)
	if !ok {
		res.Err = fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
		return res
	}

	src, err := dec.Decode(in)
	if err != nil {
		res.Err = fmt.Errorf("decode: %w", err)
		return res
	}
	defer src.Close()

	sig, err := signal.Collect(src)
	if err != nil {
		res.Err = err
		return res
	}

	localStart, degraded := timestamp.ExtractDate(filepath.Base(job.Path))
	res.Degraded = degraded
	if degraded {
		o.log.Warn().Str("job", job.ID.String()).Str("file", job.Path).
			Time("fallback", localStart).
			Msg("no date in filename, coverage start degraded to current time")
	}
	window := timestamp.ComputeWindow(localStart, sig.Duration(), offset, degraded)

	// A recording already at the archive rate passes through untouched.
	var out *signal.Resampled
	if sig.Rate == o.resampler.TargetRate() {
		out = &signal.Resampled{Samples: sig.Samples, Rate: float64(sig.Rate)}
	} else {
		out, err = o.resampler.Resample(ctx, sig)
		if err != nil {
			res.Err = err
			return res
		}
	}

	if job.plot {
		if err := o.plotter.Plot(job.Path, sig, out); err != nil {
			o.log.Warn().Err(err).Str("job", job.ID.String()).
				Str("file", job.Path).Msg("plot failed")
		}
	}

	hier, err := metadata.BuildHierarchy(req.Station, window, out.Rate)
	if err != nil {
		res.Err = err
		return res
	}
	tags := req.Archival.Tags(window, sig.Rate)

	stem := o.stem(job.Path)

	flacPath := stem + ".flac"
	artifacts = append(artifacts, flacPath)
	if err := o.encodeFLAC(ctx, stem, flacPath, out, tags); err != nil {
		res.Err = err
		return res
	}

	mseedPath := stem + ".mseed"
	artifacts = append(artifacts, mseedPath)
	if err := writeMiniSEED(mseedPath, req.Station, window, out); err != nil {
		res.Err = err
		return res
	}

	xmlPath := stem + ".station.xml"
	artifacts = append(artifacts, xmlPath)
	if err := writeStationXML(xmlPath, hier, req.Station); err != nil {
		res.Err = err
		return res
	}

	return res
}

// stem is the artifact path prefix: the input's base name without extension,
// placed in the output directory (the input's directory by default).
func (o *Orchestrator) stem(path string) string {
	base := filepath.Base(path)
	base = strings.TrimSuffix(base, filepath.Ext(base))

	dir := o.outDir
	if dir == "" {
		dir = filepath.Dir(path)
	}
	return filepath.Join(dir, base)
}

// encodeFLAC writes the resampled signal to an intermediate 16-bit WAV and
// hands it to the external encoder with the archival tags. The WAV is
// removed regardless of outcome.
func (o *Orchestrator) encodeFLAC(ctx context.Context, stem, flacPath string, out *signal.Resampled, tags map[string]string) error {
	wavPath := stem + ".tmp.wav"
	wf, err := os.Create(wavPath)
	if err != nil {
		return fmt.Errorf("intermediate wav: %w", err)
	}
	defer os.Remove(wavPath)

	if err := wav.Write16(wf, int(out.Rate), out.Samples); err != nil {
		wf.Close()
		return fmt.Errorf("intermediate wav: %w", err)
	}
	if err := wf.Close(); err != nil {
		return fmt.Errorf("intermediate wav: %w", err)
	}

	return o.enc.Encode(ctx, wavPath, flacPath, tags)
}

func writeMiniSEED(path string, tmpl metadata.Station, w timestamp.Window, out *signal.Resampled) error {
	samples := make([]int16, len(out.Samples))
	for i, s := range out.Samples {
		samples[i] = utils.Float64ToInt16(s)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("miniseed: %w", err)
	}

	tr := mseed.Trace{
		Network:    tmpl.NetworkCode,
		Station:    tmpl.StationCode,
		Location:   tmpl.LocationCode,
		Channel:    tmpl.ChannelCode,
		Start:      w.Start,
		SampleRate: out.Rate,
	}
	if err := mseed.Write(f, tr, samples); err != nil {
		f.Close()
		return fmt.Errorf("miniseed: %w", err)
	}
	return f.Close()
}

func writeStationXML(path string, h *metadata.Hierarchy, tmpl metadata.Station) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("stationxml: %w", err)
	}
	if err := stationxml.Write(f, h, tmpl.Source, tmpl.Sender); err != nil {
		f.Close()
		return fmt.Errorf("stationxml: %w", err)
	}
	return f.Close()
}
