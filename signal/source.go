// SPDX-License-Identifier: EPL-2.0

package signal

import (
	"io"
	"sync"
)

type Source interface {
	// SampleRate of the PCM stream in Hz.
	SampleRate() int
	// Channels count (e.g., 1=mono, 2=stereo).
	Channels() int
	// ReadSamples fills dst with interleaved float64 samples in [-1,1].
	// Returns number of float64 values written (not frames). When n == 0 with
	// err == io.EOF, the stream is finished.
	ReadSamples(dst []float64) (n int, err error)

	// Close releases any resources.
	Close() error
}

// Decoder constructs a Source from an input reader. Container formats that
// need random access (WAV, AIFF) seek; the lossy decoders read forward only.
type Decoder interface {
	Decode(r io.ReadSeeker) (Source, error)
}

// Registry maps file extensions (e.g., "wav", "aiff", "mp3", "ogg") to
// decoders so the batch loader can pick one per input file.
type Registry struct {
	codecs map[string]Decoder

	mtx *sync.Mutex
}

func NewRegistry() *Registry {
	return &Registry{
		codecs: make(map[string]Decoder),
		mtx:    &sync.Mutex{},
	}
}

func (r *Registry) Register(ext string, d Decoder) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.codecs[ext] = d
}

func (r *Registry) Get(ext string) (Decoder, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	d, ok := r.codecs[ext]
	return d, ok
}
