// SPDX-License-Identifier: EPL-2.0

// Package formats wires the per-container decoder packages into a
// signal.Registry keyed by file extension.
package formats

import (
	"github.com/oceanobs/hydroseis/formats/aiff"
	"github.com/oceanobs/hydroseis/formats/mp3"
	"github.com/oceanobs/hydroseis/formats/vorbis"
	"github.com/oceanobs/hydroseis/formats/wav"
	"github.com/oceanobs/hydroseis/signal"
)

// NewRegistry returns a registry with every supported input container.
// WAV and AIFF are the expected uncompressed sources; MP3 and Ogg Vorbis
// cover recordings that were already lossy before archival.
func NewRegistry() *signal.Registry {
	r := signal.NewRegistry()
	r.Register("wav", wav.Decoder{})
	r.Register("wave", wav.Decoder{})
	r.Register("aiff", aiff.Decoder{})
	r.Register("aif", aiff.Decoder{})
	r.Register("mp3", mp3.Decoder{})
	r.Register("ogg", vorbis.Decoder{})
	return r
}
