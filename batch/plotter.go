// SPDX-License-Identifier: EPL-2.0

package batch

import "github.com/oceanobs/hydroseis/signal"

// Plotter receives the first file's original and resampled views when a run
// asks for a visual check. Implementations render however they like; a
// failure is logged but never fails the file.
type Plotter interface {
	Plot(path string, original *signal.Signal, resampled *signal.Resampled) error
}

type noopPlotter struct{}

func (noopPlotter) Plot(string, *signal.Signal, *signal.Resampled) error { return nil }
