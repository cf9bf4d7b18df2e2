// SPDX-License-Identifier: EPL-2.0

package timestamp

import "time"

// Window is the UTC coverage of one recording. It is created once per input
// file and never modified; every downstream metadata field derives from it.
type Window struct {
	// LocalStart is the naive filename-derived start time.
	LocalStart time.Time
	// Offset is the batch's UTC offset (local = UTC + offset).
	Offset time.Duration
	// Start and End are the UTC coverage bounds, with End = Start plus the
	// recording duration computed from the ORIGINAL sample count and rate.
	Start time.Time
	End   time.Time
	// Degraded marks a window whose start fell back to the current time
	// because the filename carried no extractable date.
	Degraded bool
}

// ComputeWindow converts a local start to UTC and derives the coverage end
// from the signal duration. The same window is assigned to the Channel,
// Station, and Network levels of the station hierarchy.
func ComputeWindow(localStart time.Time, duration, offset time.Duration, degraded bool) Window {
	start := localStart.Add(-offset).UTC()
	return Window{
		LocalStart: localStart,
		Offset:     offset,
		Start:      start,
		End:        start.Add(duration),
		Degraded:   degraded,
	}
}
