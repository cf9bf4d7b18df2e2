// SPDX-License-Identifier: EPL-2.0

// Package hydroseis converts hydrophone recordings into seismological
// archive artifacts. Each input file becomes a tagged FLAC, a 16-bit
// MiniSEED trace, and an FDSN StationXML description, with the signal
// low-pass filtered and decimated to the archive sampling rate.
//
// Process is the one-call entry point. The building blocks live in the
// subpackages: signal (resampling), timestamp (filename dates and coverage
// windows), metadata (archival and station templates), formats (decoders),
// and batch (the orchestrator).
package hydroseis
