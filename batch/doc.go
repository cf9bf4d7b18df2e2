// SPDX-License-Identifier: EPL-2.0

// Package batch orchestrates the conversion of hydrophone recordings into
// archive artifacts. A run validates its shared inputs once up front, then
// processes each file independently: decode, resample, derive the coverage
// window, and emit the FLAC, MiniSEED, and StationXML artifacts. A file that
// fails is reported and skipped; only malformed shared inputs (the UTC offset
// or the metadata templates) abort the whole batch.
package batch
