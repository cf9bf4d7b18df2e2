// SPDX-License-Identifier: EPL-2.0

// Package signal implements the resampling half of the archival pipeline.
//
// A recording enters as a Source — a streaming interface every format
// decoder implements — and is collected into a Signal, a fully loaded mono
// sequence at the original rate. Collect enforces the input bounds (rate in
// [8000, 400000] Hz, duration at most 24 h) before anything downstream runs.
//
// The Resampler then:
//
//  1. Normalizes the whole signal to unit peak (a silent signal is an error).
//  2. Designs one Hamming-windowed sinc FIR low-pass with its cutoff at the
//     Nyquist frequency of the OUTPUT rate.
//  3. Filters and decimates in bounded-memory chunks. The filter delay line
//     and the decimator's fractional read position carry across chunk
//     boundaries, so the chunked output equals a single-pass output.
//
// Samples are float64 in [-1, 1] throughout; conversion to integer PCM
// happens only at the artifact writers.
package signal
