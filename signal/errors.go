// SPDX-License-Identifier: EPL-2.0

package signal

import "errors"

var (
	// ErrSampleRateOutOfRange rejects sources outside the plausible
	// hydrophone range of [8000, 400000] Hz before any processing.
	ErrSampleRateOutOfRange = errors.New("sample rate outside [8000, 400000] Hz")
	// ErrDurationExceeded rejects recordings longer than 24 hours.
	ErrDurationExceeded = errors.New("recording longer than 24 hours")
	// ErrSilentSignal means the maximum absolute amplitude is zero, so peak
	// normalization is undefined.
	ErrSilentSignal = errors.New("signal is silent, cannot normalize")
	// ErrTargetNotBelowSource means the requested output rate is not below
	// the source rate; this pipeline only decimates.
	ErrTargetNotBelowSource = errors.New("target rate must be below source rate")
	// ErrInvalidTargetRate means the configured output rate is not positive.
	ErrInvalidTargetRate = errors.New("target rate must be positive")
)
