// SPDX-License-Identifier: EPL-2.0

// Package timestamp derives UTC coverage windows from recording filenames.
//
// Hydrophone deployments name files after the local clock at recording
// start. ExtractDate pulls that local time out of the filename through a
// fixed-priority pattern list, ParseOffset reads the operator-supplied
// "UTC±HH[:MM]" correction, and ComputeWindow combines both with the signal
// duration into the immutable Window every metadata field is derived from.
package timestamp
