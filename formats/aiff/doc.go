// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes AIFF recordings into signal.Source streams.
package aiff
