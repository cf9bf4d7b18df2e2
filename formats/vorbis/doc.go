// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis recordings into signal.Source streams.
package vorbis
