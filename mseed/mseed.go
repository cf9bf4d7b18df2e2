// SPDX-License-Identifier: EPL-2.0

// Package mseed writes MiniSEED time-series records: fixed 512-byte records
// with the SEED 2.4 fixed header, a blockette 1000, and big-endian 16-bit
// data. One continuous trace per file, which is all the archival pipeline
// produces.
package mseed

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"time"
)

const (
	// RecordLength is fixed at 512 bytes (expressed as 2^9 in blockette
	// 1000), the conventional exchange size for EIDA nodes.
	RecordLength    = 512
	recordLengthExp = 9
	headerLength    = 48
	blocketteLength = 8
	// dataOffset leaves padding after the fixed header and blockette 1000
	// (48 + 8 = 56 bytes) so the payload starts 64-byte aligned.
	dataOffset         = 64
	samplesPerRecord   = (RecordLength - dataOffset) / 2
	encodingInt16      = 1
	wordOrderBigEndian = 1
)

var (
	// ErrNoSamples means there is nothing to write.
	ErrNoSamples = errors.New("no samples to write")
	// ErrBadSampleRate means the rate cannot be encoded in the header's
	// integer factor/multiplier fields.
	ErrBadSampleRate = errors.New("sample rate not encodable")
)

// Trace identifies the stream a set of records belongs to.
type Trace struct {
	Network  string
	Station  string
	Location string
	Channel  string
	// Start is the UTC time of the first sample.
	Start time.Time
	// SampleRate in Hz; must be a positive integer value.
	SampleRate float64
}

// Write emits samples as consecutive 512-byte records. The record start
// time advances by the samples already written over the sample rate, so a
// reader reassembles one gapless trace.
func Write(w io.Writer, tr Trace, samples []int16) error {
	if len(samples) == 0 {
		return ErrNoSamples
	}
	rate := int(tr.SampleRate)
	if tr.SampleRate <= 0 || tr.SampleRate != math.Trunc(tr.SampleRate) || rate > math.MaxInt16 {
		return fmt.Errorf("%w: %v Hz", ErrBadSampleRate, tr.SampleRate)
	}

	record := make([]byte, RecordLength)
	seq := 1

	for off := 0; off < len(samples); off += samplesPerRecord {
		end := min(off+samplesPerRecord, len(samples))
		chunk := samples[off:end]

		for i := range record {
			record[i] = 0
		}

		start := tr.Start.Add(time.Duration(off) * time.Second / time.Duration(rate))
		fillHeader(record, tr, seq, start, len(chunk))

		for i, s := range chunk {
			binary.BigEndian.PutUint16(record[dataOffset+2*i:], uint16(s))
		}

		if _, err := w.Write(record); err != nil {
			return fmt.Errorf("writing record %d: %w", seq, err)
		}
		seq++
	}

	return nil
}

func fillHeader(record []byte, tr Trace, seq int, start time.Time, sampleCount int) {
	copy(record[0:6], fmt.Sprintf("%06d", seq))
	record[6] = 'D'
	record[7] = ' '
	copyPadded(record[8:13], tr.Station)
	copyPadded(record[13:15], tr.Location)
	copyPadded(record[15:18], tr.Channel)
	copyPadded(record[18:20], tr.Network)

	start = start.UTC()
	binary.BigEndian.PutUint16(record[20:22], uint16(start.Year()))
	binary.BigEndian.PutUint16(record[22:24], uint16(start.YearDay()))
	record[24] = byte(start.Hour())
	record[25] = byte(start.Minute())
	record[26] = byte(start.Second())
	// record[27] unused
	binary.BigEndian.PutUint16(record[28:30], uint16(start.Nanosecond()/100000))

	binary.BigEndian.PutUint16(record[30:32], uint16(sampleCount))
	binary.BigEndian.PutUint16(record[32:34], uint16(int16(tr.SampleRate)))
	binary.BigEndian.PutUint16(record[34:36], 1) // rate multiplier

	// activity, io, and quality flags stay zero
	record[39] = 1 // one blockette follows
	// time correction stays zero
	binary.BigEndian.PutUint16(record[44:46], dataOffset)
	binary.BigEndian.PutUint16(record[46:48], headerLength)

	// Blockette 1000: encoding, word order, record length
	binary.BigEndian.PutUint16(record[48:50], 1000)
	binary.BigEndian.PutUint16(record[50:52], 0) // no next blockette
	record[52] = encodingInt16
	record[53] = wordOrderBigEndian
	record[54] = recordLengthExp
}

// copyPadded writes s into dst left-justified, space padded, truncated to
// fit — SEED header codes are fixed-width ASCII.
func copyPadded(dst []byte, s string) {
	for i := range dst {
		if i < len(s) {
			dst[i] = s[i]
		} else {
			dst[i] = ' '
		}
	}
}
