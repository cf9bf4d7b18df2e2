// SPDX-License-Identifier: EPL-2.0

package timestamp

import (
	"regexp"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

var (
	reExtension = regexp.MustCompile(`\.\w+$`)

	// Explicit separators: "2024-05-17_09-25-33" anywhere in the name.
	reExplicit = regexp.MustCompile(`\d{4}-\d{2}-\d{2}[ _]\d{2}-\d{2}-\d{2}`)
	// Compact: "20180726_141241".
	reCompact = regexp.MustCompile(`\d{8}[ _]\d{6}`)
	// Bounded fuzzy step: date-like tokens, longest alternative first so the
	// leftmost match is also the longest one at that position.
	reFuzzy = regexp.MustCompile(`\d{4}[-/.]\d{1,2}[-/.]\d{1,2}(?:[ _T]\d{1,2}[:.\-]\d{2}(?:[:.\-]\d{2})?)?|\d{8}`)
)

// ExtractDate derives the local recording start from a filename. Patterns
// are tried in fixed priority order and the first match wins:
//
//  1. explicit separators ("2024-05-17_09-25-33")
//  2. compact digits ("20180726_141241")
//  3. a bounded fuzzy scan for the earliest date-like token
//  4. the current UTC time, reported as degraded
//
// The returned time is naive local time — no zone is attached; the batch's
// UTC offset is applied later. degraded is true only for the fallback case
// and must be recorded downstream as a degraded result, never as a failure.
func ExtractDate(filename string) (t time.Time, degraded bool) {
	name := reExtension.ReplaceAllString(filename, "")

	if m := reExplicit.FindString(name); m != "" {
		if t, err := time.Parse("2006-01-02_15-04-05", normalizeSep(m)); err == nil {
			return t, false
		}
	}

	if m := reCompact.FindString(name); m != "" {
		if t, err := time.Parse("20060102_150405", normalizeSep(m)); err == nil {
			return t, false
		}
	}

	if m := reFuzzy.FindString(name); m != "" {
		// dateparse understands a space between date and time, not "_" or "T".
		candidate := strings.NewReplacer("_", " ", "T", " ").Replace(m)
		if t, err := dateparse.ParseIn(candidate, time.UTC); err == nil && plausible(t) {
			return t.UTC(), false
		}
	}

	return time.Now().UTC(), true
}

// normalizeSep collapses the space/underscore date-time separator so one
// layout string covers both spellings.
func normalizeSep(s string) string {
	out := []byte(s)
	for i := range out {
		if out[i] == ' ' {
			out[i] = '_'
		}
	}
	return string(out)
}

// plausible keeps the fuzzy step inside sensible calendar bounds: fuzzy
// matches resolving outside this range are treated as non-dates.
func plausible(t time.Time) bool {
	return t.Year() >= 1970 && t.Year() <= 2100
}
