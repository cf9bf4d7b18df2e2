// SPDX-License-Identifier: EPL-2.0

package timestamp

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// ErrBadOffset means the UTC offset string is malformed. The offset applies
// to every file in a batch, so this blocks all processing.
var ErrBadOffset = errors.New("malformed UTC offset, want UTC±HH or UTC±HH:MM")

var reOffset = regexp.MustCompile(`^UTC([+-])(\d{1,2})(?::([0-5]\d))?$`)

// ParseOffset parses "UTC±HH" or "UTC±HH:MM" (sign required, hours 0-23)
// into a signed duration. Filenames carry local clock time; subtracting the
// offset from it yields UTC.
func ParseOffset(s string) (time.Duration, error) {
	m := reOffset.FindStringSubmatch(s)
	if m == nil {
		return 0, fmt.Errorf("%w: %q", ErrBadOffset, s)
	}

	hours, err := strconv.Atoi(m[2])
	if err != nil || hours > 23 {
		return 0, fmt.Errorf("%w: %q", ErrBadOffset, s)
	}

	minutes := 0
	if m[3] != "" {
		minutes, _ = strconv.Atoi(m[3])
	}

	d := time.Duration(hours)*time.Hour + time.Duration(minutes)*time.Minute
	if m[1] == "-" {
		d = -d
	}
	return d, nil
}
