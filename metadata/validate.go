// SPDX-License-Identifier: EPL-2.0

package metadata

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/oceanobs/hydroseis/timestamp"
)

// FieldError is a single validation violation, named after the offending
// field so a user can fix it directly.
type FieldError struct {
	Field  string
	Reason string
}

func (e FieldError) Error() string {
	return e.Field + ": " + e.Reason
}

// Errors is every violation found in one validation pass. Validation never
// stops at the first problem — the whole template is checked so the user can
// fix everything in one edit.
type Errors []FieldError

func (e Errors) Error() string {
	msgs := make([]string, len(e))
	for i, fe := range e {
		msgs[i] = fe.Error()
	}
	return fmt.Sprintf("%d metadata field error(s): %s", len(e), strings.Join(msgs, "; "))
}

var reNetworkCode = regexp.MustCompile(`^[A-Z]{1,2}$`)

type validator struct {
	errs Errors
}

func (v *validator) add(field, reason string) {
	v.errs = append(v.errs, FieldError{Field: field, Reason: reason})
}

func (v *validator) required(field, value string) {
	if strings.TrimSpace(value) == "" {
		v.add(field, "required field is empty")
	}
}

// numeric checks that a required value parses as a number inside
// [lo, hi]. Empty values are reported only by required, not twice.
func (v *validator) numeric(field, value string, lo, hi float64) {
	v.required(field, value)
	if strings.TrimSpace(value) == "" {
		return
	}

	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		v.add(field, "not a number: "+value)
		return
	}
	if f < lo || f > hi {
		v.add(field, fmt.Sprintf("%v outside [%v, %v]", f, lo, hi))
	}
}

// Validate checks the merged batch templates plus one representative
// coverage window and returns nil or the full list of violations.
func Validate(a Archival, s Station, w timestamp.Window) error {
	v := &validator{}
	v.archival(a)
	v.station(s)
	v.window(w)

	if len(v.errs) == 0 {
		return nil
	}
	return v.errs
}

// ValidateArchival checks only the archival-description template.
func ValidateArchival(a Archival) error {
	v := &validator{}
	v.archival(a)
	if len(v.errs) == 0 {
		return nil
	}
	return v.errs
}

// ValidateStation checks only the station-description template.
func ValidateStation(s Station) error {
	v := &validator{}
	v.station(s)
	if len(v.errs) == 0 {
		return nil
	}
	return v.errs
}

func (v *validator) archival(a Archival) {
	v.required("institution_code", a.InstitutionCode)
	v.required("site_code", a.SiteCode)
	v.required("title", a.Title)
	v.required("principal_investigator", a.PrincipalInvestigator)
	v.required("creator_name", a.CreatorName)
	v.required("license", a.License)
	v.numeric("geospatial_lat_min", a.GeospatialLatMin, -90, 90)
	v.numeric("geospatial_lat_max", a.GeospatialLatMax, -90, 90)
	v.numeric("geospatial_lon_min", a.GeospatialLonMin, -180, 180)
	v.numeric("geospatial_lon_max", a.GeospatialLonMax, -180, 180)
}

func (v *validator) station(s Station) {
	v.required("network_code", s.NetworkCode)
	if s.NetworkCode != "" && !reNetworkCode.MatchString(s.NetworkCode) {
		v.add("network_code", "must be one or two uppercase letters: "+s.NetworkCode)
	}
	v.required("station_code", s.StationCode)
	v.required("channel_code", s.ChannelCode)
	if s.LocationCode == "" {
		// Location code may legitimately be "00" but must be present.
		v.add("location_code", "required field is empty")
	}
	v.numeric("latitude", s.Latitude, -90, 90)
	v.numeric("longitude", s.Longitude, -180, 180)
	v.numeric("elevation", s.Elevation, -12000, 9000)
	v.numeric("channel_latitude", s.ChannelLatitude, -90, 90)
	v.numeric("channel_longitude", s.ChannelLongitude, -180, 180)
	v.numeric("channel_elevation", s.ChannelElevation, -12000, 9000)
	v.numeric("channel_depth", s.ChannelDepth, 0, 12000)
	v.numeric("azimuth", s.Azimuth, 0, 360)
	v.numeric("dip", s.Dip, -90, 90)
	v.numeric("sensitivity_value", s.SensitivityValue, -1e18, 1e18)
	v.numeric("sensitivity_frequency", s.SensitivityFrequency, 0, 1e9)
	v.required("input_units_name", s.InputUnitsName)
	v.required("output_units_name", s.OutputUnitsName)
}

func (v *validator) window(w timestamp.Window) {
	if w.Start.IsZero() {
		v.add("time_coverage_start", "missing computed UTC start")
	}
	if w.End.IsZero() {
		v.add("time_coverage_end", "missing computed UTC end")
	}
	if !w.Start.IsZero() && !w.End.IsZero() && w.Start.After(w.End) {
		v.add("time_coverage_end", "coverage window ends before it starts")
	}
}
