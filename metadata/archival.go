// SPDX-License-Identifier: EPL-2.0

package metadata

import (
	"strconv"
	"time"

	"github.com/oceanobs/hydroseis/timestamp"
)

// Archival holds the EMSO-style descriptive fields shared by every file in
// a batch. User-entered numeric values stay as strings until validation has
// confirmed they parse; the per-file time-coverage and sampling-rate fields
// are computed, never entered.
type Archival struct {
	InstitutionCode       string
	SiteCode              string
	Title                 string
	PrincipalInvestigator string
	CreatorName           string
	License               string
	GeospatialLatMin      string
	GeospatialLatMax      string
	GeospatialLonMin      string
	GeospatialLonMax      string

	// Optional
	Summary           string
	InfoURL           string
	LicenseURL        string
	SensorDescription string
}

// Tags renders the archival record as FLAC tag key/value pairs, augmented
// with the file's computed coverage window and original sampling rate.
// date_created is always the moment of encoding, in UTC.
func (a Archival) Tags(w timestamp.Window, initialRate int) map[string]string {
	tags := map[string]string{
		"institution_code":       a.InstitutionCode,
		"site_code":              a.SiteCode,
		"title":                  a.Title,
		"principal_investigator": a.PrincipalInvestigator,
		"creator_name":           a.CreatorName,
		"license":                a.License,
		"geospatial_lat_min":     a.GeospatialLatMin,
		"geospatial_lat_max":     a.GeospatialLatMax,
		"geospatial_lon_min":     a.GeospatialLonMin,
		"geospatial_lon_max":     a.GeospatialLonMax,

		"time_coverage_start":   w.Start.Format(time.RFC3339),
		"time_coverage_end":     w.End.Format(time.RFC3339),
		"initial_sampling_rate": strconv.Itoa(initialRate),
		"date_created":          time.Now().UTC().Format(time.RFC3339),
	}

	if a.Summary != "" {
		tags["summary"] = a.Summary
	}
	if a.InfoURL != "" {
		tags["infoUrl"] = a.InfoURL
	}
	if a.LicenseURL != "" {
		tags["license_url"] = a.LicenseURL
	}
	if a.SensorDescription != "" {
		tags["sensor_description"] = a.SensorDescription
	}
	if w.Degraded {
		tags["time_coverage_note"] = "start time fell back to processing time"
	}

	return tags
}
