// SPDX-License-Identifier: EPL-2.0

package metadata

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// parseKeyValues reads UTF-8 "key=value" lines, one field per line. Blank
// lines and lines starting with '#' are skipped. assign maps a key onto the
// destination struct and reports whether the key is known.
func parseKeyValues(r io.Reader, assign func(key, value string) bool) error {
	scanner := bufio.NewScanner(r)
	var unknown []string
	line := 0

	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		key, value, found := strings.Cut(text, "=")
		if !found {
			return fmt.Errorf("line %d: not a key=value pair: %q", line, text)
		}

		key = strings.TrimSpace(key)
		if !assign(key, strings.TrimSpace(value)) {
			unknown = append(unknown, key)
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading metadata: %w", err)
	}
	if len(unknown) > 0 {
		return fmt.Errorf("unknown metadata keys: %s", strings.Join(unknown, ", "))
	}
	return nil
}

// ParseArchival reads an archival-description template from key=value lines.
func ParseArchival(r io.Reader) (Archival, error) {
	var a Archival
	err := parseKeyValues(r, func(key, value string) bool {
		switch key {
		case "institution_code":
			a.InstitutionCode = value
		case "site_code":
			a.SiteCode = value
		case "title":
			a.Title = value
		case "principal_investigator":
			a.PrincipalInvestigator = value
		case "creator_name":
			a.CreatorName = value
		case "license":
			a.License = value
		case "geospatial_lat_min":
			a.GeospatialLatMin = value
		case "geospatial_lat_max":
			a.GeospatialLatMax = value
		case "geospatial_lon_min":
			a.GeospatialLonMin = value
		case "geospatial_lon_max":
			a.GeospatialLonMax = value
		case "summary":
			a.Summary = value
		case "infoUrl", "info_url":
			a.InfoURL = value
		case "license_url":
			a.LicenseURL = value
		case "sensor_description":
			a.SensorDescription = value
		default:
			return false
		}
		return true
	})
	return a, err
}

// ParseStation reads a station-description template from key=value lines.
func ParseStation(r io.Reader) (Station, error) {
	var s Station
	err := parseKeyValues(r, func(key, value string) bool {
		switch key {
		case "network_code":
			s.NetworkCode = value
		case "station_code":
			s.StationCode = value
		case "channel_code":
			s.ChannelCode = value
		case "location_code":
			s.LocationCode = value
		case "latitude":
			s.Latitude = value
		case "longitude":
			s.Longitude = value
		case "elevation":
			s.Elevation = value
		case "channel_latitude":
			s.ChannelLatitude = value
		case "channel_longitude":
			s.ChannelLongitude = value
		case "channel_elevation":
			s.ChannelElevation = value
		case "channel_depth":
			s.ChannelDepth = value
		case "azimuth":
			s.Azimuth = value
		case "dip":
			s.Dip = value
		case "sensitivity_value":
			s.SensitivityValue = value
		case "sensitivity_frequency":
			s.SensitivityFrequency = value
		case "input_units_name":
			s.InputUnitsName = value
		case "output_units_name":
			s.OutputUnitsName = value
		case "sender":
			s.Sender = value
		case "source":
			s.Source = value
		case "network_identifier":
			s.NetworkIdentifier = value
		case "network_description":
			s.NetworkDescription = value
		case "station_description":
			s.StationDescription = value
		case "sensor_description":
			s.SensorDescription = value
		case "site_name":
			s.SiteName = value
		default:
			return false
		}
		return true
	})
	return s, err
}
