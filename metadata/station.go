// SPDX-License-Identifier: EPL-2.0

package metadata

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/oceanobs/hydroseis/timestamp"
)

// Station is the batch-level station-description template, entered once and
// combined with each file's computed coverage window. Numeric values stay as
// strings until validation confirms they parse.
type Station struct {
	NetworkCode          string
	StationCode          string
	ChannelCode          string
	LocationCode         string
	Latitude             string
	Longitude            string
	Elevation            string
	ChannelLatitude      string
	ChannelLongitude     string
	ChannelElevation     string
	ChannelDepth         string
	Azimuth              string
	Dip                  string
	SensitivityValue     string
	SensitivityFrequency string
	InputUnitsName       string
	OutputUnitsName      string

	// Optional
	Sender             string
	Source             string
	NetworkIdentifier  string
	NetworkDescription string
	StationDescription string
	SensorDescription  string
	SiteName           string
}

// Identifier returns the network identifier as a URI, applying the
// urn:network_identifier: prefix unless the value is already a URL.
func (s Station) Identifier() string {
	if strings.HasPrefix(s.NetworkIdentifier, "http://") ||
		strings.HasPrefix(s.NetworkIdentifier, "https://") {
		return s.NetworkIdentifier
	}
	return "urn:network_identifier:" + s.NetworkIdentifier
}

// Hierarchy is the assembled per-file Network→Station→Channel description.
// All three levels carry the same coverage window; there is no per-level
// override in current scope.
type Hierarchy struct {
	Network NetworkLevel
}

type NetworkLevel struct {
	Code        string
	Description string
	Identifier  string
	Start, End  time.Time
	Station     StationLevel
}

type StationLevel struct {
	Code        string
	Description string
	SiteName    string
	Latitude    float64
	Longitude   float64
	Elevation   float64
	Start, End  time.Time
	Channel     ChannelLevel
}

type ChannelLevel struct {
	Code                 string
	LocationCode         string
	Latitude             float64
	Longitude            float64
	Elevation            float64
	Depth                float64
	Azimuth              float64
	Dip                  float64
	SampleRate           float64
	SensorDescription    string
	SensitivityValue     float64
	SensitivityFrequency float64
	InputUnits           string
	OutputUnits          string
	Start, End           time.Time
}

// BuildHierarchy assembles the per-file hierarchy from the shared template,
// the file's coverage window, and the achieved output rate. The template
// must have passed Validate first; a parse failure here is a programming
// error surfaced as an error all the same.
func BuildHierarchy(tmpl Station, w timestamp.Window, sampleRate float64) (*Hierarchy, error) {
	if w.Start.After(w.End) {
		return nil, fmt.Errorf("coverage window starts after it ends: %s > %s", w.Start, w.End)
	}

	nums := map[string]*float64{}
	parse := func(field, value string) float64 {
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			nums[field] = nil
			return 0
		}
		return f
	}

	h := &Hierarchy{
		Network: NetworkLevel{
			Code:        tmpl.NetworkCode,
			Description: networkDescription(tmpl),
			Identifier:  tmpl.Identifier(),
			Start:       w.Start,
			End:         w.End,
			Station: StationLevel{
				Code:        tmpl.StationCode,
				Description: tmpl.StationDescription,
				SiteName:    tmpl.SiteName,
				Latitude:    parse("latitude", tmpl.Latitude),
				Longitude:   parse("longitude", tmpl.Longitude),
				Elevation:   parse("elevation", tmpl.Elevation),
				Start:       w.Start,
				End:         w.End,
				Channel: ChannelLevel{
					Code:                 tmpl.ChannelCode,
					LocationCode:         tmpl.LocationCode,
					Latitude:             parse("channel_latitude", tmpl.ChannelLatitude),
					Longitude:            parse("channel_longitude", tmpl.ChannelLongitude),
					Elevation:            parse("channel_elevation", tmpl.ChannelElevation),
					Depth:                parse("channel_depth", tmpl.ChannelDepth),
					Azimuth:              parse("azimuth", tmpl.Azimuth),
					Dip:                  parse("dip", tmpl.Dip),
					SampleRate:           sampleRate,
					SensorDescription:    tmpl.SensorDescription,
					SensitivityValue:     parse("sensitivity_value", tmpl.SensitivityValue),
					SensitivityFrequency: parse("sensitivity_frequency", tmpl.SensitivityFrequency),
					InputUnits:           tmpl.InputUnitsName,
					OutputUnits:          tmpl.OutputUnitsName,
					Start:                w.Start,
					End:                  w.End,
				},
			},
		},
	}

	for field, v := range nums {
		if v == nil {
			return nil, fmt.Errorf("field %s is not a number", field)
		}
	}
	return h, nil
}

// networkDescription carries the identifier into the free-text description
// as well, which some EIDA consumers read instead of the Identifier element.
func networkDescription(tmpl Station) string {
	if tmpl.NetworkDescription == "" {
		return "Identifier: " + tmpl.Identifier()
	}
	return tmpl.NetworkDescription + " | Identifier: " + tmpl.Identifier()
}
