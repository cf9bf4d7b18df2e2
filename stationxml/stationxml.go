// SPDX-License-Identifier: EPL-2.0

// Package stationxml renders an assembled metadata.Hierarchy as FDSN
// StationXML 1.1. Element order follows the EIDA ingestion rules the
// archive enforces: Source and Sender lead the document, Identifier is the
// first child of Network and Station the last, and computed start/end dates
// appear at every level.
package stationxml

import (
	"encoding/xml"
	"fmt"
	"io"
	"time"

	"github.com/oceanobs/hydroseis/metadata"
)

const (
	namespace     = "http://www.fdsn.org/xml/station/1"
	schemaVersion = "1.1"
	timeLayout    = "2006-01-02T15:04:05Z"
)

type document struct {
	XMLName       xml.Name `xml:"FDSNStationXML"`
	Namespace     string   `xml:"xmlns,attr"`
	SchemaVersion string   `xml:"schemaVersion,attr"`
	Source        string   `xml:"Source"`
	Sender        string   `xml:"Sender,omitempty"`
	Created       string   `xml:"Created"`
	Network       network  `xml:"Network"`
}

type network struct {
	Code        string  `xml:"code,attr"`
	StartDate   string  `xml:"startDate,attr"`
	EndDate     string  `xml:"endDate,attr"`
	Identifier  string  `xml:"Identifier"`
	Description string  `xml:"Description,omitempty"`
	Station     station `xml:"Station"`
}

type station struct {
	Code        string  `xml:"code,attr"`
	StartDate   string  `xml:"startDate,attr"`
	EndDate     string  `xml:"endDate,attr"`
	Description string  `xml:"Description,omitempty"`
	Latitude    float64 `xml:"Latitude"`
	Longitude   float64 `xml:"Longitude"`
	Elevation   float64 `xml:"Elevation"`
	Site        site    `xml:"Site"`
	Channel     channel `xml:"Channel"`
}

type site struct {
	Name string `xml:"Name"`
}

type channel struct {
	Code         string   `xml:"code,attr"`
	LocationCode string   `xml:"locationCode,attr"`
	StartDate    string   `xml:"startDate,attr"`
	EndDate      string   `xml:"endDate,attr"`
	Latitude     float64  `xml:"Latitude"`
	Longitude    float64  `xml:"Longitude"`
	Elevation    float64  `xml:"Elevation"`
	Depth        float64  `xml:"Depth"`
	Azimuth      float64  `xml:"Azimuth"`
	Dip          float64  `xml:"Dip"`
	SampleRate   float64  `xml:"SampleRate"`
	Sensor       *sensor  `xml:"Sensor,omitempty"`
	Response     response `xml:"Response"`
}

type sensor struct {
	Description string `xml:"Description"`
}

type response struct {
	InstrumentSensitivity sensitivity `xml:"InstrumentSensitivity"`
}

type sensitivity struct {
	Value       float64 `xml:"Value"`
	Frequency   float64 `xml:"Frequency"`
	InputUnits  units   `xml:"InputUnits"`
	OutputUnits units   `xml:"OutputUnits"`
}

type units struct {
	Name string `xml:"Name"`
}

// Write renders the hierarchy to w. source and sender identify the
// producing institution and the submitting agent.
func Write(w io.Writer, h *metadata.Hierarchy, source, sender string) error {
	net := h.Network
	st := net.Station
	ch := st.Channel

	doc := document{
		Namespace:     namespace,
		SchemaVersion: schemaVersion,
		Source:        source,
		Sender:        sender,
		Created:       time.Now().UTC().Format(timeLayout),
		Network: network{
			Code:        net.Code,
			StartDate:   net.Start.UTC().Format(timeLayout),
			EndDate:     net.End.UTC().Format(timeLayout),
			Identifier:  net.Identifier,
			Description: net.Description,
			Station: station{
				Code:        st.Code,
				StartDate:   st.Start.UTC().Format(timeLayout),
				EndDate:     st.End.UTC().Format(timeLayout),
				Description: st.Description,
				Latitude:    st.Latitude,
				Longitude:   st.Longitude,
				Elevation:   st.Elevation,
				Site:        site{Name: st.SiteName},
				Channel: channel{
					Code:         ch.Code,
					LocationCode: ch.LocationCode,
					StartDate:    ch.Start.UTC().Format(timeLayout),
					EndDate:      ch.End.UTC().Format(timeLayout),
					Latitude:     ch.Latitude,
					Longitude:    ch.Longitude,
					Elevation:    ch.Elevation,
					Depth:        ch.Depth,
					Azimuth:      ch.Azimuth,
					Dip:          ch.Dip,
					SampleRate:   ch.SampleRate,
					Response: response{
						InstrumentSensitivity: sensitivity{
							Value:       ch.SensitivityValue,
							Frequency:   ch.SensitivityFrequency,
							InputUnits:  units{Name: ch.InputUnits},
							OutputUnits: units{Name: ch.OutputUnits},
						},
					},
				},
			},
		},
	}

	if ch.SensorDescription != "" {
		doc.Network.Station.Channel.Sensor = &sensor{Description: ch.SensorDescription}
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return fmt.Errorf("writing XML header: %w", err)
	}

	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encoding StationXML: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("flushing StationXML: %w", err)
	}
	_, err := io.WriteString(w, "\n")
	return err
}
