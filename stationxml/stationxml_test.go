package stationxml

import (
	"bytes"
	"encoding/xml"
	"strings"
	"testing"
	"time"

	"github.com/oceanobs/hydroseis/metadata"
	"github.com/oceanobs/hydroseis/timestamp"
)

func testHierarchy(t *testing.T) *metadata.Hierarchy {
	t.Helper()

	tmpl := metadata.Station{
		NetworkCode:          "X9",
		StationCode:          "HYD01",
		ChannelCode:          "BDH",
		LocationCode:         "00",
		Latitude:             "37.74",
		Longitude:            "-25.67",
		Elevation:            "-1020",
		ChannelLatitude:      "37.74",
		ChannelLongitude:     "-25.67",
		ChannelElevation:     "-1020",
		ChannelDepth:         "1020",
		Azimuth:              "0",
		Dip:                  "-90",
		SensitivityValue:     "-170.0",
		SensitivityFrequency: "1.0",
		InputUnitsName:       "Pa",
		OutputUnitsName:      "count",
		NetworkIdentifier:    "X9-2024",
		SensorDescription:    "broadband hydrophone",
		SiteName:             "Azores margin",
	}

	start := time.Date(2024, 5, 17, 1, 25, 33, 0, time.UTC)
	w := timestamp.Window{Start: start, End: start.Add(2 * time.Hour)}

	h, err := metadata.BuildHierarchy(tmpl, w, 300)
	if err != nil {
		t.Fatalf("BuildHierarchy() error = %v", err)
	}
	return h
}

func TestWrite(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := Write(&buf, testHierarchy(t), "OceanObs", "ODC"); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	out := buf.String()

	// Must be well-formed XML.
	var probe struct{}
	if err := xml.Unmarshal(buf.Bytes(), &probe); err != nil {
		t.Fatalf("output is not well-formed XML: %v", err)
	}

	for _, want := range []string{
		`<FDSNStationXML xmlns="http://www.fdsn.org/xml/station/1" schemaVersion="1.1">`,
		`<Source>OceanObs</Source>`,
		`<Sender>ODC</Sender>`,
		`<Network code="X9" startDate="2024-05-17T01:25:33Z" endDate="2024-05-17T03:25:33Z">`,
		`<Identifier>urn:network_identifier:X9-2024</Identifier>`,
		`<Station code="HYD01" startDate="2024-05-17T01:25:33Z" endDate="2024-05-17T03:25:33Z">`,
		`<Channel code="BDH" locationCode="00" startDate="2024-05-17T01:25:33Z" endDate="2024-05-17T03:25:33Z">`,
		`<SampleRate>300</SampleRate>`,
		`<Description>broadband hydrophone</Description>`,
		`<Name>Pa</Name>`,
		`<Name>count</Name>`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q\n%s", want, out)
		}
	}
}

func TestWrite_ElementOrder(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := Write(&buf, testHierarchy(t), "OceanObs", "ODC"); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	out := buf.String()

	// EIDA ordering: Source before Sender, Identifier first under Network,
	// Station last under Network.
	src := strings.Index(out, "<Source>")
	snd := strings.Index(out, "<Sender>")
	netOpen := strings.Index(out, "<Network")
	ident := strings.Index(out, "<Identifier>")
	desc := strings.Index(out, "<Description>")
	sta := strings.Index(out, "<Station")

	if src == -1 || snd == -1 || src > snd {
		t.Error("Source must precede Sender")
	}
	if ident == -1 || ident < netOpen {
		t.Error("Identifier must be inside Network")
	}
	if desc != -1 && ident > desc {
		t.Error("Identifier must come before the Network description")
	}
	if sta == -1 || sta < ident {
		t.Error("Station must follow Identifier under Network")
	}
}
