// SPDX-License-Identifier: EPL-2.0

package hydroseis

import (
	"context"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/oceanobs/hydroseis/batch"
	"github.com/oceanobs/hydroseis/config"
	"github.com/oceanobs/hydroseis/formats/wav"
	"github.com/oceanobs/hydroseis/metadata"
)

// captureEncoder stands in for ffmpeg and just materializes the flac path.
type captureEncoder struct {
	tags map[string]string
}

func (e *captureEncoder) Encode(ctx context.Context, wavPath, flacPath string, tags map[string]string) error {
	if _, err := os.Stat(wavPath); err != nil {
		return err
	}
	e.tags = tags
	return os.WriteFile(flacPath, []byte("flac"), 0o644)
}

func writeSineWav(t *testing.T, path string, rate, n int, freq float64) {
	t.Helper()

	samples := make([]float64, n)
	for i := range samples {
		samples[i] = 0.5 * math.Sin(2*math.Pi*freq*float64(i)/float64(rate))
	}

	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := wav.Write16(f, rate, samples); err != nil {
		t.Fatal(err)
	}
}

func TestProcessEndToEnd(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	input := filepath.Join(dir, "2024-05-17_09-25-33_buoy7.wav")
	writeSineWav(t, input, 8000, 16000, 100)

	enc := &captureEncoder{}
	cfg := config.Config{TargetRate: 1000, ChunkSize: 4096, FilterTaps: 101, Workers: 1}

	report, err := ProcessWith(context.Background(), batch.Request{
		Paths:  []string{input},
		Offset: "UTC+8",
		Archival: metadata.Archival{
			InstitutionCode:       "OBS",
			SiteCode:              "B7",
			Title:                 "Buoy 7 hydrophone",
			PrincipalInvestigator: "R. Marsh",
			CreatorName:           "OceanObs",
			License:               "CC-BY-4.0",
			GeospatialLatMin:      "54.1",
			GeospatialLatMax:      "54.2",
			GeospatialLonMin:      "10.5",
			GeospatialLonMax:      "10.6",
		},
		Station: metadata.Station{
			NetworkCode:          "X9",
			StationCode:          "BUOY7",
			ChannelCode:          "HDH",
			LocationCode:         "00",
			Latitude:             "54.15",
			Longitude:            "10.55",
			Elevation:            "-1020",
			ChannelLatitude:      "54.15",
			ChannelLongitude:     "10.55",
			ChannelElevation:     "-1020",
			ChannelDepth:         "1020",
			Azimuth:              "0",
			Dip:                  "-90",
			SensitivityValue:     "1.0",
			SensitivityFrequency: "10",
			InputUnitsName:       "Pa",
			OutputUnitsName:      "COUNTS",
			NetworkIdentifier:    "oceanobs-x9",
		},
	}, Options{Config: &cfg, Encoder: enc})
	if err != nil {
		t.Fatalf("ProcessWith: %v", err)
	}

	if report.Succeeded != 1 || report.Failed != 0 {
		t.Fatalf("succeeded/failed = %d/%d, want 1/0: %v",
			report.Succeeded, report.Failed, report.Results[0].Err)
	}
	if got := report.Outcome(); got != batch.OutcomeOK {
		t.Errorf("Outcome = %q, want %q", got, batch.OutcomeOK)
	}

	for _, suffix := range []string{".flac", ".mseed", ".station.xml"} {
		p := filepath.Join(dir, "2024-05-17_09-25-33_buoy7"+suffix)
		if _, err := os.Stat(p); err != nil {
			t.Errorf("missing artifact %s: %v", p, err)
		}
	}

	if enc.tags["time_coverage_start"] != "2024-05-17T01:25:33Z" {
		t.Errorf("time_coverage_start = %q, want 2024-05-17T01:25:33Z", enc.tags["time_coverage_start"])
	}
	if enc.tags["initial_sampling_rate"] != "8000" {
		t.Errorf("initial_sampling_rate = %q, want 8000", enc.tags["initial_sampling_rate"])
	}
}

func ExampleProcess() {
	report, err := Process(context.Background(), batch.Request{
		Paths:    []string{"2024-05-17_09-25-33_buoy7.wav"},
		Offset:   "UTC+8",
		Archival: metadata.Archival{ /* from institution template */ },
		Station:  metadata.Station{ /* from deployment template */ },
	})
	if err != nil {
		fmt.Println("batch aborted:", err)
		return
	}
	fmt.Println(report.Outcome())
}
