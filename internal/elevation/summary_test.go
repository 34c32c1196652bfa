package elevation

import (
	"testing"
)

const sampleProfile = `lat,lon,ele,time,segment_distance_km,distance_km_cum,segment_time_s,elev_delta_m,elev_gain_pos_m,elev_gain_pos_cum_m,slope_percent
45.90,6.87,1030.0,2024-06-01T07:00:00Z,0,0,0,0,0,0,0
45.91,6.88,1045.5,2024-06-01T07:01:00Z,0.25,0.25,60,15.5,15.5,15.5,6.2
45.92,6.89,1038.0,2024-06-01T07:02:30Z,0.30,0.55,90,-7.5,0,15.5,-2.5
45.93,6.90,1062.0,2024-06-01T07:04:00Z,0.20,0.75,90,24,24,39.5,12`

func TestSummarize(t *testing.T) {
	got := Summarize(Parse(sampleProfile))

	want := Summary{
		Points:          4,
		DistanceKm:      0.75,
		ElevationGainM:  39.5,
		MinElevationM:   1030,
		MaxElevationM:   1062,
		DurationS:       240,
		MinSlopePercent: -2.5,
		MaxSlopePercent: 12,
	}

	if got != want {
		t.Errorf("Summarize() = %+v, want %+v", got, want)
	}
}

func TestSummarize_Empty(t *testing.T) {
	if got := Summarize(nil); got != (Summary{}) {
		t.Errorf("Summarize(nil) = %+v, want zero", got)
	}
}

func TestSummarize_MissingColumns(t *testing.T) {
	got := Summarize(Parse("time\n2024-06-01T07:00:00Z\n2024-06-01T07:01:00Z"))

	if got.Points != 2 {
		t.Errorf("Points = %d, want 2", got.Points)
	}
	if got.DistanceKm != 0 || got.MaxElevationM != 0 {
		t.Errorf("missing numeric columns should summarize to zero, got %+v", got)
	}
}

func TestRecordSample(t *testing.T) {
	records := Parse(sampleProfile)
	samples := Samples(records)

	if len(samples) != len(records) {
		t.Fatalf("len(samples) = %d, want %d", len(samples), len(records))
	}

	s := samples[2]
	if s.Ele != 1038 || s.Time != "2024-06-01T07:02:30Z" || s.ElevDeltaM != -7.5 {
		t.Errorf("sample[2] = %+v", s)
	}
}

func TestRecordAccessors(t *testing.T) {
	r := Record{"lat": 45.1, "time": "2024-06-01T07:00:00Z"}

	if r.Float("time") != 0 {
		t.Error("Float on string column should be 0")
	}
	if r.Text("lat") != "" {
		t.Error("Text on numeric column should be empty")
	}
	if r.Float("missing") != 0 || r.Text("missing") != "" {
		t.Error("missing column should yield zero values")
	}
	if !r.Has("lat") || r.Has("ele") {
		t.Error("Has reported wrong membership")
	}
}
