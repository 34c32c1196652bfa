package elevation

import (
	"fmt"
	"strings"
	"testing"
)

// generateProfile builds a realistic elevation CSV with n data rows.
func generateProfile(n int) string {
	var b strings.Builder
	b.WriteString("lat,lon,ele,time,segment_distance_km,distance_km_cum,segment_time_s,elev_delta_m,elev_gain_pos_m,elev_gain_pos_cum_m,slope_percent\n")
	for i := 0; i < n; i++ {
		fmt.Fprintf(&b, "%.6f,%.6f,%.1f,2024-06-01T07:%02d:%02dZ,0.012,%.3f,5,0.4,0.4,%.1f,3.3\n",
			45.9+float64(i)*0.0001, 6.87+float64(i)*0.0001, 1030+float64(i%400)*0.4,
			(i/60)%60, i%60, float64(i)*0.012, float64(i)*0.4)
	}
	return b.String()
}

// BenchmarkParse measures a typical race-length profile (~5k points).
func BenchmarkParse(b *testing.B) {
	input := generateProfile(5000)

	b.ReportAllocs()
	b.SetBytes(int64(len(input)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Parse(input)
	}
}

// BenchmarkParseNumber benchmarks the numeric cell conversion hot path.
func BenchmarkParseNumber(b *testing.B) {
	cells := []string{"45.912345", "-2.5", "1035.2", "", "abc", "1.5e-3"}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, c := range cells {
			parseNumber(c)
		}
	}
}

// BenchmarkParseReader includes BOM skipping and UTF-8 sanitization.
func BenchmarkParseReader(b *testing.B) {
	input := generateProfile(5000)

	b.ReportAllocs()
	b.SetBytes(int64(len(input)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := ParseReader(strings.NewReader(input), 0); err != nil {
			b.Fatal(err)
		}
	}
}
