package templates

import (
	"math"
	"strconv"
	"strings"

	"github.com/JonMunkholm/mmc-maps/internal/elevation"
)

// Chart viewport sizes in SVG user units.
const (
	TrackWidth    = 800
	TrackHeight   = 500
	ProfileWidth  = 800
	ProfileHeight = 200

	chartPad = 10
)

// point is a projected SVG coordinate.
type point struct{ X, Y float64 }

// TrackPoints projects sample positions into a TrackWidth x TrackHeight box,
// preserving aspect ratio. Longitude is scaled by cos(mean latitude) so the
// shape is not stretched away from the equator. Samples without a position
// (0,0) are skipped.
func TrackPoints(samples []elevation.Sample) string {
	var lats, lons []float64
	for _, s := range samples {
		if s.Lat == 0 && s.Lon == 0 {
			continue
		}
		lats = append(lats, s.Lat)
		lons = append(lons, s.Lon)
	}
	if len(lats) < 2 {
		return ""
	}

	var meanLat float64
	for _, lat := range lats {
		meanLat += lat / float64(len(lats))
	}
	kx := math.Cos(meanLat * math.Pi / 180)

	xs := make([]float64, len(lons))
	for i, lon := range lons {
		xs[i] = lon * kx
	}
	minX, maxX := bounds(xs)
	minY, maxY := bounds(lats)

	// Work in half units so spans of extreme values stay finite.
	hx, hy := halfSpan(minX, maxX), halfSpan(minY, maxY)
	scale := math.Min(
		safeDiv(TrackWidth-2*chartPad, hx),
		safeDiv(TrackHeight-2*chartPad, hy),
	)
	if math.IsInf(scale, 1) {
		scale = 1
	}
	offX := (TrackWidth - hx*scale) / 2
	offY := (TrackHeight - hy*scale) / 2

	pts := make([]point, len(xs))
	for i := range xs {
		pts[i] = point{
			X: offX + (xs[i]/2-minX/2)*scale,
			Y: TrackHeight - offY - (lats[i]/2-minY/2)*scale,
		}
	}
	return joinPoints(pts)
}

// ProfilePoints draws elevation against cumulative distance, closed along the
// bottom edge so it can be filled. Falls back to sample index when the
// profile carries no distance column.
func ProfilePoints(samples []elevation.Sample) string {
	if len(samples) < 2 {
		return ""
	}

	xs := make([]float64, len(samples))
	ys := make([]float64, len(samples))
	for i, s := range samples {
		xs[i] = s.DistanceKmCum
		ys[i] = s.Ele
	}
	minX, maxX := bounds(xs)
	if maxX == minX {
		for i := range xs {
			xs[i] = float64(i)
		}
		minX, maxX = 0, float64(len(xs)-1)
	}
	minY, maxY := bounds(ys)

	const w, h = ProfileWidth - 2*chartPad, ProfileHeight - 2*chartPad
	base := float64(ProfileHeight - chartPad)

	pts := make([]point, 0, len(xs)+2)
	pts = append(pts, point{X: chartPad, Y: base})
	for i := range xs {
		pts = append(pts, point{
			X: chartPad + frac(xs[i], minX, maxX)*w,
			Y: base - frac(ys[i], minY, maxY)*h,
		})
	}
	pts = append(pts, point{X: chartPad + w, Y: base})
	return joinPoints(pts)
}

func bounds(v []float64) (lo, hi float64) {
	lo, hi = v[0], v[0]
	for _, x := range v[1:] {
		lo = math.Min(lo, x)
		hi = math.Max(hi, x)
	}
	return lo, hi
}

// halfSpan is (hi-lo)/2 computed without overflowing.
func halfSpan(lo, hi float64) float64 {
	return hi/2 - lo/2
}

// frac places v within [lo, hi] as a value in [0, 1]. An empty range maps to 0.
func frac(v, lo, hi float64) float64 {
	h := halfSpan(lo, hi)
	if h == 0 {
		return 0
	}
	return (v/2 - lo/2) / h
}

func safeDiv(a, b float64) float64 {
	if b == 0 {
		return math.Inf(1)
	}
	return a / b
}

func joinPoints(pts []point) string {
	var b strings.Builder
	for i, p := range pts {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.FormatFloat(p.X, 'f', 1, 64))
		b.WriteByte(',')
		b.WriteString(strconv.FormatFloat(p.Y, 'f', 1, 64))
	}
	return b.String()
}
