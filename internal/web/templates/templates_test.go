package templates

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/JonMunkholm/mmc-maps/internal/assets"
	"github.com/JonMunkholm/mmc-maps/internal/core"
	"github.com/JonMunkholm/mmc-maps/internal/elevation"
	"github.com/JonMunkholm/mmc-maps/internal/theme"
	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func render(t *testing.T, c templ.Component) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, c.Render(context.Background(), &buf))
	return buf.String()
}

func testPage(mode theme.Mode) Page {
	return Page{Title: "Test", Mode: mode, Tokens: theme.DefaultTokens()}
}

func TestLayoutMode(t *testing.T) {
	dark := render(t, About(testPage(theme.ModeDark)))
	assert.NotContains(t, dark, `class="light-theme"`)
	assert.Contains(t, dark, `data-theme="dark"`)
	assert.Contains(t, dark, "Light mode")

	light := render(t, About(testPage(theme.ModeLight)))
	assert.Contains(t, light, `<html lang="en" class="light-theme" data-theme="light">`)
	assert.Contains(t, light, "Dark mode")
	assert.Contains(t, light, "<title>Test · MMC Maps</title>")
	assert.Contains(t, light, `<path d="M12 2L4 7V17L12 22L20 17V7L12 2Z"></path>`)
}

func TestHome(t *testing.T) {
	out := render(t, Home(testPage(theme.ModeDark), []assets.Route{
		{Slug: "utmb", Name: "UTMB <Race>", Difficulty: "challenging", DistanceKm: 171.5},
		{Slug: "lac-blanc", Name: "Lac Blanc", Difficulty: "brutal"},
	}))

	assert.Contains(t, out, `href="/route/utmb"`)
	assert.Contains(t, out, "UTMB &lt;Race&gt;")
	assert.NotContains(t, out, "<Race>")
	assert.Contains(t, out, `class="badge" data-difficulty="challenging"`)
	assert.Contains(t, out, `class="badge" data-difficulty="moderate">brutal</span>`)
	assert.Contains(t, out, "171.5 km")
}

func TestHomeEmpty(t *testing.T) {
	out := render(t, Home(testPage(theme.ModeDark), nil))
	assert.Contains(t, out, "No routes yet.")
	assert.NotContains(t, out, "route-grid")
}

func TestRouteMap(t *testing.T) {
	records := elevation.Parse("lat,lon,ele,distance_km_cum\n45.90,6.80,1000,0\n45.91,6.81,1200,1.5\n45.92,6.80,1100,3\n")
	profile := core.Profile{
		Route:   assets.Route{Slug: "utmb", Name: "UTMB", Difficulty: "easy"},
		Records: records,
		Summary: elevation.Summarize(records),
	}

	out := render(t, RouteMap(testPage(theme.ModeDark), profile))
	assert.Contains(t, out, `data-geojson="/api/routes/utmb/geojson"`)
	assert.Contains(t, out, `class="track-full"`)
	assert.Contains(t, out, `class="elevation-chart"`)
	assert.Contains(t, out, `stop-color="green"`)
	assert.Contains(t, out, "<dd>3.0 km</dd>")
	assert.Contains(t, out, "<dd>1200 m</dd>")
}

func TestRouteMapWithoutTrack(t *testing.T) {
	out := render(t, RouteMap(testPage(theme.ModeDark), core.Profile{Route: assets.Route{Slug: "x", Name: "X"}}))
	assert.Contains(t, out, "No track recorded")
	assert.NotContains(t, out, "elevation-chart")
}

func TestErrorPage(t *testing.T) {
	out := render(t, ErrorPage(testPage(theme.ModeDark), 404, core.UserMessage{
		Message: "Route not found",
		Action:  "Pick <a> route",
		Code:    "ROUTE001",
	}))
	assert.Contains(t, out, "<h1>404</h1>")
	assert.Contains(t, out, "Code: ROUTE001")
	assert.Contains(t, out, "Pick &lt;a&gt; route")
}

func TestTrackPoints(t *testing.T) {
	assert.Empty(t, TrackPoints(nil))
	assert.Empty(t, TrackPoints([]elevation.Sample{{Lat: 45, Lon: 6}}))
	assert.Empty(t, TrackPoints([]elevation.Sample{{}, {}, {Lat: 45, Lon: 6}}), "origin samples are skipped")

	// A north-south line is centred horizontally and fills the height.
	got := TrackPoints([]elevation.Sample{{Lat: 45, Lon: 6}, {Lat: 46, Lon: 6}})
	assert.Equal(t, "400.0,490.0 400.0,10.0", got)

	// A single repeated position collapses to the centre.
	got = TrackPoints([]elevation.Sample{{Lat: 45, Lon: 6}, {Lat: 45, Lon: 6}})
	assert.Equal(t, "400.0,250.0 400.0,250.0", got)
}

func TestProfilePoints(t *testing.T) {
	assert.Empty(t, ProfilePoints([]elevation.Sample{{Ele: 100}}))

	got := ProfilePoints([]elevation.Sample{
		{Ele: 100, DistanceKmCum: 0},
		{Ele: 200, DistanceKmCum: 2},
	})
	assert.Equal(t, "10.0,190.0 10.0,190.0 790.0,10.0 790.0,190.0", got)

	// No distance column: x follows sample index. Flat profile sits on the base line.
	got = ProfilePoints([]elevation.Sample{{Ele: 50}, {Ele: 50}, {Ele: 50}})
	pts := strings.Fields(got)
	require.Len(t, pts, 5)
	assert.Equal(t, "400.0,190.0", pts[2])
}

func TestProfilePointsOverflowingSpan(t *testing.T) {
	got := ProfilePoints([]elevation.Sample{
		{Ele: 1e308, DistanceKmCum: -1e308},
		{Ele: -1e308, DistanceKmCum: 1e308},
	})
	require.NotEmpty(t, got)
	assert.NotContains(t, got, "NaN")
	assert.NotContains(t, got, "Inf")
	assert.Len(t, strings.Fields(got), 4)
}

func TestTrackPointsOverflowingSpan(t *testing.T) {
	got := TrackPoints([]elevation.Sample{{Lat: 1e308, Lon: 6}, {Lat: -1e308, Lon: 6}})
	assert.NotContains(t, got, "NaN")
	assert.NotContains(t, got, "Inf")
}

func TestLayoutEscapesTitle(t *testing.T) {
	p := testPage(theme.ModeDark)
	p.Title = `<script>x</script>`
	out := render(t, About(p))
	assert.Contains(t, out, "<title>&lt;script&gt;x&lt;/script&gt; · MMC Maps</title>")
}
