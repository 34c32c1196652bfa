// Package templates holds the templ page components and the helpers they call.
package templates

//go:generate templ generate

import (
	"strconv"

	"github.com/JonMunkholm/mmc-maps/internal/theme"
	"github.com/a-h/templ"
)

// Page carries what every page needs from the request.
type Page struct {
	Title  string
	Mode   theme.Mode
	Tokens theme.Tokens
}

func pageTitle(title string) string {
	if title == "" {
		return "MMC Maps"
	}
	return title + " · MMC Maps"
}

func toggleLabel(m theme.Mode) string {
	if m.IsLight() {
		return "Dark mode"
	}
	return "Light mode"
}

func strokeWidth(w float64) string {
	return strconv.FormatFloat(w, 'g', -1, 64)
}

// badgeDifficulty names the badge style for a difficulty. Unknown
// difficulties use the moderate badge.
func badgeDifficulty(t theme.Tokens, difficulty string) string {
	if _, ok := t.Colors.Difficulty[difficulty]; ok {
		return difficulty
	}
	return theme.DifficultyModerate
}

// routeURL links to a route page. Slugs are validated by the asset source.
func routeURL(slug string) templ.SafeURL {
	return templ.URL("/route/" + slug)
}

func geoJSONURL(slug string) string {
	return "/api/routes/" + slug + "/geojson"
}

func viewBox(w, h int) string {
	return "0 0 " + strconv.Itoa(w) + " " + strconv.Itoa(h)
}

func formatFloat(v float64, prec int) string {
	return strconv.FormatFloat(v, 'f', prec, 64)
}
