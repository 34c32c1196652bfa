package theme

import (
	"fmt"
	"sort"
	"strings"
)

// CSS renders the CSS-variable layer. Dark values live on :root and light
// values on .light-theme, so toggling that class on <html> flips every page.
func CSS(t Tokens) string {
	var b strings.Builder

	b.WriteString(":root {\n")
	writeVar(&b, "brand-primary", t.Colors.Brand.Primary)
	writeVar(&b, "brand-primary-hover", t.Colors.Brand.PrimaryHover)
	writeVar(&b, "brand-accent", t.Colors.Brand.Accent)
	writeVar(&b, "brand-accent-hover", t.Colors.Brand.AccentHover)
	writeVar(&b, "brand-accent-dark", t.Colors.Brand.AccentDark)
	writeVar(&b, "route-full", t.Colors.Route.Full)
	writeVar(&b, "route-animated-line", t.Colors.Route.AnimatedLine)
	writeVar(&b, "route-head", t.Colors.Route.Head)
	writeVar(&b, "route-gradient-start", t.Colors.Route.GradientStart)
	writeVar(&b, "route-gradient-end", t.Colors.Route.GradientEnd)
	writeVar(&b, "font-family", t.Fonts.Family)
	writeVar(&b, "font-mono", t.Fonts.Mono)
	writeVar(&b, "max-width", t.Layout.MaxWidth)
	writeVar(&b, "radius", t.Layout.BorderRadius)
	writeVar(&b, "radius-card", t.Layout.BorderRadiusCard)
	writeVar(&b, "radius-badge", t.Layout.BorderRadiusBadge)
	writeVar(&b, "radius-btn", t.Layout.BorderRadiusBtn)
	writePalette(&b, t.Colors.Dark)
	writeBadges(&b, t, ModeDark)
	b.WriteString("}\n\n")

	b.WriteString(".light-theme {\n")
	writePalette(&b, t.Colors.Light)
	writeBadges(&b, t, ModeLight)
	b.WriteString("}\n")

	return b.String()
}

func writePalette(b *strings.Builder, p Palette) {
	writeVar(b, "bg", p.Bg)
	writeVar(b, "bg-elevated", p.BgElevated)
	writeVar(b, "bg-glass", p.BgGlass)
	writeVar(b, "text", p.Text)
	writeVar(b, "text-muted", p.TextMuted)
	writeVar(b, "text-faint", p.TextFaint)
	writeVar(b, "border", p.Border)
	writeVar(b, "border-subtle", p.BorderSubtle)
	writeVar(b, "shadow", p.Shadow)
	writeVar(b, "card-hover-bg", p.CardHoverBg)
	writeVar(b, "progress-track", p.ProgressTrack)
	writeVar(b, "speed-btn-bg", p.SpeedBtnBg)
	writeVar(b, "speed-btn-border", p.SpeedBtnBorder)
	writeVar(b, "speed-btn-hover-bg", p.SpeedBtnHoverBg)
}

func writeBadges(b *strings.Builder, t Tokens, mode Mode) {
	names := make([]string, 0, len(t.Colors.Difficulty))
	for name := range t.Colors.Difficulty {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		badge := t.Badge(name, mode)
		writeVar(b, "difficulty-"+name+"-bg", badge.Bg)
		writeVar(b, "difficulty-"+name+"-text", badge.Text)
	}
}

// writeVar skips empty values so a partial override never emits "--x: ;".
func writeVar(b *strings.Builder, name, value string) {
	if value == "" {
		return
	}
	fmt.Fprintf(b, "  --%s: %s;\n", name, sanitizeCSSValue(value))
}

// sanitizeCSSValue drops characters that could close the declaration or block.
func sanitizeCSSValue(v string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ';', '{', '}', '<', '>', '\n', '\r':
			return -1
		}
		return r
	}, v)
}
