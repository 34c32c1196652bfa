// Package theme holds the design tokens and the dark/light preference.
//
// Tokens are the single source of truth for branding: colours, fonts, the logo
// and layout constants. The CSS-variable layer served at /theme.css is rendered
// from them, so changing a token (in code or in the YAML override file) changes
// every page.
package theme

// Tokens is the full design-token tree.
type Tokens struct {
	Colors Colors `yaml:"colors" json:"colors"`
	Fonts  Fonts  `yaml:"fonts" json:"fonts"`
	Logo   Logo   `yaml:"logo" json:"logo"`
	Layout Layout `yaml:"layout" json:"layout"`
}

// Colors groups the brand palette, the per-mode semantic colours, difficulty
// badges and map route colours.
type Colors struct {
	Brand      Brand                `yaml:"brand" json:"brand"`
	Dark       Palette              `yaml:"dark" json:"dark"`
	Light      Palette              `yaml:"light" json:"light"`
	Difficulty map[string]BadgePair `yaml:"difficulty" json:"difficulty"`
	Route      RouteColors          `yaml:"route" json:"route"`
}

// Brand is the mode-independent accent palette.
type Brand struct {
	Primary      string `yaml:"primary" json:"primary"`
	PrimaryHover string `yaml:"primaryHover" json:"primaryHover"`
	Accent       string `yaml:"accent" json:"accent"`
	AccentHover  string `yaml:"accentHover" json:"accentHover"`
	AccentDark   string `yaml:"accentDark" json:"accentDark"`
}

// Palette is the set of semantic colours for one mode.
type Palette struct {
	Bg              string `yaml:"bg" json:"bg"`
	BgElevated      string `yaml:"bgElevated" json:"bgElevated"`
	BgGlass         string `yaml:"bgGlass" json:"bgGlass"`
	Text            string `yaml:"text" json:"text"`
	TextMuted       string `yaml:"textMuted" json:"textMuted"`
	TextFaint       string `yaml:"textFaint" json:"textFaint"`
	Border          string `yaml:"border" json:"border"`
	BorderSubtle    string `yaml:"borderSubtle" json:"borderSubtle"`
	Shadow          string `yaml:"shadow" json:"shadow"`
	CardHoverBg     string `yaml:"cardHoverBg" json:"cardHoverBg"`
	ProgressTrack   string `yaml:"progressTrack" json:"progressTrack"`
	SpeedBtnBg      string `yaml:"speedBtnBg" json:"speedBtnBg"`
	SpeedBtnBorder  string `yaml:"speedBtnBorder" json:"speedBtnBorder"`
	SpeedBtnHoverBg string `yaml:"speedBtnHoverBg" json:"speedBtnHoverBg"`
}

// BadgePair holds a difficulty badge for both modes.
type BadgePair struct {
	Dark  Badge `yaml:"dark" json:"dark"`
	Light Badge `yaml:"light" json:"light"`
}

// Badge is a background/text colour pair.
type Badge struct {
	Bg   string `yaml:"bg" json:"bg"`
	Text string `yaml:"text" json:"text"`
}

// RouteColors are the map line colours.
type RouteColors struct {
	Full          string `yaml:"full" json:"full"`
	AnimatedLine  string `yaml:"animatedLine" json:"animatedLine"`
	Head          string `yaml:"head" json:"head"`
	GradientStart string `yaml:"gradientStart" json:"gradientStart"`
	GradientEnd   string `yaml:"gradientEnd" json:"gradientEnd"`
}

// Fonts are the font-family stacks.
type Fonts struct {
	Family string `yaml:"family" json:"family"`
	Mono   string `yaml:"mono" json:"mono"`
}

// Logo is the SVG logo drawn in the header and footer.
type Logo struct {
	ViewBox     string   `yaml:"viewBox" json:"viewBox"`
	Paths       []string `yaml:"paths" json:"paths"`
	StrokeWidth float64  `yaml:"strokeWidth" json:"strokeWidth"`
}

// Layout holds sizing constants.
type Layout struct {
	MaxWidth          string `yaml:"maxWidth" json:"maxWidth"`
	BorderRadius      string `yaml:"borderRadius" json:"borderRadius"`
	BorderRadiusCard  string `yaml:"borderRadiusCard" json:"borderRadiusCard"`
	BorderRadiusBadge string `yaml:"borderRadiusBadge" json:"borderRadiusBadge"`
	BorderRadiusBtn   string `yaml:"borderRadiusBtn" json:"borderRadiusBtn"`
}

// Difficulty levels with a badge.
const (
	DifficultyEasy        = "easy"
	DifficultyModerate    = "moderate"
	DifficultyChallenging = "challenging"
)

// DefaultTokens returns a fresh copy of the built-in tokens.
func DefaultTokens() Tokens {
	return Tokens{
		Colors: Colors{
			Brand: Brand{
				Primary:      "#22c55e",
				PrimaryHover: "#16a34a",
				Accent:       "#00e676",
				AccentHover:  "#00ff84",
				AccentDark:   "#00c853",
			},
			Dark: Palette{
				Bg:              "#0a0a0a",
				BgElevated:      "#141414",
				BgGlass:         "rgba(18, 18, 18, 0.92)",
				Text:            "#ffffff",
				TextMuted:       "#a1a1a1",
				TextFaint:       "#666666",
				Border:          "#222222",
				BorderSubtle:    "rgba(255, 255, 255, 0.08)",
				Shadow:          "rgba(0, 0, 0, 0.4)",
				CardHoverBg:     "#222222",
				ProgressTrack:   "rgba(255, 255, 255, 0.1)",
				SpeedBtnBg:      "rgba(255, 255, 255, 0.08)",
				SpeedBtnBorder:  "rgba(255, 255, 255, 0.15)",
				SpeedBtnHoverBg: "rgba(255, 255, 255, 0.15)",
			},
			Light: Palette{
				Bg:              "#ffffff",
				BgElevated:      "#f5f5f5",
				BgGlass:         "rgba(255, 255, 255, 0.92)",
				Text:            "#1a1a1a",
				TextMuted:       "#666666",
				TextFaint:       "#999999",
				Border:          "#e5e5e5",
				BorderSubtle:    "rgba(0, 0, 0, 0.1)",
				Shadow:          "rgba(0, 0, 0, 0.12)",
				CardHoverBg:     "#f0f0f0",
				ProgressTrack:   "rgba(0, 0, 0, 0.08)",
				SpeedBtnBg:      "rgba(0, 0, 0, 0.05)",
				SpeedBtnBorder:  "rgba(0, 0, 0, 0.15)",
				SpeedBtnHoverBg: "rgba(0, 0, 0, 0.1)",
			},
			Difficulty: map[string]BadgePair{
				DifficultyEasy: {
					Dark:  Badge{Bg: "rgba(0, 230, 118, 0.2)", Text: "#00e676"},
					Light: Badge{Bg: "rgba(0, 200, 83, 0.15)", Text: "#00a152"},
				},
				DifficultyModerate: {
					Dark:  Badge{Bg: "rgba(255, 171, 64, 0.2)", Text: "#ffab40"},
					Light: Badge{Bg: "rgba(230, 126, 34, 0.12)", Text: "#e65100"},
				},
				DifficultyChallenging: {
					Dark:  Badge{Bg: "rgba(255, 82, 82, 0.2)", Text: "#ff5252"},
					Light: Badge{Bg: "rgba(211, 47, 47, 0.12)", Text: "#c62828"},
				},
			},
			Route: RouteColors{
				Full:          "#ff6600",
				AnimatedLine:  "#888888",
				Head:          "red",
				GradientStart: "green",
				GradientEnd:   "red",
			},
		},
		Fonts: Fonts{
			Family: "-apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, Oxygen, Ubuntu, sans-serif",
			Mono:   "'SF Mono', 'Fira Code', 'Fira Mono', Menlo, Consolas, monospace",
		},
		Logo: Logo{
			ViewBox: "0 0 24 24",
			Paths: []string{
				"M12 2L4 7V17L12 22L20 17V7L12 2Z",
				"M12 8L8 10.5V15.5L12 18L16 15.5V10.5L12 8Z",
			},
			StrokeWidth: 2,
		},
		Layout: Layout{
			MaxWidth:          "1400px",
			BorderRadius:      "14px",
			BorderRadiusCard:  "12px",
			BorderRadiusBadge: "20px",
			BorderRadiusBtn:   "8px",
		},
	}
}

// Palette returns the semantic colours for mode.
func (t Tokens) Palette(mode Mode) Palette {
	if mode == ModeLight {
		return t.Colors.Light
	}
	return t.Colors.Dark
}

// Badge returns the badge colours for a difficulty in mode. Unknown
// difficulties fall back to the moderate badge.
func (t Tokens) Badge(difficulty string, mode Mode) Badge {
	pair, ok := t.Colors.Difficulty[difficulty]
	if !ok {
		pair = t.Colors.Difficulty[DifficultyModerate]
	}
	if mode == ModeLight {
		return pair.Light
	}
	return pair.Dark
}
