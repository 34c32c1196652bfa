package theme

import (
	"net/http"
	"time"
)

// Mode is the active colour scheme.
type Mode string

const (
	ModeDark  Mode = "dark"
	ModeLight Mode = "light"
)

// CookieName is the key the preference is persisted under.
const CookieName = "theme"

// ClientHintHeader carries the browser's prefers-color-scheme value once the
// server has advertised it via Accept-CH.
const ClientHintHeader = "Sec-CH-Prefers-Color-Scheme"

// cookieMaxAge keeps the preference for a year.
const cookieMaxAge = 365 * 24 * time.Hour

// ParseMode converts a stored preference to a Mode. Only the exact value
// "light" selects the light scheme; every other value is dark.
func ParseMode(s string) Mode {
	if s == string(ModeLight) {
		return ModeLight
	}
	return ModeDark
}

// IsLight reports whether m is the light scheme.
func (m Mode) IsLight() bool {
	return m == ModeLight
}

// Toggle returns the opposite mode.
func (m Mode) Toggle() Mode {
	if m == ModeLight {
		return ModeDark
	}
	return ModeLight
}

// ResolveMode picks the mode for a request. A saved preference wins; without
// one the OS preference from the client hint is used; dark is the default.
func ResolveMode(r *http.Request) Mode {
	if c, err := r.Cookie(CookieName); err == nil && c.Value != "" {
		return ParseMode(c.Value)
	}
	if hint := r.Header.Get(ClientHintHeader); hint != "" {
		return ParseMode(hint)
	}
	return ModeDark
}

// SetMode persists mode in the preference cookie.
func SetMode(w http.ResponseWriter, mode Mode) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    string(mode),
		Path:     "/",
		MaxAge:   int(cookieMaxAge.Seconds()),
		HttpOnly: false, // readable by the page script so the class flips without a reload
		SameSite: http.SameSiteLaxMode,
	})
}

// Toggle flips the request's current mode, persists it and returns it.
func Toggle(w http.ResponseWriter, r *http.Request) Mode {
	next := ResolveMode(r).Toggle()
	SetMode(w, next)
	return next
}

// AdvertiseClientHint asks the browser to send its colour-scheme preference on
// subsequent requests.
func AdvertiseClientHint(w http.ResponseWriter) {
	w.Header().Set("Accept-CH", ClientHintHeader)
	w.Header().Add("Vary", ClientHintHeader)
}
