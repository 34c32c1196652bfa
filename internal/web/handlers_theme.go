package web

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/JonMunkholm/mmc-maps/internal/core"
	"github.com/JonMunkholm/mmc-maps/internal/logging"
	"github.com/JonMunkholm/mmc-maps/internal/theme"
)

// maxThemeBody bounds POST /api/theme bodies.
const maxThemeBody = 1 << 10

// themeResponse is the body of GET /api/theme.
type themeResponse struct {
	Mode   theme.Mode    `json:"mode"`
	Tokens *theme.Tokens `json:"tokens,omitempty"`
}

type themeRequest struct {
	Mode string `json:"mode"`
}

// handleGetTheme returns the resolved mode and the current design tokens.
func (s *Server) handleGetTheme(w http.ResponseWriter, r *http.Request) {
	tokens := s.themes.Tokens()
	writeJSON(w, themeResponse{Mode: theme.ResolveMode(r), Tokens: &tokens})
}

// handleSetTheme persists a mode preference. An empty body toggles the
// current mode.
func (s *Server) handleSetTheme(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxThemeBody))
	if err != nil {
		err = fmt.Errorf("%w: %v", errBadRequest, err)
		s.respondError(w, r, err, statusFor(err))
		return
	}

	var mode theme.Mode
	if strings.TrimSpace(string(body)) == "" {
		mode = theme.Toggle(w, r)
	} else {
		var req themeRequest
		if err := json.Unmarshal(body, &req); err != nil {
			err = fmt.Errorf("%w: %v", errBadRequest, err)
			s.respondError(w, r, err, statusFor(err))
			return
		}
		switch theme.Mode(req.Mode) {
		case theme.ModeLight, theme.ModeDark:
			mode = theme.Mode(req.Mode)
		default:
			err := fmt.Errorf("%w: mode must be %q or %q", errBadRequest, theme.ModeLight, theme.ModeDark)
			s.respondError(w, r, err, statusFor(err))
			return
		}
		theme.SetMode(w, mode)
	}

	core.RecordThemeChange(string(mode))
	writeJSON(w, themeResponse{Mode: mode})
}

// handleThemeCSS serves the CSS-variable layer for the current tokens.
// Tokens can change at runtime, so clients revalidate on every load.
func (s *Server) handleThemeCSS(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")
	if _, err := io.WriteString(w, theme.CSS(s.themes.Tokens())); err != nil {
		logging.FromContext(r.Context()).Debug("write theme css", "error", err)
	}
}
