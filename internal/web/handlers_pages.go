package web

import (
	"net/http"

	"github.com/JonMunkholm/mmc-maps/internal/logging"
	"github.com/JonMunkholm/mmc-maps/internal/theme"
	"github.com/JonMunkholm/mmc-maps/internal/web/templates"
	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"
)

// page builds the per-request page context in the resolved theme mode.
func (s *Server) page(r *http.Request, title string) templates.Page {
	return templates.Page{
		Title:  title,
		Mode:   theme.ResolveMode(r),
		Tokens: s.themes.Tokens(),
	}
}

// render writes a full HTML page.
func render(w http.ResponseWriter, r *http.Request, c templ.Component) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := c.Render(r.Context(), w); err != nil {
		logging.FromContext(r.Context()).Error("render page", "path", r.URL.Path, "error", err)
	}
}

// handleHome renders the route list.
func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	routes, err := s.service.Routes(r.Context())
	if err != nil {
		s.respondError(w, r, err, statusFor(err))
		return
	}
	render(w, r, templates.Home(s.page(r, ""), routes))
}

func (s *Server) handleAbout(w http.ResponseWriter, r *http.Request) {
	render(w, r, templates.About(s.page(r, "About")))
}

// handleRoutePage renders the map and elevation chart for one route.
func (s *Server) handleRoutePage(w http.ResponseWriter, r *http.Request) {
	profile, err := s.service.Profile(r.Context(), chi.URLParam(r, "routeID"))
	if err != nil {
		s.respondError(w, r, err, statusFor(err))
		return
	}
	render(w, r, templates.RouteMap(s.page(r, profile.Route.Name), profile))
}
