// Package handlers serves the console screens: one list/detail/form set per
// resource, each a thin consumer of one or two resource clients.
package handlers

import (
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/CarlosLlanosRodriguez/gestion-torneos-app/models"
	"github.com/CarlosLlanosRodriguez/gestion-torneos-app/session"
)

//go:embed templates/*.html
var templateFS embed.FS

// pages lists every screen template. Each is parsed together with the shared
// layout so {{template "content" .}} resolves per page.
var pages = []string{
	"login.html",
	"home.html",
	"tournament_list.html",
	"tournament_detail.html",
	"tournament_form.html",
	"team_list.html",
	"team_detail.html",
	"team_form.html",
	"match_list.html",
	"match_detail.html",
	"match_form.html",
	"player_list.html",
	"player_form.html",
	"event_list.html",
	"event_form.html",
	"user_list.html",
	"user_form.html",
	"user_password_form.html",
}

// view is the envelope every template receives.
type view struct {
	User  *models.User
	Error string
	Data  any
}

type Renderer struct {
	templates map[string]*template.Template
	sessions  *session.Store
	logger    *slog.Logger
}

func NewRenderer(sessions *session.Store, logger *slog.Logger) (*Renderer, error) {
	tmpls := make(map[string]*template.Template, len(pages))
	for _, page := range pages {
		t, err := template.ParseFS(templateFS, "templates/layout.html", "templates/"+page)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", page, err)
		}
		tmpls[page] = t
	}
	return &Renderer{templates: tmpls, sessions: sessions, logger: logger}, nil
}

// Render writes the given page. errMsg, when non-empty, is shown in the
// layout's error banner.
func (rn *Renderer) Render(w http.ResponseWriter, status int, page, errMsg string, data any) {
	t, ok := rn.templates[page]
	if !ok {
		rn.logger.Error("unknown template", slog.String("page", page))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	v := view{User: rn.sessions.User(), Error: errMsg, Data: data}
	if err := t.ExecuteTemplate(w, "layout", v); err != nil {
		rn.logger.Error("render failed", slog.String("page", page), slog.Any("error", err))
	}
}
