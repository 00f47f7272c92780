package handlers

import (
	"log/slog"
	"net/http"

	"github.com/CarlosLlanosRodriguez/gestion-torneos-app/clients"
	"github.com/CarlosLlanosRodriguez/gestion-torneos-app/models"
	"github.com/CarlosLlanosRodriguez/gestion-torneos-app/session"
)

type AuthHandler struct {
	auth     *clients.AuthClient
	sessions *session.Store
	render   *Renderer
	logger   *slog.Logger
}

func NewAuthHandler(auth *clients.AuthClient, sessions *session.Store, render *Renderer, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{auth: auth, sessions: sessions, render: render, logger: logger}
}

func (h *AuthHandler) LoginForm(w http.ResponseWriter, r *http.Request) {
	if h.sessions.Authenticated() {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	h.render.Render(w, http.StatusOK, "login.html", "", nil)
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.render.Render(w, http.StatusBadRequest, "login.html", "invalid form submission", nil)
		return
	}

	creds := models.Credentials{
		Email:    formValue(r, "email"),
		Password: r.FormValue("password"),
	}

	res, err := h.auth.Login(r.Context(), creds)
	if err != nil {
		h.render.Render(w, http.StatusUnauthorized, "login.html", displayError(err), nil)
		return
	}

	if err := h.sessions.Set(res.Token, res.User); err != nil {
		h.logger.Error("failed to persist session", slog.Any("error", err))
		h.render.Render(w, http.StatusInternalServerError, "login.html", "could not store the session", nil)
		return
	}

	h.logger.Info("user logged in", slog.Int("user_id", res.User.ID), slog.String("role", res.User.Role))
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.Clear(); err != nil {
		h.logger.Error("failed to clear session", slog.Any("error", err))
	}
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}
