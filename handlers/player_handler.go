package handlers

import (
	"log/slog"
	"net/http"

	"github.com/CarlosLlanosRodriguez/gestion-torneos-app/clients"
	"github.com/CarlosLlanosRodriguez/gestion-torneos-app/models"
)

type PlayerHandler struct {
	players *clients.PlayerClient
	teams   *clients.TeamClient
	render  *Renderer
	logger  *slog.Logger
}

func NewPlayerHandler(players *clients.PlayerClient, teams *clients.TeamClient, render *Renderer, logger *slog.Logger) *PlayerHandler {
	return &PlayerHandler{players: players, teams: teams, render: render, logger: logger}
}

type playerListData struct {
	Players []models.Player
	Total   int
}

func (h *PlayerHandler) List(w http.ResponseWriter, r *http.Request) {
	items, total, err := h.players.List(r.Context())
	if err != nil {
		h.render.Render(w, http.StatusOK, "player_list.html", displayError(err), playerListData{})
		return
	}
	h.render.Render(w, http.StatusOK, "player_list.html", "", playerListData{Players: items, Total: total})
}

type playerFormData struct {
	ID    int
	Form  models.PlayerForm
	Teams []models.Team
	Edit  bool
}

func (h *PlayerHandler) NewForm(w http.ResponseWriter, r *http.Request) {
	data := playerFormData{}
	h.fillTeams(r, &data)
	h.render.Render(w, http.StatusOK, "player_form.html", "", data)
}

func (h *PlayerHandler) Create(w http.ResponseWriter, r *http.Request) {
	_ = r.ParseForm()
	form := models.PlayerForm{
		Name:        formValue(r, "name"),
		ShirtNumber: formInt(r, "shirt_number"),
		TeamID:      formInt(r, "team_id"),
	}
	data := playerFormData{Form: form}

	created, err := h.players.Create(r.Context(), form)
	if err != nil {
		if clients.IsValidation(err) {
			h.fillTeams(r, &data)
			h.render.Render(w, http.StatusBadRequest, "player_form.html", displayError(err), data)
			return
		}
		failureRedirect(w, r, err, "/players")
		return
	}
	h.logger.Info("player created", slog.Int("id", created.ID), slog.Int("team_id", created.TeamID))
	http.Redirect(w, r, "/players", http.StatusSeeOther)
}

func (h *PlayerHandler) EditForm(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		http.Redirect(w, r, "/players", http.StatusSeeOther)
		return
	}

	p, err := h.players.GetByID(r.Context(), id)
	if err != nil {
		failureRedirect(w, r, err, "/players")
		return
	}

	data := playerFormData{
		ID:   p.ID,
		Form: models.PlayerForm{Name: p.Name, ShirtNumber: p.ShirtNumber, TeamID: p.TeamID},
		Edit: true,
	}
	h.fillTeams(r, &data)
	h.render.Render(w, http.StatusOK, "player_form.html", "", data)
}

func (h *PlayerHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		http.Redirect(w, r, "/players", http.StatusSeeOther)
		return
	}

	_ = r.ParseForm()
	form := models.PlayerForm{
		Name:        formValue(r, "name"),
		ShirtNumber: formInt(r, "shirt_number"),
		TeamID:      formInt(r, "team_id"),
	}
	data := playerFormData{ID: id, Form: form, Edit: true}

	if _, err := h.players.Update(r.Context(), id, form); err != nil {
		if clients.IsValidation(err) {
			h.fillTeams(r, &data)
			h.render.Render(w, http.StatusBadRequest, "player_form.html", displayError(err), data)
			return
		}
		failureRedirect(w, r, err, "/players")
		return
	}
	http.Redirect(w, r, "/players", http.StatusSeeOther)
}

func (h *PlayerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		http.Redirect(w, r, "/players", http.StatusSeeOther)
		return
	}
	if err := h.players.Delete(r.Context(), id); err != nil {
		failureRedirect(w, r, err, "/players")
		return
	}
	http.Redirect(w, r, "/players", http.StatusSeeOther)
}

func (h *PlayerHandler) fillTeams(r *http.Request, data *playerFormData) {
	if teams, _, err := h.teams.List(r.Context()); err == nil {
		data.Teams = teams
	}
}
