package handlers

import (
	"net/http"

	"github.com/CarlosLlanosRodriguez/gestion-torneos-app/clients"
	"github.com/CarlosLlanosRodriguez/gestion-torneos-app/models"
)

type HomeHandler struct {
	tournaments *clients.TournamentClient
	render      *Renderer
}

func NewHomeHandler(tournaments *clients.TournamentClient, render *Renderer) *HomeHandler {
	return &HomeHandler{tournaments: tournaments, render: render}
}

type homeData struct {
	InProgress []models.Tournament
	Total      int
}

// Home shows the tournaments currently in progress as a landing view.
func (h *HomeHandler) Home(w http.ResponseWriter, r *http.Request) {
	data := homeData{}
	items, total, err := h.tournaments.ByStatus(r.Context(), models.TournamentStatusInProgress)
	if err == nil {
		data.InProgress = items
		data.Total = total
	}
	// A failed fetch leaves the landing view empty; the list screens surface
	// their own errors.
	h.render.Render(w, http.StatusOK, "home.html", "", data)
}
