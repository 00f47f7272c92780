package handlers

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/CarlosLlanosRodriguez/gestion-torneos-app/clients"
	"github.com/CarlosLlanosRodriguez/gestion-torneos-app/models"
	"github.com/CarlosLlanosRodriguez/gestion-torneos-app/services"
)

type EventHandler struct {
	events  *clients.EventClient
	matches *clients.MatchClient
	players *clients.PlayerClient
	render  *Renderer
	logger  *slog.Logger
}

func NewEventHandler(events *clients.EventClient, matches *clients.MatchClient, players *clients.PlayerClient, render *Renderer, logger *slog.Logger) *EventHandler {
	return &EventHandler{events: events, matches: matches, players: players, render: render, logger: logger}
}

// coordinator builds a fresh event-entry coordinator scoped to one request.
func (h *EventHandler) coordinator() *services.EventEntry {
	return services.NewEventEntry(h.matches, h.players, h.events, h.logger)
}

type eventListData struct {
	Events []models.Event
	Total  int
}

func (h *EventHandler) List(w http.ResponseWriter, r *http.Request) {
	items, total, err := h.events.List(r.Context())
	if err != nil {
		h.render.Render(w, http.StatusOK, "event_list.html", displayError(err), eventListData{})
		return
	}
	h.render.Render(w, http.StatusOK, "event_list.html", "", eventListData{Events: items, Total: total})
}

type eventFormData struct {
	EventID    int
	Match      *models.Match
	HomeRoster []models.Player
	AwayRoster []models.Player
	Types      []models.EventType
	Form       models.EventForm
	Edit       bool
	Degraded   bool
}

func (h *EventHandler) newFormData(entry *services.EventEntry) eventFormData {
	match := entry.Match()
	return eventFormData{
		Match:      match,
		HomeRoster: entry.RosterForTeam(match.HomeTeamID),
		AwayRoster: entry.RosterForTeam(match.AwayTeamID),
		Types:      models.EventTypes,
		Degraded:   entry.Degraded(),
	}
}

// NewForm prepares the create screen for a match: match first, then the
// roster, via the coordinator.
func (h *EventHandler) NewForm(w http.ResponseWriter, r *http.Request) {
	matchID, err := idParam(r, "id")
	if err != nil {
		http.Redirect(w, r, "/matches", http.StatusSeeOther)
		return
	}

	entry := h.coordinator()
	if err := entry.StartCreate(r.Context(), matchID); err != nil {
		h.redirectFrom(w, r, entry, err)
		return
	}

	data := h.newFormData(entry)
	data.Form = models.EventForm{MatchID: matchID, Type: models.EventTypeGoal}
	h.render.Render(w, http.StatusOK, "event_form.html", "", data)
}

func (h *EventHandler) Create(w http.ResponseWriter, r *http.Request) {
	matchID, err := idParam(r, "id")
	if err != nil {
		http.Redirect(w, r, "/matches", http.StatusSeeOther)
		return
	}

	// The coordinator is rebuilt for the submission so the roster constraint
	// is checked against current data, never against hidden form fields.
	entry := h.coordinator()
	if err := entry.StartCreate(r.Context(), matchID); err != nil {
		h.redirectFrom(w, r, entry, err)
		return
	}

	_ = r.ParseForm()
	form := models.EventForm{
		MatchID:     matchID,
		PlayerID:    formInt(r, "player_id"),
		Type:        models.EventType(formValue(r, "type")),
		Minute:      formInt(r, "minute"),
		Description: formValue(r, "description"),
	}

	data := h.newFormData(entry)
	data.Form = form

	if err := entry.ValidateSubmission(&form); err != nil {
		h.render.Render(w, http.StatusBadRequest, "event_form.html", err.Error(), data)
		return
	}

	created, err := h.events.Create(r.Context(), form)
	if err != nil {
		if clients.IsValidation(err) {
			h.render.Render(w, http.StatusBadRequest, "event_form.html", displayError(err), data)
			return
		}
		failureRedirect(w, r, err, "/events")
		return
	}
	h.logger.Info("event recorded",
		slog.Int("id", created.ID),
		slog.Int("match_id", matchID),
		slog.String("type", string(form.Type)))
	http.Redirect(w, r, fmt.Sprintf("/matches/%d", matchID), http.StatusSeeOther)
}

// EditForm prepares the edit screen: event, then its match, then the roster.
func (h *EventHandler) EditForm(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		http.Redirect(w, r, "/events", http.StatusSeeOther)
		return
	}

	entry := h.coordinator()
	if err := entry.StartEdit(r.Context(), id); err != nil {
		h.redirectFrom(w, r, entry, err)
		return
	}

	data := h.newFormData(entry)
	data.EventID = id
	data.Edit = true
	data.Form = *entry.Prefill()
	h.render.Render(w, http.StatusOK, "event_form.html", "", data)
}

func (h *EventHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		http.Redirect(w, r, "/events", http.StatusSeeOther)
		return
	}

	entry := h.coordinator()
	if err := entry.StartEdit(r.Context(), id); err != nil {
		h.redirectFrom(w, r, entry, err)
		return
	}

	_ = r.ParseForm()
	form := models.EventForm{
		PlayerID:    formInt(r, "player_id"),
		Type:        models.EventType(formValue(r, "type")),
		Minute:      formInt(r, "minute"),
		Description: formValue(r, "description"),
	}

	data := h.newFormData(entry)
	data.EventID = id
	data.Edit = true
	data.Form = form

	if err := entry.ValidateSubmission(&form); err != nil {
		h.render.Render(w, http.StatusBadRequest, "event_form.html", err.Error(), data)
		return
	}

	if _, err := h.events.Update(r.Context(), id, form); err != nil {
		if clients.IsValidation(err) {
			h.render.Render(w, http.StatusBadRequest, "event_form.html", displayError(err), data)
			return
		}
		failureRedirect(w, r, err, "/events")
		return
	}
	http.Redirect(w, r, fmt.Sprintf("/matches/%d", entry.Match().ID), http.StatusSeeOther)
}

func (h *EventHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		http.Redirect(w, r, "/events", http.StatusSeeOther)
		return
	}
	if err := h.events.Delete(r.Context(), id); err != nil {
		failureRedirect(w, r, err, "/events")
		return
	}
	http.Redirect(w, r, "/events", http.StatusSeeOther)
}

// redirectFrom sends the user where the failed coordinator chain points:
// the match list on the create path, the event list on the edit path.
func (h *EventHandler) redirectFrom(w http.ResponseWriter, r *http.Request, entry *services.EventEntry, err error) {
	if clients.IsUnauthorized(err) {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}
	switch entry.RedirectTarget() {
	case services.RedirectEventList:
		http.Redirect(w, r, "/events", http.StatusSeeOther)
	default:
		http.Redirect(w, r, "/matches", http.StatusSeeOther)
	}
}
