package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/CarlosLlanosRodriguez/gestion-torneos-app/clients"
	"github.com/CarlosLlanosRodriguez/gestion-torneos-app/models"
	"golang.org/x/sync/errgroup"
)

type MatchHandler struct {
	matches     *clients.MatchClient
	tournaments *clients.TournamentClient
	teams       *clients.TeamClient
	events      *clients.EventClient
	render      *Renderer
	logger      *slog.Logger
}

func NewMatchHandler(matches *clients.MatchClient, tournaments *clients.TournamentClient, teams *clients.TeamClient, events *clients.EventClient, render *Renderer, logger *slog.Logger) *MatchHandler {
	return &MatchHandler{matches: matches, tournaments: tournaments, teams: teams, events: events, render: render, logger: logger}
}

type matchListData struct {
	Matches []models.Match
	Total   int
}

func (h *MatchHandler) List(w http.ResponseWriter, r *http.Request) {
	items, total, err := h.matches.List(r.Context())
	if err != nil {
		h.render.Render(w, http.StatusOK, "match_list.html", displayError(err), matchListData{})
		return
	}
	h.render.Render(w, http.StatusOK, "match_list.html", "", matchListData{Matches: items, Total: total})
}

type matchDetailData struct {
	Match      *models.Match
	Events     []models.Event
	TopScorers []models.TopScorer
}

// Detail aggregates the match, its events and its top scorers. The three
// reads have no dependency between them, so they run concurrently; only the
// match itself is required, the two listings degrade to empty.
func (h *MatchHandler) Detail(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		http.Redirect(w, r, "/matches", http.StatusSeeOther)
		return
	}

	var data matchDetailData
	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		m, err := h.matches.GetByID(ctx, id)
		if err != nil {
			return err
		}
		data.Match = m
		return nil
	})
	g.Go(func() error {
		evs, _, err := h.events.ByMatch(ctx, id)
		if err == nil {
			data.Events = evs
		}
		return nil
	})
	g.Go(func() error {
		ts, _, err := h.events.TopScorers(ctx, id)
		if err == nil {
			data.TopScorers = ts
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		failureRedirect(w, r, err, "/matches")
		return
	}

	h.render.Render(w, http.StatusOK, "match_detail.html", "", data)
}

type matchFormData struct {
	ID          int
	Create      models.MatchCreateForm
	Update      models.MatchUpdateForm
	Tournaments []models.Tournament
	Teams       []models.Team
	Statuses    []models.MatchStatus
	Edit        bool
}

var matchStatuses = []models.MatchStatus{
	models.MatchStatusPending,
	models.MatchStatusInProgress,
	models.MatchStatusFinished,
	models.MatchStatusCancelled,
}

func (h *MatchHandler) NewForm(w http.ResponseWriter, r *http.Request) {
	data := matchFormData{
		Create:   models.MatchCreateForm{Status: models.MatchStatusPending},
		Statuses: matchStatuses,
	}
	h.fillSelects(r, &data)
	h.render.Render(w, http.StatusOK, "match_form.html", "", data)
}

func (h *MatchHandler) Create(w http.ResponseWriter, r *http.Request) {
	_ = r.ParseForm()
	form := models.MatchCreateForm{
		TournamentID: formInt(r, "tournament_id"),
		HomeTeamID:   formInt(r, "home_team_id"),
		AwayTeamID:   formInt(r, "away_team_id"),
		Date:         formValue(r, "date"),
		Venue:        formValue(r, "venue"),
		Status:       models.MatchStatus(formValue(r, "status")),
	}
	data := matchFormData{Create: form, Statuses: matchStatuses}

	// Pre-submission guard: the backend would reject it too, but the form
	// must not even attempt a match of a team against itself.
	if err := form.Validate(); err != nil {
		h.fillSelects(r, &data)
		h.render.Render(w, http.StatusBadRequest, "match_form.html", err.Error(), data)
		return
	}

	created, err := h.matches.Create(r.Context(), form)
	if err != nil {
		if clients.IsValidation(err) {
			h.fillSelects(r, &data)
			h.render.Render(w, http.StatusBadRequest, "match_form.html", displayError(err), data)
			return
		}
		failureRedirect(w, r, err, "/matches")
		return
	}
	h.logger.Info("match created", slog.Int("id", created.ID))
	http.Redirect(w, r, "/matches", http.StatusSeeOther)
}

func (h *MatchHandler) EditForm(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		http.Redirect(w, r, "/matches", http.StatusSeeOther)
		return
	}

	m, err := h.matches.GetByID(r.Context(), id)
	if err != nil {
		failureRedirect(w, r, err, "/matches")
		return
	}
	if m.HomeTeamID == m.AwayTeamID {
		// Should never come back from the API; refuse to edit it if it does.
		failureRedirect(w, r, errors.New("corrupt match"), "/matches")
		return
	}

	data := matchFormData{
		ID: m.ID,
		Update: models.MatchUpdateForm{
			Date:      m.Date,
			Venue:     m.Venue,
			HomeScore: m.HomeScore,
			AwayScore: m.AwayScore,
			Status:    m.Status,
			Notes:     m.Notes,
		},
		Statuses: matchStatuses,
		Edit:     true,
	}
	h.render.Render(w, http.StatusOK, "match_form.html", "", data)
}

func (h *MatchHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		http.Redirect(w, r, "/matches", http.StatusSeeOther)
		return
	}

	_ = r.ParseForm()
	form := models.MatchUpdateForm{
		Date:      formValue(r, "date"),
		Venue:     formValue(r, "venue"),
		HomeScore: formInt(r, "home_score"),
		AwayScore: formInt(r, "away_score"),
		Status:    models.MatchStatus(formValue(r, "status")),
	}
	if notes := formValue(r, "notes"); notes != "" {
		form.Notes = &notes
	}
	data := matchFormData{ID: id, Update: form, Statuses: matchStatuses, Edit: true}

	if _, err := h.matches.Update(r.Context(), id, form); err != nil {
		if clients.IsValidation(err) {
			h.render.Render(w, http.StatusBadRequest, "match_form.html", displayError(err), data)
			return
		}
		failureRedirect(w, r, err, "/matches")
		return
	}
	http.Redirect(w, r, fmt.Sprintf("/matches/%d", id), http.StatusSeeOther)
}

func (h *MatchHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		http.Redirect(w, r, "/matches", http.StatusSeeOther)
		return
	}
	if err := h.matches.Delete(r.Context(), id); err != nil {
		failureRedirect(w, r, err, "/matches")
		return
	}
	http.Redirect(w, r, "/matches", http.StatusSeeOther)
}

// fillSelects loads the tournament and team dropdowns; the form degrades to
// empty selects when either listing fails.
func (h *MatchHandler) fillSelects(r *http.Request, data *matchFormData) {
	if ts, _, err := h.tournaments.List(r.Context()); err == nil {
		data.Tournaments = ts
	}
	if teams, _, err := h.teams.List(r.Context()); err == nil {
		data.Teams = teams
	}
}
