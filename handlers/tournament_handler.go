package handlers

import (
	"log/slog"
	"net/http"

	"github.com/CarlosLlanosRodriguez/gestion-torneos-app/clients"
	"github.com/CarlosLlanosRodriguez/gestion-torneos-app/models"
	"github.com/CarlosLlanosRodriguez/gestion-torneos-app/session"
	"golang.org/x/sync/errgroup"
)

type TournamentHandler struct {
	tournaments *clients.TournamentClient
	matches     *clients.MatchClient
	sessions    *session.Store
	render      *Renderer
	logger      *slog.Logger
}

func NewTournamentHandler(tournaments *clients.TournamentClient, matches *clients.MatchClient, sessions *session.Store, render *Renderer, logger *slog.Logger) *TournamentHandler {
	return &TournamentHandler{tournaments: tournaments, matches: matches, sessions: sessions, render: render, logger: logger}
}

type tournamentListData struct {
	Tournaments []models.Tournament
	Total       int
	Status      models.TournamentStatus
	MineOnly    bool
	Statuses    []models.TournamentStatus
}

var tournamentStatuses = []models.TournamentStatus{
	models.TournamentStatusPlanned,
	models.TournamentStatusInProgress,
	models.TournamentStatusFinished,
	models.TournamentStatusCancelled,
}

func (h *TournamentHandler) List(w http.ResponseWriter, r *http.Request) {
	data := tournamentListData{Statuses: tournamentStatuses}

	var (
		items []models.Tournament
		total int
		err   error
	)
	switch {
	case r.URL.Query().Get("mine") == "1":
		data.MineOnly = true
		items, total, err = h.tournaments.Mine(r.Context())
	case r.URL.Query().Get("status") != "":
		data.Status = models.TournamentStatus(r.URL.Query().Get("status"))
		items, total, err = h.tournaments.ByStatus(r.Context(), data.Status)
	default:
		items, total, err = h.tournaments.List(r.Context())
	}
	if err != nil {
		// List screens simply stop loading on failure.
		h.render.Render(w, http.StatusOK, "tournament_list.html", displayError(err), data)
		return
	}
	data.Tournaments = items
	data.Total = total
	h.render.Render(w, http.StatusOK, "tournament_list.html", "", data)
}

type tournamentDetailData struct {
	Tournament *models.Tournament
	Matches    []models.Match
	CanEdit    bool
}

// Detail fetches the tournament and its matches. The two reads are
// independent, so they run concurrently.
func (h *TournamentHandler) Detail(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		http.Redirect(w, r, "/tournaments", http.StatusSeeOther)
		return
	}

	var data tournamentDetailData
	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		t, err := h.tournaments.GetByID(ctx, id)
		if err != nil {
			return err
		}
		data.Tournament = t
		return nil
	})
	g.Go(func() error {
		ms, _, err := h.matches.ByTournament(ctx, id)
		if err != nil {
			return err
		}
		data.Matches = ms
		return nil
	})
	if err := g.Wait(); err != nil {
		failureRedirect(w, r, err, "/tournaments")
		return
	}

	data.CanEdit = data.Tournament.CanEdit(h.sessions.User())
	h.render.Render(w, http.StatusOK, "tournament_detail.html", "", data)
}

type tournamentFormData struct {
	ID       int
	Form     models.TournamentForm
	Statuses []models.TournamentStatus
	Edit     bool
}

func (h *TournamentHandler) NewForm(w http.ResponseWriter, r *http.Request) {
	data := tournamentFormData{
		Form:     models.TournamentForm{Status: models.TournamentStatusPlanned},
		Statuses: tournamentStatuses,
	}
	h.render.Render(w, http.StatusOK, "tournament_form.html", "", data)
}

func (h *TournamentHandler) Create(w http.ResponseWriter, r *http.Request) {
	form, data := h.parseForm(r)
	created, err := h.tournaments.Create(r.Context(), form)
	if err != nil {
		if clients.IsValidation(err) {
			h.render.Render(w, http.StatusBadRequest, "tournament_form.html", displayError(err), data)
			return
		}
		failureRedirect(w, r, err, "/tournaments")
		return
	}
	h.logger.Info("tournament created", slog.Int("id", created.ID))
	http.Redirect(w, r, "/tournaments", http.StatusSeeOther)
}

func (h *TournamentHandler) EditForm(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		http.Redirect(w, r, "/tournaments", http.StatusSeeOther)
		return
	}

	t, err := h.tournaments.GetByID(r.Context(), id)
	if err != nil {
		failureRedirect(w, r, err, "/tournaments")
		return
	}

	data := tournamentFormData{
		ID: t.ID,
		Form: models.TournamentForm{
			Name:        t.Name,
			Discipline:  t.Discipline,
			Season:      t.Season,
			StartDate:   t.StartDate,
			EndDate:     t.EndDate,
			Status:      t.Status,
			Description: t.Description,
		},
		Statuses: tournamentStatuses,
		Edit:     true,
	}
	h.render.Render(w, http.StatusOK, "tournament_form.html", "", data)
}

func (h *TournamentHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		http.Redirect(w, r, "/tournaments", http.StatusSeeOther)
		return
	}

	form, data := h.parseForm(r)
	data.ID = id
	data.Edit = true

	if _, err := h.tournaments.Update(r.Context(), id, form); err != nil {
		if clients.IsValidation(err) {
			h.render.Render(w, http.StatusBadRequest, "tournament_form.html", displayError(err), data)
			return
		}
		failureRedirect(w, r, err, "/tournaments")
		return
	}
	http.Redirect(w, r, "/tournaments", http.StatusSeeOther)
}

func (h *TournamentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		http.Redirect(w, r, "/tournaments", http.StatusSeeOther)
		return
	}
	if err := h.tournaments.Delete(r.Context(), id); err != nil {
		failureRedirect(w, r, err, "/tournaments")
		return
	}
	http.Redirect(w, r, "/tournaments", http.StatusSeeOther)
}

func (h *TournamentHandler) parseForm(r *http.Request) (models.TournamentForm, tournamentFormData) {
	_ = r.ParseForm()
	form := models.TournamentForm{
		Name:        formValue(r, "name"),
		Discipline:  formValue(r, "discipline"),
		Season:      formValue(r, "season"),
		StartDate:   formValue(r, "start_date"),
		EndDate:     formValue(r, "end_date"),
		Status:      models.TournamentStatus(formValue(r, "status")),
		Description: formValue(r, "description"),
	}
	return form, tournamentFormData{Form: form, Statuses: tournamentStatuses}
}
