package handlers

import (
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/CarlosLlanosRodriguez/gestion-torneos-app/clients"
	"github.com/CarlosLlanosRodriguez/gestion-torneos-app/models"
	"github.com/CarlosLlanosRodriguez/gestion-torneos-app/storage"
)

const maxCrestBytes = 5 << 20

type TeamHandler struct {
	teams       *clients.TeamClient
	tournaments *clients.TournamentClient
	players     *clients.PlayerClient
	crests      storage.Uploader // nil disables crest uploads
	render      *Renderer
	logger      *slog.Logger
}

func NewTeamHandler(teams *clients.TeamClient, tournaments *clients.TournamentClient, players *clients.PlayerClient, crests storage.Uploader, render *Renderer, logger *slog.Logger) *TeamHandler {
	return &TeamHandler{teams: teams, tournaments: tournaments, players: players, crests: crests, render: render, logger: logger}
}

type teamListData struct {
	Teams []models.Team
	Total int
}

func (h *TeamHandler) List(w http.ResponseWriter, r *http.Request) {
	items, total, err := h.teams.List(r.Context())
	if err != nil {
		h.render.Render(w, http.StatusOK, "team_list.html", displayError(err), teamListData{})
		return
	}
	h.render.Render(w, http.StatusOK, "team_list.html", "", teamListData{Teams: items, Total: total})
}

type teamDetailData struct {
	Team   *models.Team
	Roster []models.Player
}

// Detail shows the team and its players. The contract has no team-scoped
// player read, so the full collection is fetched and filtered here.
func (h *TeamHandler) Detail(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		http.Redirect(w, r, "/teams", http.StatusSeeOther)
		return
	}

	team, err := h.teams.GetByID(r.Context(), id)
	if err != nil {
		failureRedirect(w, r, err, "/teams")
		return
	}

	data := teamDetailData{Team: team}
	if all, _, err := h.players.List(r.Context()); err == nil {
		for _, p := range all {
			if p.TeamID == team.ID {
				data.Roster = append(data.Roster, p)
			}
		}
	}
	h.render.Render(w, http.StatusOK, "team_detail.html", "", data)
}

type teamFormData struct {
	ID           int
	Form         models.TeamForm
	Tournaments  []models.Tournament
	Edit         bool
	CrestUploads bool
	CurrentCrest *string
}

func (h *TeamHandler) NewForm(w http.ResponseWriter, r *http.Request) {
	data := teamFormData{CrestUploads: h.crests != nil}
	if ts, _, err := h.tournaments.List(r.Context()); err == nil {
		data.Tournaments = ts
	}
	h.render.Render(w, http.StatusOK, "team_form.html", "", data)
}

func (h *TeamHandler) Create(w http.ResponseWriter, r *http.Request) {
	form, data, errMsg := h.parseForm(w, r, 0)
	if errMsg != "" {
		h.render.Render(w, http.StatusBadRequest, "team_form.html", errMsg, data)
		return
	}

	created, err := h.teams.Create(r.Context(), form)
	if err != nil {
		if clients.IsValidation(err) {
			h.fillTournaments(r, &data)
			h.render.Render(w, http.StatusBadRequest, "team_form.html", displayError(err), data)
			return
		}
		failureRedirect(w, r, err, "/teams")
		return
	}
	h.logger.Info("team created", slog.Int("id", created.ID))
	http.Redirect(w, r, "/teams", http.StatusSeeOther)
}

func (h *TeamHandler) EditForm(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		http.Redirect(w, r, "/teams", http.StatusSeeOther)
		return
	}

	team, err := h.teams.GetByID(r.Context(), id)
	if err != nil {
		failureRedirect(w, r, err, "/teams")
		return
	}

	data := teamFormData{
		ID: team.ID,
		Form: models.TeamForm{
			Name:                team.Name,
			Color:               team.Color,
			Representative:      team.Representative,
			RepresentativePhone: team.RepresentativePhone,
			TournamentID:        team.TournamentID,
		},
		Edit:         true,
		CrestUploads: h.crests != nil,
		CurrentCrest: team.CrestURL,
	}
	h.fillTournaments(r, &data)
	h.render.Render(w, http.StatusOK, "team_form.html", "", data)
}

func (h *TeamHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		http.Redirect(w, r, "/teams", http.StatusSeeOther)
		return
	}

	form, data, errMsg := h.parseForm(w, r, id)
	data.ID = id
	data.Edit = true
	if errMsg != "" {
		h.render.Render(w, http.StatusBadRequest, "team_form.html", errMsg, data)
		return
	}

	if _, err := h.teams.Update(r.Context(), id, form); err != nil {
		if clients.IsValidation(err) {
			h.fillTournaments(r, &data)
			h.render.Render(w, http.StatusBadRequest, "team_form.html", displayError(err), data)
			return
		}
		failureRedirect(w, r, err, "/teams")
		return
	}
	http.Redirect(w, r, "/teams", http.StatusSeeOther)
}

func (h *TeamHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		http.Redirect(w, r, "/teams", http.StatusSeeOther)
		return
	}
	if err := h.teams.Delete(r.Context(), id); err != nil {
		failureRedirect(w, r, err, "/teams")
		return
	}
	http.Redirect(w, r, "/teams", http.StatusSeeOther)
}

// parseForm reads the multipart team form, uploading the crest image when
// one was attached and uploads are enabled.
func (h *TeamHandler) parseForm(w http.ResponseWriter, r *http.Request, teamID int) (models.TeamForm, teamFormData, string) {
	data := teamFormData{CrestUploads: h.crests != nil}

	if err := r.ParseMultipartForm(maxCrestBytes); err != nil {
		if err := r.ParseForm(); err != nil {
			return models.TeamForm{}, data, "invalid form submission"
		}
	}

	form := models.TeamForm{
		Name:                formValue(r, "name"),
		Color:               formValue(r, "color"),
		Representative:      formValue(r, "representative"),
		RepresentativePhone: formValue(r, "representative_phone"),
		TournamentID:        formInt(r, "tournament_id"),
	}
	data.Form = form

	if h.crests == nil || r.MultipartForm == nil {
		return form, data, ""
	}

	file, header, err := r.FormFile("crest")
	if err != nil {
		// No file attached.
		return form, data, ""
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		return form, data, "crest must be an image"
	}

	key := storage.CrestKey(teamID, filepath.Ext(header.Filename))
	url, err := h.crests.Upload(r.Context(), key, contentType, file)
	if err != nil {
		h.logger.Error("crest upload failed", slog.Any("error", err))
		return form, data, "could not upload the crest image"
	}
	form.CrestURL = &url
	data.Form = form
	return form, data, ""
}

func (h *TeamHandler) fillTournaments(r *http.Request, data *teamFormData) {
	if ts, _, err := h.tournaments.List(r.Context()); err == nil {
		data.Tournaments = ts
	}
}
