package models

import "time"

// Team belongs to exactly one tournament.
type Team struct {
	ID                  int    `json:"id"`
	Name                string `json:"name"`
	Color               string `json:"color"`
	Representative      string `json:"representative"`
	RepresentativePhone string `json:"representative_phone"`
	TournamentID        int    `json:"tournament_id"`

	TournamentName        string `json:"tournament_name,omitempty"`
	TournamentDiscipline  string `json:"tournament_discipline,omitempty"`
	TournamentStatus      string `json:"tournament_status,omitempty"`
	TournamentOrganizerID int    `json:"tournament_organizer_id,omitempty"`

	TotalPlayers string `json:"total_players,omitempty"`

	CrestURL *string `json:"crest_url,omitempty"`

	CreatedAt time.Time `json:"created_at,omitempty"`
	UpdatedAt time.Time `json:"updated_at,omitempty"`
}

// TeamForm is the create/update payload. TournamentID is ignored by the
// backend on update, a team never changes tournament.
type TeamForm struct {
	Name                string  `json:"name"`
	Color               string  `json:"color"`
	Representative      string  `json:"representative"`
	RepresentativePhone string  `json:"representative_phone"`
	TournamentID        int     `json:"tournament_id,omitempty"`
	CrestURL            *string `json:"crest_url,omitempty"`
}
