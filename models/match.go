package models

import (
	"errors"
	"time"
)

type MatchStatus string

const (
	MatchStatusPending    MatchStatus = "pending"
	MatchStatusInProgress MatchStatus = "in_progress"
	MatchStatusFinished   MatchStatus = "finished"
	MatchStatusCancelled  MatchStatus = "cancelled"
)

func (s MatchStatus) Valid() bool {
	switch s {
	case MatchStatusPending, MatchStatusInProgress,
		MatchStatusFinished, MatchStatusCancelled:
		return true
	}
	return false
}

var ErrSameTeam = errors.New("home and away team must differ")

type Match struct {
	ID           int         `json:"id"`
	TournamentID int         `json:"tournament_id"`
	HomeTeamID   int         `json:"home_team_id"`
	AwayTeamID   int         `json:"away_team_id"`
	Date         string      `json:"date"`
	Venue        string      `json:"venue"`
	HomeScore    int         `json:"home_score"`
	AwayScore    int         `json:"away_score"`
	Status       MatchStatus `json:"status"`
	Notes        *string     `json:"notes"`

	TournamentName       string `json:"tournament_name,omitempty"`
	TournamentDiscipline string `json:"tournament_discipline,omitempty"`
	HomeTeamName         string `json:"home_team_name,omitempty"`
	HomeTeamColor        string `json:"home_team_color,omitempty"`
	AwayTeamName         string `json:"away_team_name,omitempty"`
	AwayTeamColor        string `json:"away_team_color,omitempty"`

	TotalEvents string `json:"total_events,omitempty"`

	CreatedAt time.Time `json:"created_at,omitempty"`
	UpdatedAt time.Time `json:"updated_at,omitempty"`
}

// MatchCreateForm is the create payload. Teams are fixed at creation.
type MatchCreateForm struct {
	TournamentID int         `json:"tournament_id"`
	HomeTeamID   int         `json:"home_team_id"`
	AwayTeamID   int         `json:"away_team_id"`
	Date         string      `json:"date"`
	Venue        string      `json:"venue"`
	Status       MatchStatus `json:"status"`
}

// Validate guards the form before it is sent to the backend.
func (f *MatchCreateForm) Validate() error {
	if f.HomeTeamID == f.AwayTeamID {
		return ErrSameTeam
	}
	return nil
}

// MatchUpdateForm is the update payload: scores and schedule, never teams.
type MatchUpdateForm struct {
	Date      string      `json:"date"`
	Venue     string      `json:"venue"`
	HomeScore int         `json:"home_score"`
	AwayScore int         `json:"away_score"`
	Status    MatchStatus `json:"status"`
	Notes     *string     `json:"notes,omitempty"`
}
