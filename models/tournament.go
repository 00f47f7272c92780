package models

import "time"

type TournamentStatus string

const (
	TournamentStatusPlanned    TournamentStatus = "planned"
	TournamentStatusInProgress TournamentStatus = "in_progress"
	TournamentStatusFinished   TournamentStatus = "finished"
	TournamentStatusCancelled  TournamentStatus = "cancelled"
)

func (s TournamentStatus) Valid() bool {
	switch s {
	case TournamentStatusPlanned, TournamentStatusInProgress,
		TournamentStatusFinished, TournamentStatusCancelled:
		return true
	}
	return false
}

type Tournament struct {
	ID          int              `json:"id"`
	Name        string           `json:"name"`
	Discipline  string           `json:"discipline"`
	Season      string           `json:"season"`
	StartDate   string           `json:"start_date"`
	EndDate     string           `json:"end_date"`
	Status      TournamentStatus `json:"status"`
	Description string           `json:"description"`
	OrganizerID int              `json:"organizer_id"`

	OrganizerName  string `json:"organizer_name,omitempty"`
	OrganizerEmail string `json:"organizer_email,omitempty"`

	// COUNT(*) aggregates arrive from the API as strings.
	TotalTeams   string `json:"total_teams,omitempty"`
	TotalMatches string `json:"total_matches,omitempty"`

	CreatedAt time.Time `json:"created_at,omitempty"`
	UpdatedAt time.Time `json:"updated_at,omitempty"`
}

// TournamentForm is the create/update payload.
type TournamentForm struct {
	Name        string           `json:"name"`
	Discipline  string           `json:"discipline"`
	Season      string           `json:"season"`
	StartDate   string           `json:"start_date"`
	EndDate     string           `json:"end_date"`
	Status      TournamentStatus `json:"status"`
	Description string           `json:"description"`
}

// CanEdit reports whether the given user may edit the tournament: admins
// always, organizers only for their own. Display logic only, the backend
// re-validates authoritatively.
func (t *Tournament) CanEdit(u *User) bool {
	if u == nil {
		return false
	}
	if u.Role == RoleAdmin {
		return true
	}
	return u.Role == RoleOrganizer && u.ID == t.OrganizerID
}
