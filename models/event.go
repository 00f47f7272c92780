package models

import (
	"errors"
	"time"
)

type EventType string

const (
	EventTypeGoal         EventType = "goal"
	EventTypeYellowCard   EventType = "yellow_card"
	EventTypeRedCard      EventType = "red_card"
	EventTypeSubstitution EventType = "substitution"
	EventTypeInjury       EventType = "injury"
)

// EventTypes lists every selectable type, in display order.
var EventTypes = []EventType{
	EventTypeGoal,
	EventTypeYellowCard,
	EventTypeRedCard,
	EventTypeSubstitution,
	EventTypeInjury,
}

func (t EventType) Valid() bool {
	for _, et := range EventTypes {
		if t == et {
			return true
		}
	}
	return false
}

var (
	ErrInvalidEventType    = errors.New("invalid event type")
	ErrMinuteOutOfRange    = errors.New("minute must be between 1 and 120")
	ErrDescriptionTooShort = errors.New("description must be at least 5 characters")
	ErrPlayerRequired      = errors.New("a player must be selected")
)

// Event is an in-match incident attached to one player of the match.
type Event struct {
	ID          int       `json:"id"`
	MatchID     int       `json:"match_id"`
	PlayerID    int       `json:"player_id"`
	Type        EventType `json:"type"`
	Minute      int       `json:"minute"`
	Description string    `json:"description"`

	MatchDate    string `json:"match_date,omitempty"`
	HomeTeamID   int    `json:"home_team_id,omitempty"`
	HomeTeamName string `json:"home_team_name,omitempty"`
	AwayTeamID   int    `json:"away_team_id,omitempty"`
	AwayTeamName string `json:"away_team_name,omitempty"`
	PlayerName   string `json:"player_name,omitempty"`
	ShirtNumber  int    `json:"shirt_number,omitempty"`
	PlayerTeam   string `json:"player_team,omitempty"`

	CreatedAt time.Time `json:"created_at,omitempty"`
}

// EventForm is the create/update payload. MatchID and PlayerID are only sent
// on create; the backend ignores them on update.
type EventForm struct {
	MatchID     int       `json:"match_id,omitempty"`
	PlayerID    int       `json:"player_id,omitempty"`
	Type        EventType `json:"type"`
	Minute      int       `json:"minute"`
	Description string    `json:"description"`
}

// Validate applies the field rules the form screens enforce before submit.
func (f *EventForm) Validate() error {
	if !f.Type.Valid() {
		return ErrInvalidEventType
	}
	if f.Minute < 1 || f.Minute > 120 {
		return ErrMinuteOutOfRange
	}
	if len(f.Description) < 5 {
		return ErrDescriptionTooShort
	}
	if f.PlayerID == 0 {
		return ErrPlayerRequired
	}
	return nil
}

// TopScorer is one row of the public per-match top scorer listing.
type TopScorer struct {
	PlayerID    int    `json:"player_id"`
	PlayerName  string `json:"player_name"`
	ShirtNumber int    `json:"shirt_number"`
	TeamName    string `json:"team_name"`
	Goals       string `json:"goals"`
}
