package models

import "time"

type Player struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	ShirtNumber int    `json:"shirt_number"`
	TeamID      int    `json:"team_id"`

	TeamName string `json:"team_name,omitempty"`

	CreatedAt time.Time `json:"created_at,omitempty"`
	UpdatedAt time.Time `json:"updated_at,omitempty"`
}

type PlayerForm struct {
	Name        string `json:"name"`
	ShirtNumber int    `json:"shirt_number"`
	TeamID      int    `json:"team_id"`
}
