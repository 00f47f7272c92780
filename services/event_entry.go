// Package services holds the workflows that sit between the form screens and
// the resource clients.
package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/CarlosLlanosRodriguez/gestion-torneos-app/models"
)

var ErrPlayerNotEligible = errors.New("selected player is not part of this match")

// EventEntryState tracks the coordinator's progress through its fetch chain.
type EventEntryState int

const (
	StateIdle EventEntryState = iota
	StateLoadingMatch
	StateLoadingRoster
	StateReady
	StateFailed
)

func (s EventEntryState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoadingMatch:
		return "loading_match"
	case StateLoadingRoster:
		return "loading_roster"
	case StateReady:
		return "ready"
	case StateFailed:
		return "failed"
	}
	return "unknown"
}

// Redirect tells the screen where to send the user after a failed start.
type Redirect int

const (
	RedirectNone Redirect = iota
	RedirectMatchList
	RedirectEventList
)

type MatchGetter interface {
	GetByID(ctx context.Context, id int) (*models.Match, error)
}

type PlayerLister interface {
	List(ctx context.Context) ([]models.Player, int, error)
}

type EventGetter interface {
	GetByID(ctx context.Context, id int) (*models.Event, error)
}

// EventEntry reconciles a match, the full player collection and the team
// memberships into the single roster a recorded event may reference.
//
// One coordinator serves one screen activation: construct it with the
// request's context flowing into StartCreate or StartEdit and drop it when
// the screen is done. Cancelling the context abandons whatever fetch is in
// flight. Not safe for use from multiple goroutines.
type EventEntry struct {
	matches MatchGetter
	players PlayerLister
	events  EventGetter
	logger  *slog.Logger

	state    EventEntryState
	redirect Redirect
	match    *models.Match
	roster   []models.Player
	event    *models.Event
	prefill  *models.EventForm
	degraded bool
}

func NewEventEntry(matches MatchGetter, players PlayerLister, events EventGetter, logger *slog.Logger) *EventEntry {
	return &EventEntry{
		matches: matches,
		players: players,
		events:  events,
		logger:  logger,
		state:   StateIdle,
	}
}

// StartCreate prepares the coordinator for recording a new event on the
// given match. When the match fetch fails the screen must return to the
// match list.
func (e *EventEntry) StartCreate(ctx context.Context, matchID int) error {
	e.state = StateLoadingMatch

	match, err := e.matches.GetByID(ctx, matchID)
	if err != nil {
		e.fail(RedirectMatchList)
		return err
	}
	e.match = match

	e.loadRoster(ctx)
	return nil
}

// StartEdit prepares the coordinator for editing an existing event: the
// event is fetched first, its match next, then the roster. Any failure
// before the roster short-circuits the chain and sends the screen back to
// the event list.
func (e *EventEntry) StartEdit(ctx context.Context, eventID int) error {
	e.state = StateLoadingMatch

	event, err := e.events.GetByID(ctx, eventID)
	if err != nil {
		e.fail(RedirectEventList)
		return err
	}
	e.event = event

	match, err := e.matches.GetByID(ctx, event.MatchID)
	if err != nil {
		e.fail(RedirectEventList)
		return err
	}
	e.match = match

	e.loadRoster(ctx)

	prefill := &models.EventForm{
		MatchID:     event.MatchID,
		Type:        event.Type,
		Minute:      event.Minute,
		Description: event.Description,
	}
	// Only pre-select the stored player while it is still presentable in the
	// computed roster.
	if e.inRoster(event.PlayerID) {
		prefill.PlayerID = event.PlayerID
	}
	e.prefill = prefill
	return nil
}

// loadRoster fetches the full player collection (the contract has no
// team-scoped read) and keeps the subset belonging to the match's two teams.
// A failed fetch leaves the roster empty and the screen non-loading but
// unusable; that is accepted degraded behavior, not an error dialog.
func (e *EventEntry) loadRoster(ctx context.Context) {
	e.state = StateLoadingRoster

	all, _, err := e.players.List(ctx)
	if err != nil {
		e.logger.Warn("player collection fetch failed, roster left empty",
			slog.Int("match_id", e.match.ID),
			slog.Any("error", err))
		e.roster = nil
		e.degraded = true
		e.state = StateReady
		return
	}

	roster := make([]models.Player, 0, len(all))
	for _, p := range all {
		if p.TeamID == e.match.HomeTeamID || p.TeamID == e.match.AwayTeamID {
			roster = append(roster, p)
		}
	}
	e.roster = roster
	e.state = StateReady
}

func (e *EventEntry) fail(r Redirect) {
	e.state = StateFailed
	e.redirect = r
}

func (e *EventEntry) State() EventEntryState { return e.state }

// RedirectTarget is meaningful only in the Failed state.
func (e *EventEntry) RedirectTarget() Redirect { return e.redirect }

func (e *EventEntry) Match() *models.Match { return e.match }

// Roster is the eligible player set: exactly the players of the match's home
// and away teams.
func (e *EventEntry) Roster() []models.Player { return e.roster }

// Prefill is the stored form state of the event being edited, nil on the
// create path.
func (e *EventEntry) Prefill() *models.EventForm { return e.prefill }

// Degraded reports that the roster fetch failed after the match was resolved.
func (e *EventEntry) Degraded() bool { return e.degraded }

// RosterForTeam filters the already-loaded roster by team. It returns an
// empty slice when the roster has not loaded or no players match.
func (e *EventEntry) RosterForTeam(teamID int) []models.Player {
	out := make([]models.Player, 0)
	for _, p := range e.roster {
		if p.TeamID == teamID {
			out = append(out, p)
		}
	}
	return out
}

// ValidateSubmission guards an event form before it is sent: field rules
// first, then the roster constraint that the player belongs to one of the
// match's teams.
func (e *EventEntry) ValidateSubmission(form *models.EventForm) error {
	if err := form.Validate(); err != nil {
		return err
	}
	if !e.inRoster(form.PlayerID) {
		return ErrPlayerNotEligible
	}
	return nil
}

func (e *EventEntry) inRoster(playerID int) bool {
	for _, p := range e.roster {
		if p.ID == playerID {
			return true
		}
	}
	return false
}
