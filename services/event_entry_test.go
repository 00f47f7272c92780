package services

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"reflect"
	"testing"

	"github.com/CarlosLlanosRodriguez/gestion-torneos-app/clients"
	"github.com/CarlosLlanosRodriguez/gestion-torneos-app/models"
)

type fakeMatches struct {
	match *models.Match
	err   error
	calls int
}

func (f *fakeMatches) GetByID(_ context.Context, id int) (*models.Match, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.match, nil
}

type fakePlayers struct {
	players []models.Player
	err     error
	calls   int
}

func (f *fakePlayers) List(_ context.Context) ([]models.Player, int, error) {
	f.calls++
	if f.err != nil {
		return nil, 0, f.err
	}
	return f.players, len(f.players), nil
}

type fakeEvents struct {
	event *models.Event
	err   error
}

func (f *fakeEvents) GetByID(_ context.Context, id int) (*models.Event, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.event, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func match7() *models.Match {
	return &models.Match{ID: 7, TournamentID: 1, HomeTeamID: 1, AwayTeamID: 2}
}

func threeTeamPlayers() []models.Player {
	return []models.Player{
		{ID: 10, Name: "Ana", ShirtNumber: 1, TeamID: 1},
		{ID: 11, Name: "Luis", ShirtNumber: 7, TeamID: 1},
		{ID: 20, Name: "Marta", ShirtNumber: 9, TeamID: 2},
		{ID: 30, Name: "Pedro", ShirtNumber: 4, TeamID: 3},
		{ID: 21, Name: "Jorge", ShirtNumber: 3, TeamID: 2},
	}
}

func TestStartCreateFiltersRosterToMatchTeams(t *testing.T) {
	entry := NewEventEntry(
		&fakeMatches{match: match7()},
		&fakePlayers{players: threeTeamPlayers()},
		&fakeEvents{},
		testLogger(),
	)

	if err := entry.StartCreate(context.Background(), 7); err != nil {
		t.Fatalf("StartCreate: %v", err)
	}
	if entry.State() != StateReady {
		t.Fatalf("expected state ready, got %s", entry.State())
	}

	roster := entry.Roster()
	if len(roster) != 4 {
		t.Fatalf("expected 4 eligible players, got %d", len(roster))
	}
	for _, p := range roster {
		if p.TeamID != 1 && p.TeamID != 2 {
			t.Fatalf("player %d of team %d must not be in the roster", p.ID, p.TeamID)
		}
	}
}

func TestRosterForTeamPartitionsRoster(t *testing.T) {
	entry := NewEventEntry(
		&fakeMatches{match: match7()},
		&fakePlayers{players: threeTeamPlayers()},
		&fakeEvents{},
		testLogger(),
	)
	if err := entry.StartCreate(context.Background(), 7); err != nil {
		t.Fatalf("StartCreate: %v", err)
	}

	home := entry.RosterForTeam(1)
	away := entry.RosterForTeam(2)

	for _, p := range home {
		if p.TeamID != 1 {
			t.Fatalf("home roster contains player of team %d", p.TeamID)
		}
	}
	for _, p := range away {
		if p.TeamID != 2 {
			t.Fatalf("away roster contains player of team %d", p.TeamID)
		}
	}

	// The union of both sides is exactly the eligible roster, no omissions
	// and no duplicates.
	if got, want := len(home)+len(away), len(entry.Roster()); got != want {
		t.Fatalf("union size %d, roster size %d", got, want)
	}
	seen := map[int]bool{}
	for _, p := range append(home, away...) {
		if seen[p.ID] {
			t.Fatalf("player %d appears twice in the union", p.ID)
		}
		seen[p.ID] = true
	}
	for _, p := range entry.Roster() {
		if !seen[p.ID] {
			t.Fatalf("player %d missing from the union", p.ID)
		}
	}
}

func TestRosterForTeamIsIdempotent(t *testing.T) {
	entry := NewEventEntry(
		&fakeMatches{match: match7()},
		&fakePlayers{players: threeTeamPlayers()},
		&fakeEvents{},
		testLogger(),
	)
	if err := entry.StartCreate(context.Background(), 7); err != nil {
		t.Fatalf("StartCreate: %v", err)
	}

	first := entry.RosterForTeam(2)
	second := entry.RosterForTeam(2)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("repeated calls returned different sequences: %v vs %v", first, second)
	}
}

func TestRosterForTeamBeforeLoadReturnsEmpty(t *testing.T) {
	entry := NewEventEntry(&fakeMatches{}, &fakePlayers{}, &fakeEvents{}, testLogger())
	if got := entry.RosterForTeam(1); len(got) != 0 {
		t.Fatalf("expected empty roster before load, got %d players", len(got))
	}
}

func TestStartCreateMatchFailureRedirectsToMatchList(t *testing.T) {
	players := &fakePlayers{players: threeTeamPlayers()}
	entry := NewEventEntry(
		&fakeMatches{err: &clients.APIError{Status: http.StatusNotFound, Message: "not found"}},
		players,
		&fakeEvents{},
		testLogger(),
	)

	if err := entry.StartCreate(context.Background(), 99); err == nil {
		t.Fatal("expected an error")
	}
	if entry.State() != StateFailed {
		t.Fatalf("expected state failed, got %s", entry.State())
	}
	if entry.RedirectTarget() != RedirectMatchList {
		t.Fatalf("expected redirect to match list, got %d", entry.RedirectTarget())
	}
	if players.calls != 0 {
		t.Fatal("roster must not be fetched after a failed match fetch")
	}
}

func TestStartEditMissingMatchRedirectsToEventList(t *testing.T) {
	players := &fakePlayers{players: threeTeamPlayers()}
	entry := NewEventEntry(
		&fakeMatches{err: &clients.APIError{Status: http.StatusNotFound, Message: "not found"}},
		players,
		&fakeEvents{event: &models.Event{ID: 42, MatchID: 7, PlayerID: 10}},
		testLogger(),
	)

	if err := entry.StartEdit(context.Background(), 42); err == nil {
		t.Fatal("expected an error")
	}
	if entry.State() != StateFailed {
		t.Fatalf("expected state failed, got %s", entry.State())
	}
	if entry.RedirectTarget() != RedirectEventList {
		t.Fatalf("expected redirect to event list, got %d", entry.RedirectTarget())
	}
	if players.calls != 0 {
		t.Fatal("roster must not be fetched when the match is gone")
	}
}

func TestStartEditEventFailureRedirectsToEventList(t *testing.T) {
	matches := &fakeMatches{match: match7()}
	entry := NewEventEntry(
		matches,
		&fakePlayers{players: threeTeamPlayers()},
		&fakeEvents{err: &clients.APIError{Status: http.StatusNotFound, Message: "not found"}},
		testLogger(),
	)

	if err := entry.StartEdit(context.Background(), 42); err == nil {
		t.Fatal("expected an error")
	}
	if entry.RedirectTarget() != RedirectEventList {
		t.Fatalf("expected redirect to event list, got %d", entry.RedirectTarget())
	}
	if matches.calls != 0 {
		t.Fatal("match must not be fetched when the event is gone")
	}
}

func TestPlayerFetchFailureDegradesToEmptyRoster(t *testing.T) {
	entry := NewEventEntry(
		&fakeMatches{match: match7()},
		&fakePlayers{err: &clients.APIError{Status: http.StatusUnauthorized, Message: "token expired"}},
		&fakeEvents{},
		testLogger(),
	)

	if err := entry.StartCreate(context.Background(), 7); err != nil {
		t.Fatalf("StartCreate must not fail on a roster fetch failure: %v", err)
	}
	if entry.State() != StateReady {
		t.Fatalf("expected state ready (degraded), got %s", entry.State())
	}
	if !entry.Degraded() {
		t.Fatal("expected degraded flag")
	}
	if len(entry.Roster()) != 0 {
		t.Fatalf("roster must stay empty, got %d players", len(entry.Roster()))
	}
	if len(entry.RosterForTeam(1)) != 0 || len(entry.RosterForTeam(2)) != 0 {
		t.Fatal("per-team rosters must stay empty, never partially populated")
	}
}

func TestStartEditPrefillsStoredValues(t *testing.T) {
	entry := NewEventEntry(
		&fakeMatches{match: match7()},
		&fakePlayers{players: threeTeamPlayers()},
		&fakeEvents{event: &models.Event{
			ID: 42, MatchID: 7, PlayerID: 20,
			Type: models.EventTypeYellowCard, Minute: 33, Description: "late tackle",
		}},
		testLogger(),
	)

	if err := entry.StartEdit(context.Background(), 42); err != nil {
		t.Fatalf("StartEdit: %v", err)
	}

	pf := entry.Prefill()
	if pf == nil {
		t.Fatal("expected a prefill")
	}
	if pf.PlayerID != 20 || pf.Type != models.EventTypeYellowCard || pf.Minute != 33 || pf.Description != "late tackle" {
		t.Fatalf("unexpected prefill: %+v", pf)
	}
}

func TestStartEditDropsPlayerNoLongerInRoster(t *testing.T) {
	entry := NewEventEntry(
		&fakeMatches{match: match7()},
		&fakePlayers{players: threeTeamPlayers()},
		&fakeEvents{event: &models.Event{
			ID: 43, MatchID: 7, PlayerID: 30, // team 3, not part of the match
			Type: models.EventTypeGoal, Minute: 12, Description: "own goal?",
		}},
		testLogger(),
	)

	if err := entry.StartEdit(context.Background(), 43); err != nil {
		t.Fatalf("StartEdit: %v", err)
	}
	if pf := entry.Prefill(); pf.PlayerID != 0 {
		t.Fatalf("stored player outside the roster must not be pre-selected, got %d", pf.PlayerID)
	}
}

func TestValidateSubmissionRejectsIneligiblePlayer(t *testing.T) {
	entry := NewEventEntry(
		&fakeMatches{match: match7()},
		&fakePlayers{players: threeTeamPlayers()},
		&fakeEvents{},
		testLogger(),
	)
	if err := entry.StartCreate(context.Background(), 7); err != nil {
		t.Fatalf("StartCreate: %v", err)
	}

	form := &models.EventForm{
		MatchID: 7, PlayerID: 30, // team-3 player
		Type: models.EventTypeGoal, Minute: 10, Description: "header from the corner",
	}
	if err := entry.ValidateSubmission(form); err != ErrPlayerNotEligible {
		t.Fatalf("expected ErrPlayerNotEligible, got %v", err)
	}

	form.PlayerID = 10
	if err := entry.ValidateSubmission(form); err != nil {
		t.Fatalf("eligible player rejected: %v", err)
	}
}
