package clients

import (
	"context"
	"fmt"

	"github.com/CarlosLlanosRodriguez/gestion-torneos-app/models"
)

type EventClient struct {
	base *BaseClient
}

func NewEventClient(base *BaseClient) *EventClient {
	return &EventClient{base: base}
}

func (c *EventClient) List(ctx context.Context) ([]models.Event, int, error) {
	var items []models.Event
	total, err := c.base.get(ctx, "/events", false, &items)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (c *EventClient) GetByID(ctx context.Context, id int) (*models.Event, error) {
	var e models.Event
	if _, err := c.base.get(ctx, fmt.Sprintf("/events/%d", id), false, &e); err != nil {
		return nil, err
	}
	return &e, nil
}

func (c *EventClient) ByMatch(ctx context.Context, matchID int) ([]models.Event, int, error) {
	var items []models.Event
	total, err := c.base.get(ctx, fmt.Sprintf("/events/match/%d", matchID), false, &items)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// TopScorers is the public per-match scorer table, no auth required.
func (c *EventClient) TopScorers(ctx context.Context, matchID int) ([]models.TopScorer, int, error) {
	var items []models.TopScorer
	total, err := c.base.get(ctx, fmt.Sprintf("/events/match/%d/top-scorers", matchID), false, &items)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (c *EventClient) Create(ctx context.Context, form models.EventForm) (*models.Event, error) {
	var e models.Event
	if _, err := c.base.post(ctx, "/events", form, &e); err != nil {
		return nil, err
	}
	return &e, nil
}

func (c *EventClient) Update(ctx context.Context, id int, form models.EventForm) (*models.Event, error) {
	var e models.Event
	if _, err := c.base.put(ctx, fmt.Sprintf("/events/%d", id), form, &e); err != nil {
		return nil, err
	}
	return &e, nil
}

func (c *EventClient) Delete(ctx context.Context, id int) error {
	return c.base.delete(ctx, fmt.Sprintf("/events/%d", id))
}
