package clients

import (
	"context"
	"fmt"

	"github.com/CarlosLlanosRodriguez/gestion-torneos-app/models"
)

type MatchClient struct {
	base *BaseClient
}

func NewMatchClient(base *BaseClient) *MatchClient {
	return &MatchClient{base: base}
}

func (c *MatchClient) List(ctx context.Context) ([]models.Match, int, error) {
	var items []models.Match
	total, err := c.base.get(ctx, "/matches", false, &items)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (c *MatchClient) GetByID(ctx context.Context, id int) (*models.Match, error) {
	var m models.Match
	if _, err := c.base.get(ctx, fmt.Sprintf("/matches/%d", id), false, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

func (c *MatchClient) ByTournament(ctx context.Context, tournamentID int) ([]models.Match, int, error) {
	var items []models.Match
	total, err := c.base.get(ctx, fmt.Sprintf("/matches/tournament/%d", tournamentID), false, &items)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (c *MatchClient) Create(ctx context.Context, form models.MatchCreateForm) (*models.Match, error) {
	var m models.Match
	if _, err := c.base.post(ctx, "/matches", form, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

func (c *MatchClient) Update(ctx context.Context, id int, form models.MatchUpdateForm) (*models.Match, error) {
	var m models.Match
	if _, err := c.base.put(ctx, fmt.Sprintf("/matches/%d", id), form, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

func (c *MatchClient) Delete(ctx context.Context, id int) error {
	return c.base.delete(ctx, fmt.Sprintf("/matches/%d", id))
}
