package clients

import (
	"context"
	"fmt"

	"github.com/CarlosLlanosRodriguez/gestion-torneos-app/models"
)

type TournamentClient struct {
	base *BaseClient
}

func NewTournamentClient(base *BaseClient) *TournamentClient {
	return &TournamentClient{base: base}
}

func (c *TournamentClient) List(ctx context.Context) ([]models.Tournament, int, error) {
	var items []models.Tournament
	total, err := c.base.get(ctx, "/tournaments", false, &items)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (c *TournamentClient) GetByID(ctx context.Context, id int) (*models.Tournament, error) {
	var t models.Tournament
	if _, err := c.base.get(ctx, fmt.Sprintf("/tournaments/%d", id), false, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

// Mine lists the tournaments organized by the current user.
func (c *TournamentClient) Mine(ctx context.Context) ([]models.Tournament, int, error) {
	var items []models.Tournament
	total, err := c.base.get(ctx, "/tournaments/mine", true, &items)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (c *TournamentClient) ByStatus(ctx context.Context, status models.TournamentStatus) ([]models.Tournament, int, error) {
	var items []models.Tournament
	total, err := c.base.get(ctx, fmt.Sprintf("/tournaments/status/%s", status), false, &items)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (c *TournamentClient) Create(ctx context.Context, form models.TournamentForm) (*models.Tournament, error) {
	var t models.Tournament
	if _, err := c.base.post(ctx, "/tournaments", form, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

func (c *TournamentClient) Update(ctx context.Context, id int, form models.TournamentForm) (*models.Tournament, error) {
	var t models.Tournament
	if _, err := c.base.put(ctx, fmt.Sprintf("/tournaments/%d", id), form, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

func (c *TournamentClient) Delete(ctx context.Context, id int) error {
	return c.base.delete(ctx, fmt.Sprintf("/tournaments/%d", id))
}
