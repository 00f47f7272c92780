package clients

import (
	"context"
	"fmt"

	"github.com/CarlosLlanosRodriguez/gestion-torneos-app/models"
)

type PlayerClient struct {
	base *BaseClient
}

func NewPlayerClient(base *BaseClient) *PlayerClient {
	return &PlayerClient{base: base}
}

// List returns every player. The contract has no team-scoped read, callers
// filter by team id themselves.
func (c *PlayerClient) List(ctx context.Context) ([]models.Player, int, error) {
	var items []models.Player
	total, err := c.base.get(ctx, "/players", false, &items)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (c *PlayerClient) GetByID(ctx context.Context, id int) (*models.Player, error) {
	var p models.Player
	if _, err := c.base.get(ctx, fmt.Sprintf("/players/%d", id), false, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *PlayerClient) Create(ctx context.Context, form models.PlayerForm) (*models.Player, error) {
	var p models.Player
	if _, err := c.base.post(ctx, "/players", form, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *PlayerClient) Update(ctx context.Context, id int, form models.PlayerForm) (*models.Player, error) {
	var p models.Player
	if _, err := c.base.put(ctx, fmt.Sprintf("/players/%d", id), form, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *PlayerClient) Delete(ctx context.Context, id int) error {
	return c.base.delete(ctx, fmt.Sprintf("/players/%d", id))
}
