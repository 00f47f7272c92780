package clients

import (
	"context"
	"fmt"

	"github.com/CarlosLlanosRodriguez/gestion-torneos-app/models"
)

type TeamClient struct {
	base *BaseClient
}

func NewTeamClient(base *BaseClient) *TeamClient {
	return &TeamClient{base: base}
}

func (c *TeamClient) List(ctx context.Context) ([]models.Team, int, error) {
	var items []models.Team
	total, err := c.base.get(ctx, "/teams", false, &items)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (c *TeamClient) GetByID(ctx context.Context, id int) (*models.Team, error) {
	var t models.Team
	if _, err := c.base.get(ctx, fmt.Sprintf("/teams/%d", id), false, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

func (c *TeamClient) Create(ctx context.Context, form models.TeamForm) (*models.Team, error) {
	var t models.Team
	if _, err := c.base.post(ctx, "/teams", form, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

func (c *TeamClient) Update(ctx context.Context, id int, form models.TeamForm) (*models.Team, error) {
	var t models.Team
	if _, err := c.base.put(ctx, fmt.Sprintf("/teams/%d", id), form, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

func (c *TeamClient) Delete(ctx context.Context, id int) error {
	return c.base.delete(ctx, fmt.Sprintf("/teams/%d", id))
}
