package clients

import (
	"context"
	"fmt"

	"github.com/CarlosLlanosRodriguez/gestion-torneos-app/models"
)

// UserClient covers user administration. Every operation requires an admin
// session; the backend enforces the role.
type UserClient struct {
	base *BaseClient
}

func NewUserClient(base *BaseClient) *UserClient {
	return &UserClient{base: base}
}

func (c *UserClient) List(ctx context.Context) ([]models.User, int, error) {
	var items []models.User
	total, err := c.base.get(ctx, "/users", true, &items)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (c *UserClient) GetByID(ctx context.Context, id int) (*models.User, error) {
	var u models.User
	if _, err := c.base.get(ctx, fmt.Sprintf("/users/%d", id), true, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *UserClient) Create(ctx context.Context, form models.UserForm) (*models.User, error) {
	var u models.User
	if _, err := c.base.post(ctx, "/users", form, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *UserClient) Update(ctx context.Context, id int, form models.UserForm) (*models.User, error) {
	var u models.User
	if _, err := c.base.put(ctx, fmt.Sprintf("/users/%d", id), form, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *UserClient) ChangePassword(ctx context.Context, id int, form models.ChangePasswordForm) error {
	_, err := c.base.put(ctx, fmt.Sprintf("/users/%d/password", id), form, nil)
	return err
}

func (c *UserClient) Delete(ctx context.Context, id int) error {
	return c.base.delete(ctx, fmt.Sprintf("/users/%d", id))
}
