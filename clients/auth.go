package clients

import (
	"context"
	"net/http"

	"github.com/CarlosLlanosRodriguez/gestion-torneos-app/models"
)

type AuthClient struct {
	base *BaseClient
}

func NewAuthClient(base *BaseClient) *AuthClient {
	return &AuthClient{base: base}
}

// LoginResult is the payload of a successful POST /auth/login.
type LoginResult struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

func (c *AuthClient) Login(ctx context.Context, creds models.Credentials) (*LoginResult, error) {
	var res LoginResult
	if _, err := c.base.do(ctx, http.MethodPost, "/auth/login", creds, false, &res); err != nil {
		return nil, err
	}
	return &res, nil
}
