package backend

import (
	"context"
	"net/http"

	"fitbook-storefront/internal/domain/auth"
	"fitbook-storefront/internal/domain/user"
	"fitbook-storefront/internal/infra"
)

func (c *Client) Login(ctx context.Context, credentials auth.Credentials) (string, error) {
	req := loginDTO{
		Email:    credentials.Email().Value(),
		Password: credentials.Password().Value(),
	}
	return c.token(ctx, "/auth/login", req)
}

func (c *Client) Register(ctx context.Context, registration auth.Registration) (string, error) {
	credentials := registration.Credentials()
	req := registerDTO{
		FullName: registration.FullName().Value(),
		Email:    credentials.Email().Value(),
		Password: credentials.Password().Value(),
	}
	return c.token(ctx, "/auth/register", req)
}

func (c *Client) token(ctx context.Context, path string, body any) (string, error) {
	var dto tokenDTO
	if err := c.do(ctx, http.MethodPost, path, "", body, &dto); err != nil {
		return "", err
	}
	if dto.Token == "" {
		return "", infra.NewBackendError(infra.KindDecode, http.StatusOK, "", nil)
	}
	return dto.Token, nil
}

func (c *Client) CurrentUser(ctx context.Context, token string) (*user.User, error) {
	var dto userDTO
	if err := c.do(ctx, http.MethodGet, "/auth/me", token, nil, &dto); err != nil {
		return nil, err
	}
	if dto.ID == "" {
		return nil, infra.NewBackendError(infra.KindDecode, http.StatusOK, "", nil)
	}
	return dto.toDomain(), nil
}

func (c *Client) Logout(ctx context.Context, token string) error {
	return c.do(ctx, http.MethodPost, "/auth/logout", token, nil, nil)
}
