package api

import (
	"context"
	"net/http"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/gateway"

	"github.com/pkg/errors"
)

// userPayload tolerates both the `id` and the legacy `_id` key for the
// user identifier.
type userPayload struct {
	ID        string `json:"id"`
	LegacyID  string `json:"_id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

func (p userPayload) toEntity() entity.User {
	id := p.ID
	if id == "" {
		id = p.LegacyID
	}

	return entity.User{
		ID:        id,
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Email:     p.Email,
	}
}

type credentialsPayload struct {
	User  userPayload `json:"user"`
	Token string      `json:"token"`
}

// Signup creates a new account and returns its credentials.
func (c *Client) Signup(ctx context.Context, req gateway.SignupRequest) (gateway.Credentials, error) {
	body := struct {
		FirstName string `json:"firstName"`
		LastName  string `json:"lastName"`
		Email     string `json:"email"`
		Password  string `json:"password"`
	}{req.FirstName, req.LastName, req.Email, req.Password}

	var data credentialsPayload
	if err := c.do(ctx, http.MethodPost, "/auth/signup", body, &data); err != nil {
		return gateway.Credentials{}, errors.Wrap(err, "signup request")
	}

	return gateway.Credentials{User: data.User.toEntity(), Token: data.Token}, nil
}

// Login authenticates an existing account.
func (c *Client) Login(ctx context.Context, req gateway.LoginRequest) (gateway.Credentials, error) {
	body := struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}{req.Email, req.Password}

	var data credentialsPayload
	if err := c.do(ctx, http.MethodPost, "/auth/login", body, &data); err != nil {
		return gateway.Credentials{}, errors.Wrap(err, "login request")
	}

	return gateway.Credentials{User: data.User.toEntity(), Token: data.Token}, nil
}

// Profile fetches the identity behind the current bearer token.
func (c *Client) Profile(ctx context.Context) (entity.User, error) {
	var data struct {
		User userPayload `json:"user"`
	}
	if err := c.do(ctx, http.MethodGet, "/auth/profile", nil, &data); err != nil {
		return entity.User{}, errors.Wrap(err, "profile request")
	}

	return data.User.toEntity(), nil
}
