// Package gateway defines the contracts the client core holds against
// the remote storefront API. Concrete transports live in infra.
package gateway

import (
	"context"

	"storefront/internal/domain/entity"
)

// Credentials is the identity/token pair returned by a successful
// login or signup. The token is opaque to the client.
type Credentials struct {
	User  entity.User
	Token string
}

// SignupRequest carries the profile for a new account.
type SignupRequest struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
}

// LoginRequest carries login credentials.
type LoginRequest struct {
	Email    string
	Password string
}

// Auth is the authentication surface of the remote API.
type Auth interface {
	Signup(ctx context.Context, req SignupRequest) (Credentials, error)
	Login(ctx context.Context, req LoginRequest) (Credentials, error)
	Profile(ctx context.Context) (entity.User, error)
}
