// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// --- Input DTOs ---

// LoginInput defines the data required to log in.
type LoginInput struct {
	Email    string
	Password string
}

// SignupInput defines the profile for a new account.
type SignupInput struct {
	FirstName string `validate:"required"`
	LastName  string `validate:"required"`
	Email     string `validate:"required,email"`
	Password  string `validate:"required,min=6"`
}

// SessionListener observes session state changes. The cart synchronizer
// registers one so the cart loads while authenticated and resets on
// logout.
type SessionListener interface {
	SessionChanged(ctx context.Context, state entity.SessionState)
}

// SessionUsecase owns the single authenticated-identity slot for the
// running client.
type SessionUsecase interface {
	// Restore loads a previously persisted session, if any. A corrupt
	// persisted pair is discarded silently; Restore never fails past
	// the component boundary for that case.
	Restore(ctx context.Context) error

	Login(ctx context.Context, input LoginInput) error
	Signup(ctx context.Context, input SignupInput) error

	// Logout drops the identity unconditionally and clears the
	// persisted pair. It never contacts the server.
	Logout(ctx context.Context) error

	// ClearError discards a held AuthFailed state without side effects.
	ClearError()

	State() entity.SessionState
	CurrentUser() (entity.User, bool)

	// Subscribe registers a listener invoked after every state change.
	Subscribe(listener SessionListener)
}
