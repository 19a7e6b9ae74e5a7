// Package repository defines the contracts for locally persisted state.
package repository

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"
)

// Sentinel errors returned by credential repositories.
var (
	// ErrNoCredentials means no persisted pair exists.
	ErrNoCredentials = errors.New("no persisted credentials")

	// ErrCorruptCredentials means a persisted entry exists but does not
	// parse; callers discard the pair and fall back to anonymous.
	ErrCorruptCredentials = errors.New("persisted credentials are corrupt")
)

// CredentialRepository persists the session's (token, user) pair across
// process restarts. The two entries are keyed separately but always
// written together and cleared together, never independently.
type CredentialRepository interface {
	Save(ctx context.Context, user entity.User, token string) error
	Load(ctx context.Context) (entity.User, string, error)
	Clear(ctx context.Context) error
}
