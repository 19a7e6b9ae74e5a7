package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) (repository.CredentialRepository, string) {
	t.Helper()

	dir := t.TempDir()
	cfg := &config.Config{}
	cfg.State.Dir = dir

	return NewCredentialStore(cfg), dir
}

func TestSaveLoadRoundTrip(t *testing.T) {
	store, _ := newStore(t)
	ctx := context.Background()
	user := entity.User{ID: "u1", FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com"}

	require.NoError(t, store.Save(ctx, user, "token-1"))

	got, token, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, user, got)
	assert.Equal(t, "token-1", token)
}

func TestLoadWithoutPersistedPair(t *testing.T) {
	store, _ := newStore(t)

	_, _, err := store.Load(context.Background())
	assert.True(t, errors.Is(err, repository.ErrNoCredentials))
}

func TestLoadCorruptUserEntry(t *testing.T) {
	store, dir := newStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, entity.User{ID: "u1"}, "token-1"))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ecommerce-user.json"), []byte("{not json"), 0o600))

	_, _, err := store.Load(ctx)
	assert.True(t, errors.Is(err, repository.ErrCorruptCredentials))
}

func TestLoadEmptyTokenIsCorrupt(t *testing.T) {
	store, dir := newStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, entity.User{ID: "u1"}, "token-1"))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ecommerce-token"), []byte("  \n"), 0o600))

	_, _, err := store.Load(ctx)
	assert.True(t, errors.Is(err, repository.ErrCorruptCredentials))
}

func TestClearRemovesBothEntries(t *testing.T) {
	store, dir := newStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, entity.User{ID: "u1"}, "token-1"))
	require.NoError(t, store.Clear(ctx))

	_, err := os.Stat(filepath.Join(dir, "ecommerce-token"))
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(filepath.Join(dir, "ecommerce-user.json"))
	assert.True(t, os.IsNotExist(err))

	_, _, loadErr := store.Load(ctx)
	assert.True(t, errors.Is(loadErr, repository.ErrNoCredentials))
}

func TestClearIsIdempotent(t *testing.T) {
	store, _ := newStore(t)

	assert.NoError(t, store.Clear(context.Background()))
	assert.NoError(t, store.Clear(context.Background()))
}
