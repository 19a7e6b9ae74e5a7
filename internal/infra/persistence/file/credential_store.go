// Package file implements credential persistence over the local
// filesystem as two keyed entries, one for the token and one for the
// serialized user profile.
package file

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"

	"github.com/pkg/errors"
)

const (
	tokenFile = "ecommerce-token"
	userFile  = "ecommerce-user.json"
)

// credentialStore keeps the token and the serialized user profile in
// two files under the state directory. Both entries are written
// together and cleared together, never independently.
type credentialStore struct {
	dir string
}

// NewCredentialStore is the constructor for the file-backed
// CredentialRepository.
func NewCredentialStore(cfg *config.Config) repository.CredentialRepository {
	return &credentialStore{dir: cfg.State.Dir}
}

func (s *credentialStore) Save(ctx context.Context, user entity.User, token string) error {
	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return errors.Wrap(err, "create state directory")
	}

	serialized, err := json.Marshal(storedUser{
		ID:        user.ID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
	})
	if err != nil {
		return errors.Wrap(err, "serialize user profile")
	}

	if err := os.WriteFile(filepath.Join(s.dir, tokenFile), []byte(token), 0o600); err != nil {
		return errors.Wrap(err, "write token entry")
	}
	if err := os.WriteFile(filepath.Join(s.dir, userFile), serialized, 0o600); err != nil {
		// Keep the pair consistent: a half-written pair must not survive.
		_ = os.Remove(filepath.Join(s.dir, tokenFile))

		return errors.Wrap(err, "write user entry")
	}

	return nil
}

func (s *credentialStore) Load(ctx context.Context) (entity.User, string, error) {
	token, err := os.ReadFile(filepath.Join(s.dir, tokenFile))
	if err != nil {
		if os.IsNotExist(err) {
			return entity.User{}, "", repository.ErrNoCredentials
		}

		return entity.User{}, "", errors.Wrap(err, "read token entry")
	}

	raw, err := os.ReadFile(filepath.Join(s.dir, userFile))
	if err != nil {
		if os.IsNotExist(err) {
			return entity.User{}, "", repository.ErrNoCredentials
		}

		return entity.User{}, "", errors.Wrap(err, "read user entry")
	}

	var stored storedUser
	if err := json.Unmarshal(raw, &stored); err != nil {
		return entity.User{}, "", errors.Wrap(repository.ErrCorruptCredentials, err.Error())
	}

	trimmedToken := strings.TrimSpace(string(token))
	if trimmedToken == "" {
		return entity.User{}, "", repository.ErrCorruptCredentials
	}

	user := entity.User{
		ID:        stored.ID,
		FirstName: stored.FirstName,
		LastName:  stored.LastName,
		Email:     stored.Email,
	}

	return user, trimmedToken, nil
}

func (s *credentialStore) Clear(ctx context.Context) error {
	for _, name := range []string{tokenFile, userFile} {
		if err := os.Remove(filepath.Join(s.dir, name)); err != nil && !os.IsNotExist(err) {
			return errors.Wrapf(err, "remove %s", name)
		}
	}

	return nil
}

type storedUser struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}
