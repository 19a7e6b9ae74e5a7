// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"sync"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/gateway"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	infraauth "storefront/internal/infra/auth"
	"storefront/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	authGateway gateway.Auth
	credentials repository.CredentialRepository
	tokens      *infraauth.TokenHolder
	notifier    service.Notifier
	validate    *validator.Validate
	logger      *slog.Logger

	mu        sync.Mutex
	state     entity.SessionState
	listeners []usecase.SessionListener
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(
	authGateway gateway.Auth,
	credentials repository.CredentialRepository,
	tokens *infraauth.TokenHolder,
	notifier service.Notifier,
	logger *slog.Logger,
) usecase.SessionUsecase {
	return &sessionService{
		authGateway: authGateway,
		credentials: credentials,
		tokens:      tokens,
		notifier:    notifier,
		validate:    validator.New(),
		logger:      logger,
		state:       entity.Anonymous{},
	}
}

// Restore attempts to load a previously persisted (token, user) pair.
// A valid pair re-establishes the session without contacting the
// server. A corrupt pair is discarded and the session stays anonymous;
// the failure is reported to the log only, never to the caller.
func (srv *sessionService) Restore(ctx context.Context) error {
	user, token, err := srv.credentials.Load(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrNoCredentials) {
			return nil
		}

		srv.logger.Warn("Unable to restore persisted session", slog.Any("error", err))
		if errors.Is(err, repository.ErrCorruptCredentials) {
			if clearErr := srv.credentials.Clear(ctx); clearErr != nil {
				srv.logger.Warn("Failed to discard corrupt credentials", slog.Any("error", clearErr))
			}
		}

		return nil
	}

	srv.logger.Debug("Restored persisted session", slog.String("email", user.Email))
	srv.tokens.Set(token)
	srv.transition(ctx, entity.AuthSucceeded(user, token))

	return nil
}

// Login authenticates against the remote API and persists the
// resulting credentials.
func (srv *sessionService) Login(ctx context.Context, input usecase.LoginInput) error {
	srv.transition(ctx, entity.BeginAuth(srv.currentState()))

	creds, err := srv.authGateway.Login(ctx, gateway.LoginRequest{
		Email:    input.Email,
		Password: input.Password,
	})
	if err != nil {
		return srv.authFailure(ctx, err, "Login failed")
	}

	srv.establish(ctx, creds)
	srv.notifier.Success("Login successful!")

	return nil
}

// Signup creates a new identity server-side and authenticates as it.
func (srv *sessionService) Signup(ctx context.Context, input usecase.SignupInput) error {
	if err := srv.validate.Struct(input); err != nil {
		message := signupValidationMessage(err)
		srv.notifier.Error(message)

		return errors.Wrap(domainerrors.ErrValidationFailed, message)
	}

	srv.transition(ctx, entity.BeginAuth(srv.currentState()))

	creds, err := srv.authGateway.Signup(ctx, gateway.SignupRequest{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
		Password:  input.Password,
	})
	if err != nil {
		return srv.authFailure(ctx, err, "Signup failed")
	}

	srv.establish(ctx, creds)
	srv.notifier.Success("Account created successfully!")

	return nil
}

// Logout drops the identity unconditionally. There is no server-side
// session to invalidate, so no request is made.
func (srv *sessionService) Logout(ctx context.Context) error {
	srv.tokens.Clear()
	if err := srv.credentials.Clear(ctx); err != nil {
		srv.logger.Warn("Failed to clear persisted credentials", slog.Any("error", err))
	}

	srv.transition(ctx, entity.EndSession(srv.currentState()))
	srv.notifier.Success("Logged out successfully!")

	return nil
}

// ClearError discards a held failure without side effects.
func (srv *sessionService) ClearError() {
	srv.mu.Lock()
	srv.state = entity.DismissError(srv.state)
	srv.mu.Unlock()
}

func (srv *sessionService) State() entity.SessionState {
	return srv.currentState()
}

func (srv *sessionService) CurrentUser() (entity.User, bool) {
	user, _, ok := entity.Credentials(srv.currentState())

	return user, ok
}

func (srv *sessionService) Subscribe(listener usecase.SessionListener) {
	srv.mu.Lock()
	srv.listeners = append(srv.listeners, listener)
	srv.mu.Unlock()
}

// establish installs credentials after a successful login or signup.
// Persistence failure is logged but does not fail the session; the
// identity simply will not survive a restart.
func (srv *sessionService) establish(ctx context.Context, creds gateway.Credentials) {
	if err := srv.credentials.Save(ctx, creds.User, creds.Token); err != nil {
		srv.logger.Warn("Failed to persist credentials", slog.Any("error", err))
	}

	srv.tokens.Set(creds.Token)
	srv.transition(ctx, entity.AuthSucceeded(creds.User, creds.Token))
}

// authFailure records a failed attempt and surfaces its message.
func (srv *sessionService) authFailure(ctx context.Context, err error, fallback string) error {
	message := userMessage(err, fallback)

	srv.logger.Warn("Authentication failed", slog.Any("error", err))
	srv.tokens.Clear()
	srv.transition(ctx, entity.AuthFailedWith(message))
	srv.notifier.Error(message)

	return errors.Wrap(err, "authentication failed")
}

func (srv *sessionService) currentState() entity.SessionState {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	return srv.state
}

// transition swaps the state and informs listeners outside the lock.
func (srv *sessionService) transition(ctx context.Context, next entity.SessionState) {
	srv.mu.Lock()
	srv.state = next
	listeners := make([]usecase.SessionListener, len(srv.listeners))
	copy(listeners, srv.listeners)
	srv.mu.Unlock()

	for _, listener := range listeners {
		listener.SessionChanged(ctx, next)
	}
}

// signupValidationMessage maps the first failed field to its
// user-facing message.
func signupValidationMessage(err error) string {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return "Validation failed"
	}

	switch fieldErrs[0].Field() {
	case "FirstName":
		return "First name is required"
	case "LastName":
		return "Last name is required"
	case "Email":
		return "Please enter a valid email address"
	case "Password":
		return "Password must be at least 6 characters"
	default:
		return "Validation failed"
	}
}
