package impl

import (
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/gateway"

	"github.com/pkg/errors"
)

// userMessage picks the text surfaced to the user for a failed
// operation: the server-provided message when the request was
// answered, the domain error's message when one is in the chain, else
// the operation's generic fallback.
func userMessage(err error, fallback string) string {
	var remote *gateway.RemoteError
	if errors.As(err, &remote) && remote.Message != "" {
		return remote.Message
	}

	var app domainerrors.AppError
	if errors.As(err, &app) {
		return app.Message()
	}

	return fallback
}
