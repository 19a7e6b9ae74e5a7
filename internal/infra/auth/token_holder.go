// Package auth provides concrete implementations for
// authentication-related domain services.
package auth

import (
	"sync"

	"storefront/internal/domain/service"
)

// TokenHolder is the mutable bearer-token slot shared between the
// session store (writer) and the gateway client (reader). It breaks
// the construction cycle between the two: the client reads whichever
// token the session currently holds.
type TokenHolder struct {
	mu    sync.RWMutex
	token string
}

var _ service.TokenSource = (*TokenHolder)(nil)

// NewTokenHolder is the constructor for TokenHolder.
func NewTokenHolder() *TokenHolder {
	return &TokenHolder{}
}

// Token returns the current bearer token, empty while anonymous.
func (h *TokenHolder) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return h.token
}

// Set installs a new bearer token.
func (h *TokenHolder) Set(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = token
}

// Clear drops the held token.
func (h *TokenHolder) Clear() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = ""
}
