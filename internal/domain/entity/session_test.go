package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionTransitions(t *testing.T) {
	t.Run("begin auth discards any previous state", func(t *testing.T) {
		assert.Equal(t, Authenticating{}, BeginAuth(Anonymous{}))
		assert.Equal(t, Authenticating{}, BeginAuth(AuthFailed{Message: "Invalid email or password"}))
		assert.Equal(t, Authenticating{}, BeginAuth(Authenticated{User: User{ID: "u1"}, Token: "t1"}))
	})

	t.Run("success carries the identity and token", func(t *testing.T) {
		user := User{ID: "u1", FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com"}
		state := AuthSucceeded(user, "token-1")

		got, token, ok := Credentials(state)
		require.True(t, ok)
		assert.Equal(t, user, got)
		assert.Equal(t, "token-1", token)
	})

	t.Run("failure carries the message", func(t *testing.T) {
		state := AuthFailedWith("Invalid email or password")
		assert.Equal(t, AuthFailed{Message: "Invalid email or password"}, state)
		assert.False(t, IsAuthenticated(state))
	})

	t.Run("end session always returns to anonymous", func(t *testing.T) {
		assert.Equal(t, Anonymous{}, EndSession(Authenticated{User: User{ID: "u1"}}))
		assert.Equal(t, Anonymous{}, EndSession(Anonymous{}))
		assert.Equal(t, Anonymous{}, EndSession(AuthFailed{Message: "x"}))
	})
}

func TestDismissError(t *testing.T) {
	t.Run("clears a held failure", func(t *testing.T) {
		assert.Equal(t, Anonymous{}, DismissError(AuthFailed{Message: "x"}))
	})

	t.Run("leaves other states unchanged", func(t *testing.T) {
		authed := Authenticated{User: User{ID: "u1"}, Token: "t1"}
		assert.Equal(t, authed, DismissError(authed))
		assert.Equal(t, Authenticating{}, DismissError(Authenticating{}))
		assert.Equal(t, Anonymous{}, DismissError(Anonymous{}))
	})
}

func TestIsAuthenticated(t *testing.T) {
	assert.False(t, IsAuthenticated(Anonymous{}))
	assert.False(t, IsAuthenticated(Authenticating{}))
	assert.False(t, IsAuthenticated(AuthFailed{Message: "x"}))
	assert.True(t, IsAuthenticated(Authenticated{User: User{ID: "u1"}, Token: "t1"}))
}
