// Package entity contains the core business objects of the client,
// each representing a unique, identifiable concept within the domain.
package entity

// User is the authenticated identity as reported by the storefront API.
type User struct {
	ID        string // Opaque server-assigned identifier.
	FirstName string
	LastName  string
	Email     string
}

// SessionState is the tagged union over the session state machine:
// Anonymous, Authenticating, Authenticated and AuthFailed. At most one
// identity is held at a time; only Authenticated carries credentials.
type SessionState interface {
	sessionState()
}

// Anonymous is the initial state: no identity, no credentials.
type Anonymous struct{}

// Authenticating is the transient state while a login or signup request
// is in flight.
type Authenticating struct{}

// Authenticated holds the identity and the opaque bearer token for the
// running client.
type Authenticated struct {
	User  User
	Token string
}

// AuthFailed carries the human-readable message of the last failed
// login or signup attempt.
type AuthFailed struct {
	Message string
}

func (Anonymous) sessionState()      {}
func (Authenticating) sessionState() {}
func (Authenticated) sessionState()  {}
func (AuthFailed) sessionState()     {}

// BeginAuth starts a login or signup attempt. Any previous error state
// is discarded; an already authenticated session is replaced.
func BeginAuth(SessionState) SessionState {
	return Authenticating{}
}

// AuthSucceeded completes an attempt with the returned identity.
func AuthSucceeded(user User, token string) SessionState {
	return Authenticated{User: user, Token: token}
}

// AuthFailedWith completes an attempt with a failure message.
func AuthFailedWith(message string) SessionState {
	return AuthFailed{Message: message}
}

// EndSession is the unconditional logout transition.
func EndSession(SessionState) SessionState {
	return Anonymous{}
}

// DismissError discards a held failure; any other state is unchanged.
func DismissError(s SessionState) SessionState {
	if _, ok := s.(AuthFailed); ok {
		return Anonymous{}
	}

	return s
}

// IsAuthenticated reports whether the state carries an identity. It is
// true exactly when Credentials returns ok.
func IsAuthenticated(s SessionState) bool {
	_, _, ok := Credentials(s)

	return ok
}

// Credentials extracts the identity and token from an authenticated state.
func Credentials(s SessionState) (User, string, bool) {
	auth, ok := s.(Authenticated)
	if !ok {
		return User{}, "", false
	}

	return auth.User, auth.Token, true
}
