package service

// TokenSource supplies the current bearer token for outbound requests.
// It returns the empty string while the session is not authenticated,
// in which case no Authorization header is attached.
type TokenSource interface {
	Token() string
}
