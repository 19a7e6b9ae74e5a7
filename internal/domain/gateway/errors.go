package gateway

// RemoteError is a request the server answered with a failure. Message
// carries the server-provided text when present, else a generic
// fallback; components surface it verbatim to the user.
type RemoteError struct {
	StatusCode int
	Message    string
}

func (e *RemoteError) Error() string {
	return e.Message
}
