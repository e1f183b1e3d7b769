package adapter

import "errors"

var (
	// ErrUnauthorized is returned when the server rejects the session token.
	ErrUnauthorized = errors.New("client unauthorized")

	// ErrNotFound is returned when the requested conversation or message
	// does not exist on the server.
	ErrNotFound = errors.New("not found")
)
