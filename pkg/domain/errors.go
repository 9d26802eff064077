package domain

import "errors"

var (
	ErrNotFound = errors.New("not found")

	// ErrRateLimited is returned by providers when the remote quota is exhausted (HTTP 429).
	ErrRateLimited = errors.New("rate limited")

	// ErrNoImage is returned when a call succeeds but carries no inline image payload.
	ErrNoImage = errors.New("no image in response")
)
