package auth

import "errors"

// Errors returned by credential parsing and inspection.
var (
	// ErrEmptyCookieString indicates the cookie string had no usable pairs.
	ErrEmptyCookieString = errors.New("cookie string contains no cookies")

	// ErrNoSessionToken indicates no session-token cookie was found.
	ErrNoSessionToken = errors.New("no session token cookie present")

	// ErrMalformedToken indicates the session token is not a parseable JWT.
	ErrMalformedToken = errors.New("malformed session token")
)
