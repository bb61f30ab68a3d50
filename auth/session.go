package auth

import (
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// sessionTokenCookies are the cookie names the auth layer issues the
// session JWT under, in preference order.
var sessionTokenCookies = []string{
	"__Secure-authjs.session-token",
	"authjs.session-token",
	"__Secure-next-auth.session-token",
	"next-auth.session-token",
}

// SessionInfo describes what could be read from the session token.
type SessionInfo struct {
	// Cookie is the name of the cookie the token was found under.
	Cookie string

	// Subject is the token subject, if present.
	Subject string

	// ExpiresAt is the token expiry. Zero when the token carries no
	// exp claim (encrypted tokens cannot be inspected).
	ExpiresAt time.Time
}

// Expired reports whether the token expiry is known and in the past.
func (s *SessionInfo) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && s.ExpiresAt.Before(now)
}

// InspectSession looks for a session-token cookie and reads its
// claims without verifying the signature. The signing key belongs to
// the remote service, so verification is not possible client-side;
// the point is catching an already-expired session before spending a
// request on it.
func InspectSession(set *CookieSet) (*SessionInfo, error) {
	name, token := findSessionToken(set)
	if name == "" {
		return nil, ErrNoSessionToken
	}

	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		// Encrypted (JWE) tokens have five segments and won't parse as
		// a JWS. Report what we can: the token exists, expiry unknown.
		if strings.Count(token, ".") != 2 {
			return &SessionInfo{Cookie: name}, nil
		}
		return nil, ErrMalformedToken
	}

	info := &SessionInfo{Cookie: name}
	if sub, err := claims.GetSubject(); err == nil {
		info.Subject = sub
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		info.ExpiresAt = exp.Time
	}
	return info, nil
}

func findSessionToken(set *CookieSet) (name, token string) {
	for _, candidate := range sessionTokenCookies {
		if v, ok := set.Get(candidate); ok && v != "" {
			return candidate, v
		}
	}
	return "", ""
}
