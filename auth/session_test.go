package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func signedToken(t *testing.T, subject string, expiresAt time.Time) string {
	t.Helper()

	claims := jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte("remote-side-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func TestInspectSession(t *testing.T) {
	t.Run("reads subject and expiry", func(t *testing.T) {
		exp := time.Now().Add(2 * time.Hour).Truncate(time.Second)
		set, _ := ParseCookieString("sessionId=s1; __Secure-authjs.session-token=" + signedToken(t, "user-42", exp))

		info, err := InspectSession(set)
		if err != nil {
			t.Fatalf("InspectSession() error = %v", err)
		}
		if info.Cookie != "__Secure-authjs.session-token" {
			t.Errorf("Cookie = %q", info.Cookie)
		}
		if info.Subject != "user-42" {
			t.Errorf("Subject = %q, want %q", info.Subject, "user-42")
		}
		if !info.ExpiresAt.Equal(exp) {
			t.Errorf("ExpiresAt = %v, want %v", info.ExpiresAt, exp)
		}
		if info.Expired(time.Now()) {
			t.Error("Expired() = true for a future expiry")
		}
	})

	t.Run("reports expired token", func(t *testing.T) {
		exp := time.Now().Add(-time.Hour)
		set, _ := ParseCookieString("authjs.session-token=" + signedToken(t, "user-42", exp))

		info, err := InspectSession(set)
		if err != nil {
			t.Fatalf("InspectSession() error = %v", err)
		}
		if !info.Expired(time.Now()) {
			t.Error("Expired() = false for a past expiry")
		}
	})

	t.Run("encrypted token reports unknown expiry", func(t *testing.T) {
		// JWE compact serialization has five segments.
		set, _ := ParseCookieString("__Secure-authjs.session-token=aaa.bbb.ccc.ddd.eee")

		info, err := InspectSession(set)
		if err != nil {
			t.Fatalf("InspectSession() error = %v", err)
		}
		if !info.ExpiresAt.IsZero() {
			t.Errorf("ExpiresAt = %v, want zero", info.ExpiresAt)
		}
		if info.Expired(time.Now()) {
			t.Error("Expired() = true when expiry is unknown")
		}
	})

	t.Run("malformed three-segment token", func(t *testing.T) {
		set, _ := ParseCookieString("authjs.session-token=not.a.jwt")

		_, err := InspectSession(set)
		if !errors.Is(err, ErrMalformedToken) {
			t.Errorf("got error %v, want ErrMalformedToken", err)
		}
	})

	t.Run("no session token cookie", func(t *testing.T) {
		set, _ := ParseCookieString("sessionId=s1; theme=dark")

		_, err := InspectSession(set)
		if !errors.Is(err, ErrNoSessionToken) {
			t.Errorf("got error %v, want ErrNoSessionToken", err)
		}
	})
}
