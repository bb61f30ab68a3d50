package auth

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// Cookie is a single name=value pair from a browser session.
type Cookie struct {
	Name  string
	Value string
}

// CookieSet is an ordered collection of session cookies, preserving
// the order they appeared in the original header.
type CookieSet struct {
	cookies []Cookie
}

// ParseCookieString parses a Cookie header value as copied from
// browser DevTools (e.g., "name1=value1; name2=value2"). Items
// without an "=" are ignored; values may themselves contain "=".
func ParseCookieString(s string) (*CookieSet, error) {
	set := &CookieSet{}
	for _, item := range strings.Split(s, ";") {
		item = strings.TrimSpace(item)
		name, value, ok := strings.Cut(item, "=")
		if !ok || name == "" {
			continue
		}
		set.cookies = append(set.cookies, Cookie{Name: name, Value: value})
	}

	if len(set.cookies) == 0 {
		return nil, ErrEmptyCookieString
	}
	return set, nil
}

// Header renders the set as a Cookie header value.
func (s *CookieSet) Header() string {
	parts := make([]string, len(s.cookies))
	for i, c := range s.cookies {
		parts[i] = c.Name + "=" + c.Value
	}
	return strings.Join(parts, "; ")
}

// Get returns the value of the named cookie and whether it exists.
func (s *CookieSet) Get(name string) (string, bool) {
	for _, c := range s.cookies {
		if c.Name == name {
			return c.Value, true
		}
	}
	return "", false
}

// Len returns the number of cookies in the set.
func (s *CookieSet) Len() int {
	return len(s.cookies)
}

// Fingerprint returns a short SHA-256 digest of the rendered header,
// safe to include in logs instead of the credential itself.
func (s *CookieSet) Fingerprint() string {
	h := sha256.Sum256([]byte(s.Header()))
	return hex.EncodeToString(h[:])[:12]
}
