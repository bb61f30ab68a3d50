// Package testutil provides fixtures and fake-server helpers for
// tests against the CapEdge API surface.
package testutil

import (
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"
	"testing"
)

// LoadFixture loads a fixture file from the testdata directory.
// The path is relative to the testdata directory.
func LoadFixture(t *testing.T, path string) []byte {
	t.Helper()

	fullPath := filepath.Join("testdata", path)
	data, err := os.ReadFile(fullPath)
	if err != nil {
		t.Fatalf("failed to load fixture %s: %v", path, err)
	}

	return data
}

// LoadFixtureString loads a fixture file as a string.
func LoadFixtureString(t *testing.T, path string) string {
	t.Helper()
	return string(LoadFixture(t, path))
}

// LoadJSONFixture loads a fixture file and unmarshals it as JSON.
func LoadJSONFixture[T any](t *testing.T, path string) T {
	t.Helper()

	data := LoadFixture(t, path)

	var result T
	if err := json.Unmarshal(data, &result); err != nil {
		t.Fatalf("failed to parse JSON fixture %s: %v", path, err)
	}

	return result
}

// ServeJSON writes body as an application/json response.
func ServeJSON(w http.ResponseWriter, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(body)
}

// LoginPage is what the API serves once a session has expired: a 200
// with the sign-in page instead of JSON.
const LoginPage = "<!DOCTYPE html>\n<html><head><title>CapEdge</title></head>" +
	"<body><form>Sign in</form></body></html>"

// ServeLoginPage mimics an expired session.
func ServeLoginPage(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/html")
	_, _ = w.Write([]byte(LoginPage))
}
