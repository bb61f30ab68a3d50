// Package auth handles CapEdge session credentials: parsing browser
// cookie strings into an ordered cookie set, fingerprinting them for
// safe logging, and inspecting the session token for expiry without a
// round trip.
package auth
