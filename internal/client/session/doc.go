// Package session owns the client's authentication state.
//
// A single Manager holds the current Status and, when authenticated, the
// Identity record. All mutations go through the Manager's operations:
// Initialize (one-time restoration of a persisted session), Login, Refresh,
// and Logout. Consumers gate protected behavior on the Status leaving
// StatusRestoring.
//
// The Manager never panics past its boundary: every operation resolves to a
// state transition plus, at most, an error value carrying a human-readable
// message for the caller to display. The worst case of any failure is a
// forced transition to StatusUnauthenticated.
package session
