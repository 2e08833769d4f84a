// Package credentials persists the bearer token that proves the current
// session. Storage is modeled as a capability (Save/Load/Clear) so the
// session logic works against any durable local key-value mechanism; the
// default implementation keeps a single row in a local SQLite database,
// which survives restarts the way browser storage survives reloads.
//
// The token is stored as an opaque string: the package never validates its
// contents and never performs network I/O.
package credentials
