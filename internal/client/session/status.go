package session

// Status is the lifecycle state of the session. Exactly one status holds at
// any instant.
type Status int

const (
	// StatusUninitialized is the state before Initialize has run.
	StatusUninitialized Status = iota

	// StatusRestoring is the transient startup state while a persisted
	// credential is being resolved.
	StatusRestoring

	// StatusUnauthenticated means no valid session exists.
	StatusUnauthenticated

	// StatusAuthenticated means a valid session with an identity record exists.
	StatusAuthenticated
)

func (s Status) String() string {
	switch s {
	case StatusUninitialized:
		return "uninitialized"
	case StatusRestoring:
		return "restoring"
	case StatusUnauthenticated:
		return "unauthenticated"
	case StatusAuthenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}
