// Package models contains data structures shared by the client layers.
package models

// Identity is the server's canonical profile for the signed-in user, as
// returned by the who-am-i endpoint. The session manager replaces it
// wholesale on every refresh; it is never partially mutated.
type Identity struct {
	ID         int64  `json:"id"`
	Email      string `json:"email"`
	IsActive   bool   `json:"is_active"`
	IsVerified bool   `json:"is_verified"`
	FirstName  string `json:"first_name,omitempty"`
	LastName   string `json:"last_name,omitempty"`
}

// DisplayName returns the best human-readable name available.
func (i *Identity) DisplayName() string {
	switch {
	case i.FirstName != "" && i.LastName != "":
		return i.FirstName + " " + i.LastName
	case i.FirstName != "":
		return i.FirstName
	default:
		return i.Email
	}
}
