package gateway

import (
	"context"

	"github.com/dmikhailov/authkeeper/internal/client/models"
)

// RegisterRequest is the payload for creating a new account. First and last
// name are optional; registration never creates a session.
type RegisterRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
}

// Client is the identity-service contract consumed by the session and
// verification layers. It owns no state beyond the connection itself.
type Client interface {
	// Login exchanges credentials for a bearer token.
	Login(ctx context.Context, email, password string) (string, error)

	// Register creates a new account. The account starts unverified; the
	// server sends the verification link out-of-band.
	Register(ctx context.Context, req RegisterRequest) error

	// VerifyEmail redeems a verification-link token.
	VerifyEmail(ctx context.Context, token string) error

	// WhoAmI resolves the identity record behind the given bearer token.
	WhoAmI(ctx context.Context, token string) (*models.Identity, error)

	// Close releases underlying transport resources.
	Close() error
}
