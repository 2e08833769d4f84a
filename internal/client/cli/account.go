package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmikhailov/authkeeper/internal/client/session"
	"github.com/dmikhailov/authkeeper/internal/client/token"
)

// WhoAmI refreshes the identity record from the server and prints it. A
// failed refresh means the session is gone; the session manager has already
// signed the user out by the time the message is printed.
func (a *App) WhoAmI(ctx context.Context) error {
	if err := a.session.Refresh(ctx); err != nil {
		if errors.Is(err, session.ErrNoSession) {
			fmt.Println("Not signed in.")
			return nil
		}
		fmt.Println(errMsg(err, "session is no longer valid, please sign in again"))
		return err
	}

	identity := a.session.Identity()
	if identity == nil {
		fmt.Println("Not signed in.")
		return nil
	}

	fmt.Printf("ID:        %d\n", identity.ID)
	fmt.Printf("Email:     %s\n", identity.Email)
	if name := identity.DisplayName(); name != identity.Email {
		fmt.Printf("Name:      %s\n", name)
	}
	fmt.Printf("Active:    %t\n", identity.IsActive)
	fmt.Printf("Verified:  %t\n", identity.IsVerified)
	return nil
}

// ShowStatus prints the session status without a network round trip. When the
// stored token is JWT-shaped, its expiry is shown as a hint; the server
// stays the only authority on whether the session is actually valid.
func (a *App) ShowStatus(ctx context.Context) error {
	fmt.Printf("Session: %s\n", a.session.Status())

	if identity := a.session.Identity(); identity != nil {
		fmt.Printf("Email:   %s\n", identity.Email)
	}

	stored, err := a.store.Load(ctx)
	if err != nil || stored == "" {
		return nil
	}

	info, err := token.Inspect(stored)
	if err != nil {
		return nil // opaque token, nothing to show
	}
	if !info.ExpiresAt.IsZero() {
		fmt.Printf("Token expires: %s", info.ExpiresAt.Local().Format(time.RFC1123))
		if info.Expired(time.Now()) {
			fmt.Print(" (expired)")
		}
		fmt.Println()
	}
	return nil
}
