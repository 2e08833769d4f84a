package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/dmikhailov/authkeeper/internal/client/gateway"
	"github.com/dmikhailov/authkeeper/internal/client/validate"
	"github.com/dmikhailov/authkeeper/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for the sign-up payload and creates the account via the
// gateway. No session is created; the user must verify their email and then
// sign in.
func (a *App) Register(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	firstName, err := getSimpleText(a.reader, "First name (optional)", os.Stdout)
	if err != nil {
		return err
	}
	lastName, err := getSimpleText(a.reader, "Last name (optional)", os.Stdout)
	if err != nil {
		return err
	}

	payload := validate.Registration{
		Email:     email,
		Password:  string(password),
		FirstName: firstName,
		LastName:  lastName,
	}
	if err := payload.Validate(); err != nil {
		fmt.Println(err)
		return err
	}

	req := gateway.RegisterRequest{
		Email:     email,
		Password:  string(password),
		FirstName: firstName,
		LastName:  lastName,
	}
	if err := a.gw.Register(ctx, req); err != nil {
		fmt.Println(errMsg(err, "registration failed, try again later"))
		return err
	}

	fmt.Println("Account created. Check your inbox for the verification link, then sign in.")
	return nil
}

// Login prompts for credentials, exchanges them for a token, and hands the
// token to the session manager. The session manager resolves the identity
// before the REPL moves to the protected area; a failed identity refresh
// leaves the user signed out with the token discarded.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	creds := validate.Credentials{Email: email, Password: string(password)}
	if err := creds.Validate(); err != nil {
		fmt.Println(err)
		return err
	}

	token, err := a.gw.Login(ctx, email, string(password))
	if err != nil {
		fmt.Println(errMsg(err, "login failed, try again later"))
		return err
	}

	if err := a.session.Login(ctx, token); err != nil {
		fmt.Println(errMsg(err, "login failed, try again later"))
		return err
	}

	if identity := a.session.Identity(); identity != nil {
		fmt.Printf("Signed in as %s\n", identity.Email)
	}
	return nil
}

// Logout ends the session. The session manager clears the credential and
// moves the REPL back to the sign-in area.
func (a *App) Logout(ctx context.Context) error {
	a.session.Logout(ctx)
	fmt.Println("Signed out.")
	return nil
}
