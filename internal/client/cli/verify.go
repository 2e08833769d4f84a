package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/dmikhailov/authkeeper/internal/client/verification"
)

// Verify redeems an email-verification link. The token comes either from
// the command argument or from an interactive prompt, and may be a bare
// token or the full link. Each invocation is a fresh one-shot flow; a failed
// attempt requires a new link sent out-of-band.
func (a *App) Verify(ctx context.Context, args []string) error {
	var raw string
	if len(args) > 0 {
		raw = args[0]
	} else {
		var err error
		raw, err = getSimpleText(a.reader, "Paste the verification link or token", os.Stdout)
		if err != nil {
			return err
		}
	}

	flow := verification.NewFlow(a.gw, verification.TokenFromLink(raw), a.log)

	switch flow.Run(ctx) {
	case verification.OutcomeSucceeded:
		fmt.Println("Your email has been verified. You can sign in now.")
	default:
		fmt.Printf("Verification failed: %s\n", flow.Message())
		fmt.Println("Request a new link and try again, or sign in if you are already verified.")
	}
	return nil
}
