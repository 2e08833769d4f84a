// Package verification implements the one-shot email-verification flow: it
// consumes the token carried by a verification link, redeems it against the
// identity service once, and records the outcome. The flow is independent of
// the session; verifying an email never signs the user in.
package verification

import (
	"context"
	"errors"

	"github.com/dmikhailov/authkeeper/internal/client/gateway"
	"github.com/dmikhailov/authkeeper/internal/logging"
)

// FailureFallback is shown when the server rejects the token without
// explaining itself.
const FailureFallback = "verification failed or link expired"

// ErrMissingToken reports a verification link without a token parameter.
var ErrMissingToken = errors.New("missing token")

// Outcome is the terminal state of one verification attempt.
type Outcome int

const (
	OutcomePending Outcome = iota
	OutcomeSucceeded
	OutcomeFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomePending:
		return "pending"
	case OutcomeSucceeded:
		return "succeeded"
	case OutcomeFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Flow is a single verification attempt. It is terminal and non-retryable:
// once Run has started the network call, re-running only reports the
// recorded outcome. A failed attempt requires a fresh link obtained
// out-of-band.
type Flow struct {
	gw    gateway.Client
	log   logging.Logger
	token string

	started bool
	outcome Outcome
	message string
}

// NewFlow builds a Flow for the given link token. The token may be empty,
// in which case Run fails immediately without a network call.
func NewFlow(gw gateway.Client, token string, log logging.Logger) *Flow {
	return &Flow{gw: gw, log: log, token: token}
}

// Run executes the verification attempt. The one-shot latch is set before
// the network call begins, so a duplicate Run triggered by a re-entrant
// caller can never issue a second call.
func (f *Flow) Run(ctx context.Context) Outcome {
	if f.started {
		f.log.Debug(ctx, "verification already started, ignoring", "outcome", f.outcome.String())
		return f.outcome
	}

	if f.token == "" {
		f.started = true
		f.outcome = OutcomeFailed
		f.message = ErrMissingToken.Error()
		return f.outcome
	}

	f.started = true

	if err := f.gw.VerifyEmail(ctx, f.token); err != nil {
		f.outcome = OutcomeFailed
		f.message = gateway.Detail(err)
		if f.message == "" {
			f.message = FailureFallback
		}
		f.log.Warn(ctx, "email verification failed", "reason", f.message)
		return f.outcome
	}

	f.outcome = OutcomeSucceeded
	f.message = "email verified successfully"
	f.log.Info(ctx, "email verified")
	return f.outcome
}

// Outcome reports the recorded outcome; OutcomePending until Run has run.
func (f *Flow) Outcome() Outcome {
	return f.outcome
}

// Message is the human-readable result for the user: a confirmation on
// success, the failure reason otherwise.
func (f *Flow) Message() string {
	return f.message
}
