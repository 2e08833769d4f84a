// Package gateway contains the client-side contract to the remote identity
// service.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface) covering
//     the four identity operations: Login, Register, VerifyEmail, WhoAmI.
//  2. A concrete HTTP/JSON implementation (see HTTPClient) that talks to the
//     identity service, attaches the bearer token where required, tags every
//     request with an X-Request-Id, and maps transport and HTTP failures to
//     sentinel errors.
//
// # Error Handling
//
// Common conditions are exposed as sentinel errors that callers can match
// with errors.Is: ErrUnavailable, ErrUnauthorized. Responses rejected by the
// server with a {"detail": "..."} body are returned as *APIError so callers
// can surface the server's own message to the user.
package gateway
