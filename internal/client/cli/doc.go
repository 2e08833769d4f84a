// Package cli provides the interactive authkeeper command-line client.
//
// It wires configuration, the local credential store, the identity gateway,
// and the session manager into an interactive REPL with two areas: the
// sign-in area (register, login, verify) and the protected area (whoami,
// status, logout). The App is the session's navigation collaborator: a
// successful login moves the REPL to the protected area, a logout moves it
// back to sign-in.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// Session restoration completes before the first prompt is shown, so no
// protected command can run while the session is still restoring.
package cli
