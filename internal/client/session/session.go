package session

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/dmikhailov/authkeeper/internal/client/credentials"
	"github.com/dmikhailov/authkeeper/internal/client/gateway"
	"github.com/dmikhailov/authkeeper/internal/client/models"
	"github.com/dmikhailov/authkeeper/internal/logging"
)

// ErrNoSession reports that an operation needing a stored credential found
// none. Callers treat it as "signed out", not as a failure to display.
var ErrNoSession = errors.New("no active session")

// Navigator is the navigation collaborator: the Manager tells it when to
// move between the sign-in and protected areas, and never renders anything
// itself.
type Navigator interface {
	GoToProtectedArea()
	GoToSignIn()
}

// Manager is the session state machine. It is a process-wide singleton;
// a mutex serializes its operations so state transitions stay atomic.
type Manager struct {
	mu       sync.Mutex
	status   Status
	identity *models.Identity

	store credentials.Store
	gw    gateway.Client
	nav   Navigator
	log   logging.Logger
}

// NewManager builds a Manager in StatusUninitialized.
func NewManager(store credentials.Store, gw gateway.Client, nav Navigator, log logging.Logger) *Manager {
	return &Manager{
		status: StatusUninitialized,
		store:  store,
		gw:     gw,
		nav:    nav,
		log:    log,
	}
}

// Initialize restores a persisted session, resolving to either
// StatusAuthenticated or StatusUnauthenticated, and returns the resolved
// status. It runs exactly once per process: any later call is a no-op that
// reports the current status. Restoration failures are never surfaced to
// the user; an invalid stored credential is cleared and the session resolves
// to signed-out.
func (m *Manager) Initialize(ctx context.Context) Status {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.status != StatusUninitialized {
		m.log.Debug(ctx, "initialize called again, ignoring", "status", m.status.String())
		return m.status
	}

	m.status = StatusRestoring

	token, err := m.store.Load(ctx)
	if err != nil {
		m.log.Warn(ctx, "failed to load stored credential", "error", err)
		m.logoutLocked(ctx)
		return m.status
	}
	if token == "" {
		m.logoutLocked(ctx)
		return m.status
	}

	if err := m.refreshLocked(ctx); err != nil {
		m.log.Warn(ctx, "stored session no longer valid", "error", err)
		return m.status
	}

	m.log.Info(ctx, "session restored", "email", m.identity.Email)
	if m.nav != nil {
		m.nav.GoToProtectedArea()
	}
	return m.status
}

// Login stores the freshly issued token and resolves the identity behind it.
// The identity refresh completes before the navigation signal fires, so the
// protected area never observes an empty identity. If the refresh fails the
// token is cleared again and the session stays signed out; the returned
// error carries the message to show.
func (m *Manager) Login(ctx context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.store.Save(ctx, token); err != nil {
		return fmt.Errorf("failed to save credential: %w", err)
	}

	if err := m.refreshLocked(ctx); err != nil {
		return err
	}

	m.log.Info(ctx, "login successful", "email", m.identity.Email)
	if m.nav != nil {
		m.nav.GoToProtectedArea()
	}
	return nil
}

// Refresh replaces the identity record wholesale from the who-am-i endpoint.
// Any failure (network, rejected token, malformed payload) means the session
// is no longer valid: the credential is cleared and the session is signed
// out. There is no automatic retry.
func (m *Manager) Refresh(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.refreshLocked(ctx)
}

// Logout clears the stored credential, drops the identity, and signals the
// navigator to move to the sign-in area. Calling it while already signed out
// repeats the same observable signal and nothing else.
func (m *Manager) Logout(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.logoutLocked(ctx)
}

// Status reports the current lifecycle state.
func (m *Manager) Status() Status {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.status
}

// Identity returns a copy of the authenticated identity, or nil when the
// session is not authenticated.
func (m *Manager) Identity() *models.Identity {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.identity == nil {
		return nil
	}
	identity := *m.identity
	return &identity
}

// refreshLocked implements Refresh with m.mu held.
func (m *Manager) refreshLocked(ctx context.Context) error {
	token, err := m.store.Load(ctx)
	if err != nil {
		m.logoutLocked(ctx)
		return fmt.Errorf("failed to load credential: %w", err)
	}
	if token == "" {
		m.logoutLocked(ctx)
		return ErrNoSession
	}

	identity, err := m.gw.WhoAmI(ctx, token)
	if err != nil {
		m.logoutLocked(ctx)
		return fmt.Errorf("failed to refresh identity: %w", err)
	}

	m.identity = identity
	m.status = StatusAuthenticated
	return nil
}

// logoutLocked implements Logout with m.mu held. A failing Clear is logged
// and the in-memory transition still happens, keeping the worst case at
// "signed out".
func (m *Manager) logoutLocked(ctx context.Context) {
	if err := m.store.Clear(ctx); err != nil {
		m.log.Warn(ctx, "failed to clear stored credential", "error", err)
	}
	m.identity = nil
	m.status = StatusUnauthenticated
	if m.nav != nil {
		m.nav.GoToSignIn()
	}
}
