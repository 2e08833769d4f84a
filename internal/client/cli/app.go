package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"os"

	"github.com/dmikhailov/authkeeper/internal/client/config"
	"github.com/dmikhailov/authkeeper/internal/client/credentials"
	"github.com/dmikhailov/authkeeper/internal/client/gateway"
	"github.com/dmikhailov/authkeeper/internal/client/models"
	"github.com/dmikhailov/authkeeper/internal/client/session"
	"github.com/dmikhailov/authkeeper/internal/logging"

	_ "modernc.org/sqlite"
)

// Area is the active REPL command area. The session manager switches areas
// through the Navigator contract; nothing else moves the user around.
type Area string

const (
	AreaSignIn    Area = "sign-in"
	AreaProtected Area = "protected"
)

// sessionManager is the surface of session.Manager the CLI depends on.
// Tests substitute a lightweight fake.
type sessionManager interface {
	Initialize(ctx context.Context) session.Status
	Login(ctx context.Context, token string) error
	Refresh(ctx context.Context) error
	Logout(ctx context.Context)
	Status() session.Status
	Identity() *models.Identity
}

type App struct {
	config  *config.Config
	gw      gateway.Client
	session sessionManager
	store   credentials.Store
	log     logging.Logger
	reader  *bufio.Reader
	db      *sql.DB
	area    Area
}

// NewApp wires the full client: local database, credential store, identity
// gateway, and session manager. The returned App is the session's Navigator.
func NewApp(c *config.Config, log logging.Logger) (*App, error) {
	ctx := context.Background()

	db, err := credentials.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("error initializing database: %w", err)
	}

	gw := gateway.NewHTTPClient(c.ServerBaseURL, c.RequestTimeout, log)
	store := credentials.NewSQLiteStore(db)

	app := &App{
		config: c,
		gw:     gw,
		store:  store,
		log:    log,
		reader: bufio.NewReader(os.Stdin),
		db:     db,
		area:   AreaSignIn,
	}
	app.session = session.NewManager(store, gw, app, log)

	return app, nil
}

// GoToProtectedArea implements session.Navigator.
func (a *App) GoToProtectedArea() { a.area = AreaProtected }

// GoToSignIn implements session.Navigator.
func (a *App) GoToSignIn() { a.area = AreaSignIn }

// Run restores the session and starts the REPL, blocking until the user
// exits. The restoration completes before the first prompt, so the REPL
// never observes a restoring session.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	status := a.session.Initialize(ctx)
	if status == session.StatusAuthenticated {
		if identity := a.session.Identity(); identity != nil {
			fmt.Printf("Welcome back, %s!\n", identity.DisplayName())
		}
	}

	fmt.Println("authkeeper CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}

// Close releases the gateway and the local database.
func (a *App) Close() {
	if err := a.gw.Close(); err != nil {
		a.log.Warn(context.Background(), "failed to close gateway", "error", err)
	}
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			a.log.Warn(context.Background(), "failed to close database", "error", err)
		}
	}
}

// isSignedIn reports which command area is active. The area only moves
// through the Navigator signals, so it always reflects the session's
// resolved state.
func (a *App) isSignedIn() bool {
	return a.area == AreaProtected
}

// getStatus renders the prompt suffix: the signed-in email in the protected
// area, the area name otherwise.
func (a *App) getStatus() string {
	if identity := a.session.Identity(); identity != nil {
		return fmt.Sprintf("(%s)", identity.Email)
	}
	return fmt.Sprintf("(%s)", a.area)
}

// errMsg picks the message to show the user: the server's own explanation
// when one exists, the fallback otherwise.
func errMsg(err error, fallback string) string {
	if detail := gateway.Detail(err); detail != "" {
		return detail
	}
	return fallback
}
