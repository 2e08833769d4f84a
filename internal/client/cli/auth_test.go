package cli

import (
	"bufio"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/dmikhailov/authkeeper/internal/client/gateway"
	"github.com/dmikhailov/authkeeper/internal/client/models"
	"github.com/dmikhailov/authkeeper/internal/client/session"
)

func stubInputs(t *testing.T, lines []string, password []byte) func() {
	t.Helper()
	origST, origGP := getSimpleText, getPassword
	i := 0
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		if i >= len(lines) {
			return "", nil
		}
		line := lines[i]
		i++
		return line, nil
	}
	getPassword = func(_ io.Writer) ([]byte, error) { return password, nil }
	return func() {
		getSimpleText = origST
		getPassword = origGP
	}
}

// fakeGateway records calls made by the CLI commands.
type fakeGateway struct {
	LoginRet string
	LoginErr error

	RegisterErr error

	VerifyErr   error
	VerifyCalls int

	LastLoginEmail    string
	LastLoginPassword string
	LastRegister      gateway.RegisterRequest
	LastVerifyToken   string
}

func (f *fakeGateway) Login(_ context.Context, email, password string) (string, error) {
	f.LastLoginEmail, f.LastLoginPassword = email, password
	return f.LoginRet, f.LoginErr
}

func (f *fakeGateway) Register(_ context.Context, req gateway.RegisterRequest) error {
	f.LastRegister = req
	return f.RegisterErr
}

func (f *fakeGateway) VerifyEmail(_ context.Context, token string) error {
	f.VerifyCalls++
	f.LastVerifyToken = token
	return f.VerifyErr
}
func (f *fakeGateway) WhoAmI(_ context.Context, _ string) (*models.Identity, error) {
	return nil, nil
}
func (f *fakeGateway) Close() error { return nil }

// fakeSession is a minimal sessionManager.
type fakeSession struct {
	LoginErr   error
	RefreshErr error

	status   session.Status
	identity *models.Identity

	LastLoginToken string
	LogoutCalls    int
}

func (f *fakeSession) Initialize(_ context.Context) session.Status { return f.status }
func (f *fakeSession) Login(_ context.Context, token string) error {
	f.LastLoginToken = token
	if f.LoginErr != nil {
		return f.LoginErr
	}
	f.status = session.StatusAuthenticated
	return nil
}
func (f *fakeSession) Refresh(_ context.Context) error { return f.RefreshErr }
func (f *fakeSession) Logout(_ context.Context) {
	f.LogoutCalls++
	f.status = session.StatusUnauthenticated
	f.identity = nil
}
func (f *fakeSession) Status() session.Status     { return f.status }
func (f *fakeSession) Identity() *models.Identity { return f.identity }

func TestLogin_PassesTokenToSession(t *testing.T) {
	restore := stubInputs(t, []string{"jane@example.com"}, []byte("validPass1"))
	defer restore()

	gw := &fakeGateway{LoginRet: "tok_abc"}
	fs := &fakeSession{identity: &models.Identity{Email: "jane@example.com"}}
	a := &App{gw: gw, session: fs}

	if err := a.Login(context.Background()); err != nil {
		t.Fatalf("Login err: %v", err)
	}
	if gw.LastLoginEmail != "jane@example.com" {
		t.Fatalf("login email mismatch: %q", gw.LastLoginEmail)
	}
	if fs.LastLoginToken != "tok_abc" {
		t.Fatalf("token not passed to session: %q", fs.LastLoginToken)
	}
}

func TestLogin_GatewayRejectionDoesNotTouchSession(t *testing.T) {
	restore := stubInputs(t, []string{"jane@example.com"}, []byte("wrongpass"))
	defer restore()

	gw := &fakeGateway{LoginErr: &gateway.APIError{StatusCode: 401, Detail: "Incorrect email or password"}}
	fs := &fakeSession{}
	a := &App{gw: gw, session: fs}

	if err := a.Login(context.Background()); err == nil {
		t.Fatalf("want error from rejected login")
	}
	if fs.LastLoginToken != "" {
		t.Fatalf("session must not receive a token on gateway rejection")
	}
}

func TestLogin_InvalidPayloadSkipsNetwork(t *testing.T) {
	restore := stubInputs(t, []string{"not-an-email"}, []byte("pw"))
	defer restore()

	gw := &fakeGateway{}
	a := &App{gw: gw, session: &fakeSession{}}

	if err := a.Login(context.Background()); err == nil {
		t.Fatalf("want validation error")
	}
	if gw.LastLoginEmail != "" {
		t.Fatalf("gateway must not be called with an invalid payload")
	}
}

func TestRegister_Success(t *testing.T) {
	restore := stubInputs(t, []string{"jane@example.com", "Jane", "Doe"}, []byte("validPass1"))
	defer restore()

	gw := &fakeGateway{}
	a := &App{gw: gw, session: &fakeSession{}}

	if err := a.Register(context.Background()); err != nil {
		t.Fatalf("Register err: %v", err)
	}
	if gw.LastRegister.Email != "jane@example.com" {
		t.Fatalf("register email mismatch: %q", gw.LastRegister.Email)
	}
	if gw.LastRegister.FirstName != "Jane" || gw.LastRegister.LastName != "Doe" {
		t.Fatalf("register names mismatch: %+v", gw.LastRegister)
	}
}

func TestRegister_ServerRejectionPropagates(t *testing.T) {
	restore := stubInputs(t, []string{"jane@example.com", "", ""}, []byte("validPass1"))
	defer restore()

	gw := &fakeGateway{RegisterErr: errors.New("boom")}
	a := &App{gw: gw, session: &fakeSession{}}

	if err := a.Register(context.Background()); err == nil {
		t.Fatalf("want error from Register")
	}
}

func TestLogout_DelegatesToSession(t *testing.T) {
	fs := &fakeSession{status: session.StatusAuthenticated}
	a := &App{session: fs}

	if err := a.Logout(context.Background()); err != nil {
		t.Fatalf("Logout err: %v", err)
	}
	if fs.LogoutCalls != 1 {
		t.Fatalf("session Logout not called")
	}
}

func TestErrMsg_PrefersServerDetail(t *testing.T) {
	err := &gateway.APIError{StatusCode: 401, Detail: "Incorrect email or password"}
	if got := errMsg(err, "fallback"); got != "Incorrect email or password" {
		t.Fatalf("errMsg = %q", got)
	}
	if got := errMsg(errors.New("x"), "fallback"); got != "fallback" {
		t.Fatalf("errMsg fallback = %q", got)
	}
}

func TestNavigator_SwitchesAreas(t *testing.T) {
	a := &App{area: AreaSignIn}
	a.GoToProtectedArea()
	if a.area != AreaProtected {
		t.Fatalf("area = %q", a.area)
	}
	a.GoToSignIn()
	if a.area != AreaSignIn {
		t.Fatalf("area = %q", a.area)
	}
}
