package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/codelog/internal/client/client"
	"github.com/dmitrijs2005/codelog/internal/client/models"
	"github.com/dmitrijs2005/codelog/internal/client/repositories/tokens"
	"github.com/dmitrijs2005/codelog/internal/logging"
	"github.com/golang-jwt/jwt/v5"
)

// ErrNotLoggedIn is returned by calls that need a stored token when there
// is none.
var ErrNotLoggedIn = errors.New("not logged in")

// ErrSessionEnded wraps an auth error after Guard purged the session and
// sent the user to the login screen with AuthLostMessage.
var ErrSessionEnded = errors.New("session ended")

type State int

const (
	Anonymous State = iota
	Authenticated
)

func (s State) String() string {
	if s == Authenticated {
		return "authenticated"
	}
	return "anonymous"
}

// Navigator moves the UI to the login screen with a message for the user.
type Navigator interface {
	ToLogin(message string)
}

// NavigatorFunc adapts a plain function to Navigator.
type NavigatorFunc func(message string)

func (f NavigatorFunc) ToLogin(message string) { f(message) }

// AuthGuard inspects the error of a protected call.
type AuthGuard interface {
	Guard(ctx context.Context, err error) error
}

// TokenStore is what the session manager needs from the Token Store.
type TokenStore interface {
	Get(ctx context.Context, slot tokens.Slot) (string, error)
	Set(ctx context.Context, slot tokens.Slot, value string) error
	Load(ctx context.Context) (models.Session, error)
	Save(ctx context.Context, s models.Session) error
	ClearAll(ctx context.Context) error
}

// SessionManager owns the Anonymous/Authenticated lifecycle. It is the only
// writer of the Token Store.
type SessionManager struct {
	client      client.Client
	store       TokenStore
	nav         Navigator
	log         logging.Logger
	minPassword int

	mu    sync.Mutex
	state State
}

var _ AuthGuard = (*SessionManager)(nil)

// NewSessionManager reads the Token Store once: the session starts
// Authenticated iff an access token is stored.
func NewSessionManager(ctx context.Context, c client.Client, store TokenStore, nav Navigator,
	log logging.Logger, minPassword int) (*SessionManager, error) {
	if minPassword <= 0 {
		minPassword = DefaultMinPasswordLength
	}
	m := &SessionManager{
		client:      c,
		store:       store,
		nav:         nav,
		log:         log.With("component", "session"),
		minPassword: minPassword,
	}

	sess, err := store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	if sess.Authenticated() {
		m.state = Authenticated
	}
	return m, nil
}

func (m *SessionManager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

func (m *SessionManager) setState(s State) {
	m.mu.Lock()
	m.state = s
	m.mu.Unlock()
}

// Login validates the input, authenticates and stores both tokens. On any
// failure the stored tokens are left as they were.
func (m *SessionManager) Login(ctx context.Context, email, password string) error {
	if err := validateLogin(email, password); err != nil {
		return err
	}

	sess, err := m.client.Login(ctx, email, password)
	if err != nil {
		m.log.Warn(ctx, "login failed", "error", err)
		if errors.Is(err, client.ErrUnauthorized) {
			return fmt.Errorf("%w: %w", ErrInvalidCredentials, err)
		}
		return err
	}

	if err := m.store.Save(ctx, sess); err != nil {
		return fmt.Errorf("store session: %w", err)
	}
	m.setState(Authenticated)
	m.log.Info(ctx, "logged in")
	return nil
}

// Register creates an account and sends the user to the login screen. It
// does not log in.
func (m *SessionManager) Register(ctx context.Context, username, email, password string) error {
	if err := validateRegistration(username, email, password, m.minPassword); err != nil {
		return err
	}
	if err := m.client.Register(ctx, username, email, password); err != nil {
		m.log.Warn(ctx, "register failed", "error", err)
		return err
	}
	m.nav.ToLogin(fmt.Sprintf("Great to meet you %s! You can Log In now!", username))
	return nil
}

// Logout tells the backend (best effort) and clears both tokens.
func (m *SessionManager) Logout(ctx context.Context) error {
	if err := m.client.Logout(ctx); err != nil {
		m.log.Warn(ctx, "logout request failed", "error", err)
	}
	if err := m.purge(ctx); err != nil {
		return err
	}
	m.nav.ToLogin("Successfully Logged Out")
	return nil
}

// DeleteAccount removes the account on the backend, then clears the session.
func (m *SessionManager) DeleteAccount(ctx context.Context) error {
	if err := m.client.DeleteUser(ctx); err != nil {
		m.log.Warn(ctx, "delete account failed", "error", err)
		return m.Guard(ctx, err)
	}
	if err := m.purge(ctx); err != nil {
		return err
	}
	m.nav.ToLogin("Your account has been deleted")
	return nil
}

// Refresh trades the stored refresh token for a new access token.
func (m *SessionManager) Refresh(ctx context.Context) error {
	refresh, err := m.store.Get(ctx, tokens.SlotRefresh)
	if err != nil {
		return err
	}
	if refresh == "" {
		return ErrNotLoggedIn
	}

	access, err := m.client.Refresh(ctx, refresh)
	if err != nil {
		m.log.Warn(ctx, "token refresh failed", "error", err)
		return m.Guard(ctx, err)
	}
	if err := m.store.Set(ctx, tokens.SlotAccess, access); err != nil {
		return fmt.Errorf("store access token: %w", err)
	}
	m.setState(Authenticated)
	return nil
}

// WhoAmI asks the backend for the current username.
func (m *SessionManager) WhoAmI(ctx context.Context) (string, error) {
	name, err := m.client.WhoAmI(ctx)
	if err != nil {
		return "", m.Guard(ctx, err)
	}
	return name, nil
}

// Identity returns the "sub" claim of the stored access token without
// verifying it. It is for display only and is "" when unavailable.
func (m *SessionManager) Identity(ctx context.Context) string {
	access, err := m.store.Get(ctx, tokens.SlotAccess)
	if err != nil || access == "" {
		return ""
	}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(access, claims); err != nil {
		return ""
	}
	sub, err := claims.GetSubject()
	if err != nil {
		return ""
	}
	return sub
}

// Guard returns err unchanged. When err is an auth error it first clears
// both tokens and redirects to the login screen.
func (m *SessionManager) Guard(ctx context.Context, err error) error {
	if err == nil || !errors.Is(err, client.ErrUnauthorized) || errors.Is(err, ErrSessionEnded) {
		return err
	}
	if purgeErr := m.purge(ctx); purgeErr != nil {
		m.log.Error(ctx, "clear tokens after auth error", "error", purgeErr)
	}
	m.nav.ToLogin(AuthLostMessage)
	return fmt.Errorf("%w: %w", ErrSessionEnded, err)
}

func (m *SessionManager) purge(ctx context.Context) error {
	m.setState(Anonymous)
	if err := m.store.ClearAll(ctx); err != nil {
		return fmt.Errorf("clear tokens: %w", err)
	}
	return nil
}
