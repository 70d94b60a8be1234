package cli

import (
	"bufio"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/codelog/internal/client/client"
	"github.com/dmitrijs2005/codelog/internal/client/config"
	"github.com/dmitrijs2005/codelog/internal/client/countdown"
	"github.com/dmitrijs2005/codelog/internal/client/models"
	"github.com/dmitrijs2005/codelog/internal/client/repositories/tokens"
	"github.com/dmitrijs2005/codelog/internal/client/services"
	"github.com/dmitrijs2005/codelog/internal/client/storage"
	"github.com/dmitrijs2005/codelog/internal/filex"
	"github.com/dmitrijs2005/codelog/internal/logging"
)

type sessionService interface {
	State() services.State
	Login(ctx context.Context, email, password string) error
	Register(ctx context.Context, username, email, password string) error
	Logout(ctx context.Context) error
	DeleteAccount(ctx context.Context) error
	Refresh(ctx context.Context) error
	WhoAmI(ctx context.Context) (string, error)
	Identity(ctx context.Context) string
}

type streakService interface {
	Status(ctx context.Context) (models.StreakInfo, time.Duration, error)
}

type feedService interface {
	Load(ctx context.Context, page int) error
	Page() int
	Posts() []models.Post
	Like(ctx context.Context, postID string) error
	Unlike(ctx context.Context, postID string) error
	Comment(ctx context.Context, postID, body string) error
	UpdateComment(ctx context.Context, postID, commentID, body string) error
	DeleteComment(ctx context.Context, postID, commentID string) error
	Comments(ctx context.Context, postID string) ([]models.Comment, error)
}

type journalService interface {
	Create(ctx context.Context, title, content string, public bool) (models.Post, error)
}

type profileService interface {
	Info(ctx context.Context) (models.ProfileInfo, error)
	Posts(ctx context.Context) ([]models.Post, error)
	UpdateInfo(ctx context.Context, email, username string) error
	UpdatePassword(ctx context.Context, oldPassword, newPassword, confirm string) error
}

// App is the interactive CodeLog client. It implements services.Navigator:
// redirects to the login screen tear down the current view and print the
// reason.
type App struct {
	cfg *config.Config
	log logging.Logger
	db  *sql.DB

	session sessionService
	streaks streakService
	feed    feedService
	journal journalService
	profile profileService

	reader *bufio.Reader
	out    io.Writer

	status        statusLine
	streak        statusLine
	countdownOpts []countdown.Option

	mu       sync.Mutex
	home     *viewScope
	username string
}

var _ services.Navigator = (*App)(nil)

// NewApp opens the local database and wires the backend client and the
// services.
func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	dbPath, err := filex.EnsureParentDir(cfg.DatabasePath)
	if err != nil {
		return nil, err
	}
	db, err := storage.Open(ctx, dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	store := tokens.NewStore(db)
	httpClient := client.NewHTTPClient(cfg.BaseURL(), store, client.WithTimeout(cfg.RequestTimeout))
	api := client.NewAPI(httpClient)

	a := &App{
		cfg:    cfg,
		log:    log,
		db:     db,
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}

	session, err := services.NewSessionManager(ctx, api, store, a, log, cfg.MinPasswordLength)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	a.session = session
	a.streaks = services.NewStreakService(api, session, log, cfg.AllowedPostingInterval)
	a.feed = services.NewFeedService(api, session, log)
	a.journal = services.NewJournalService(api, session, log)
	a.profile = services.NewProfileService(api, session, log, cfg.MinPasswordLength)

	log.Debug(ctx, "app ready", "base_url", cfg.BaseURL(), "state", session.State().String())
	return a, nil
}

// Run loads the user and shows the home view when a session was restored,
// then blocks in the REPL until the user exits or input ends.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	fmt.Fprintln(a.out, "Welcome to CodeLog (type 'help' for commands)")
	if a.isLoggedIn() {
		a.loadUser(ctx)
		a.report(a.Home(ctx, nil))
	}
	runREPL(ctx, a, a.getStatus, a.reader)
}

// Close stops the home view and closes the database.
func (a *App) Close() error {
	a.closeHome()
	if a.db != nil {
		return a.db.Close()
	}
	return nil
}

func (a *App) isLoggedIn() bool {
	return a.session.State() == services.Authenticated
}

// ToLogin implements services.Navigator.
func (a *App) ToLogin(message string) {
	a.closeHome()
	a.mu.Lock()
	a.username = ""
	a.mu.Unlock()
	a.status.Set("")
	a.streak.Set("")
	if message != "" {
		fmt.Fprintln(a.out, message)
	}
	fmt.Fprintln(a.out, "Use 'login' to sign in.")
}

// openHome tears down the previous home view and starts a new one.
func (a *App) openHome() *viewScope {
	scope := newViewScope()
	a.mu.Lock()
	prev := a.home
	a.home = scope
	a.mu.Unlock()

	if prev != nil {
		prev.close()
	}
	return scope
}

func (a *App) closeHome() {
	a.mu.Lock()
	prev := a.home
	a.home = nil
	a.mu.Unlock()

	if prev != nil {
		prev.close()
	}
}

func (a *App) currentUser() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.username
}

func (a *App) setUser(name string) {
	a.mu.Lock()
	a.username = name
	a.mu.Unlock()
}

func (a *App) getStatus() string {
	var parts []string
	if user := a.currentUser(); user != "" {
		parts = append(parts, "("+user+")")
	}
	if msg := a.streak.Get(); msg != "" {
		parts = append(parts, "{"+msg+"}")
	}
	if msg := a.status.Get(); msg != "" {
		parts = append(parts, "["+msg+"]")
	}
	return strings.Join(parts, " ")
}

// withTimeout bounds one backend round trip.
func (a *App) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	timeout := 10 * time.Second
	if a.cfg != nil && a.cfg.RequestTimeout > 0 {
		timeout = a.cfg.RequestTimeout
	}
	return context.WithTimeout(ctx, timeout)
}

// report prints the user-facing text of err, if any.
func (a *App) report(err error) {
	if err != nil && !errors.Is(err, services.ErrSessionEnded) {
		fmt.Fprintln(a.out, services.UserMessage(err))
	}
}
