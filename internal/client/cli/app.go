// Package cli is the view layer of the forum client: a finite set of views
// driven by a read-eval-print loop, with gated transitions and transient
// toast notifications.
package cli

import (
	"bufio"
	"context"
	"database/sql"
	"errors"
	"io"
	"log/slog"
	"os"

	"github.com/dmitrijs2005/forumcli/internal/client/api"
	"github.com/dmitrijs2005/forumcli/internal/client/config"
	"github.com/dmitrijs2005/forumcli/internal/client/repositories/localstate"
	"github.com/dmitrijs2005/forumcli/internal/client/services"
	"github.com/dmitrijs2005/forumcli/internal/client/session"
	"github.com/dmitrijs2005/forumcli/internal/client/topics"
	"github.com/dmitrijs2005/forumcli/internal/common"
	"github.com/dmitrijs2005/forumcli/internal/logging"
)

type App struct {
	cfg     *config.Config
	session *session.Store
	auth    services.AuthService
	forum   services.TopicService
	log     logging.Logger
	db      *sql.DB

	view         View
	selectedID   int64
	hasSelection bool
	searchTerm   string

	// settings form, seeded on entering the settings view
	settingsName     string
	settingsPassword string
	settingsConfirm  string

	// create-topic form, reset on entering the view
	createTitle       string
	createDescription string

	banner *toastBanner
	reader *bufio.Reader
	out    io.Writer
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	db, err := localstate.Open(ctx, cfg.DatabasePath)
	if err != nil {
		logger.Error(ctx, "opening local state database failed", "path", cfg.DatabasePath, "error", err)
		return nil, err
	}

	sess := session.NewStore(ctx, localstate.NewSQLiteRepository(db), logger)

	gateway, err := api.NewGateway(cfg.ServerBaseURL, cfg.RequestTimeout, sess, logger)
	if err != nil {
		return nil, err
	}

	cache := topics.NewCache()

	return &App{
		cfg:     cfg,
		session: sess,
		auth:    services.NewAuthService(gateway, sess, logger),
		forum:   services.NewTopicService(gateway, cache, sess, logger),
		log:     logger,
		db:      db,
		view:    ViewHome,
		banner:  newToastBanner(cfg.ToastDuration),
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
	}, nil
}

func (a *App) Run(ctx context.Context) {
	defer a.db.Close()

	if err := a.forum.Refresh(ctx); err != nil {
		a.reportError(err)
	}
	a.render()

	runREPL(ctx, a, a.status, a.reader, a.out)
}

func (a *App) isLoggedIn() bool {
	return a.session.LoggedIn()
}

// status builds the prompt fragment: current view plus the user name when
// logged in.
func (a *App) status() string {
	if user := a.session.CurrentUser(); user != nil {
		return string(a.view) + " | " + user.Name
	}
	return string(a.view)
}

// reportError surfaces an operation error as a toast. In-flight duplicates
// are silently dropped; an authorization failure that invalidated the
// session additionally forces the login view.
func (a *App) reportError(err error) {
	if err == nil || errors.Is(err, common.ErrInFlight) {
		return
	}

	a.showToast(toastError(err.Error()))

	if errors.Is(err, common.ErrUnauthorized) && !a.isLoggedIn() {
		a.view = ViewLogin
	}
}
