package cli

import (
	"bufio"
	"context"
	"database/sql"
	"errors"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/dmitrijs2005/postkeeper/internal/client/client"
	"github.com/dmitrijs2005/postkeeper/internal/client/config"
	"github.com/dmitrijs2005/postkeeper/internal/client/models"
	"github.com/dmitrijs2005/postkeeper/internal/client/services"
	"github.com/dmitrijs2005/postkeeper/internal/logging"
)

// lister is the part of services.ListController the CLI drives.
type lister interface {
	SetQuery(text string)
	LoadMore() bool
	Refresh() bool
	Delete(id string) bool
	Reset() bool
	Snapshot() models.State
	Changes() <-chan models.State
	Close()
}

type App struct {
	config         *config.Config
	log            logging.Logger
	db             *sql.DB
	api            client.Client
	authService    services.AuthService
	profileService services.ProfileService
	list           lister
	gatherer       prometheus.Gatherer
	metricsSrv     *http.Server
	reader         *bufio.Reader
	out            io.Writer
	waitTimeout    time.Duration
}

// NewApp opens the local store and builds the remote client, services and
// list controller from c.
func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	db, err := client.InitDatabase(ctx, c.DatabaseDSN)
	if err != nil {
		logger.Error(ctx, "error initializing database", "dsn", c.DatabaseDSN, "error", err)
		return nil, err
	}

	as := services.NewAuthService(db, c.ServerBaseURL)

	httpClient, err := client.NewHTTPClient(c.ServerBaseURL, as, client.WithHTTPLogger(logger.With("module", "http")))
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	reg := prometheus.NewRegistry()
	api := client.Instrument(httpClient, client.NewMetrics(reg))

	list := services.NewListController(api, nil,
		services.WithLogger(logger),
		services.WithDebounce(c.SearchDebounce),
		services.WithRequestTimeout(c.RequestTimeout),
	)

	return &App{
		config:         c,
		log:            logger,
		db:             db,
		api:            api,
		authService:    as,
		profileService: services.NewProfileService(api, c.RequestTimeout),
		list:           list,
		gatherer:       reg,
		metricsSrv:     newMetricsServer(c.MetricsAddr, reg),
		reader:         bufio.NewReader(os.Stdin),
		out:            os.Stdout,
		waitTimeout:    waitTimeoutFor(c),
	}, nil
}

// Run starts the REPL and blocks until the user exits. Resources are
// released on return.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	a.startMetricsServer(ctx)

	printlnFn("Welcome to postkeeper CLI (type 'help' for commands)")
	if a.isLoggedIn(ctx) {
		if err := a.List(ctx); err != nil {
			printlnFn("Error:", describeError(err))
		}
	}

	runREPL(ctx, a, a.status, a.reader)
}

// Close stops the controller and releases the client, metrics server and DB.
func (a *App) Close() {
	if a.list != nil {
		a.list.Close()
	}
	if a.api != nil {
		_ = a.api.Close()
	}
	a.stopMetricsServer()
	if a.db != nil {
		_ = a.db.Close()
	}
}

func (a *App) isLoggedIn(ctx context.Context) bool {
	ok, err := a.authService.LoggedIn(ctx)
	if err != nil {
		a.log.Warn(ctx, "reading credential failed", "error", err)
		return false
	}
	return ok
}

func (a *App) status() string {
	s := a.list.Snapshot()
	switch {
	case s.Query != "":
		return " search:" + s.Query
	case s.Loaded:
		return " feed"
	default:
		return ""
	}
}

// await blocks until done accepts the controller state, the wait times out
// or ctx is cancelled, and returns the last state seen.
func (a *App) await(ctx context.Context, done func(models.State) bool) models.State {
	s := a.list.Snapshot()
	if done(s) {
		return s
	}

	timer := time.NewTimer(a.waitTimeout)
	defer timer.Stop()

	for {
		select {
		case next, ok := <-a.list.Changes():
			if !ok {
				return a.list.Snapshot()
			}
			if done(next) {
				return next
			}
		case <-timer.C:
			return a.list.Snapshot()
		case <-ctx.Done():
			return a.list.Snapshot()
		}
	}
}

// waitTimeoutFor bounds how long a command waits for the controller. It
// uses the same defaults the controller falls back to.
func waitTimeoutFor(c *config.Config) time.Duration {
	debounce, timeout := c.SearchDebounce, c.RequestTimeout
	if debounce <= 0 {
		debounce = services.DefaultDebounce
	}
	if timeout <= 0 {
		timeout = services.DefaultRequestTimeout
	}
	return debounce + timeout + time.Second
}

var errTimeout = errors.New("still waiting for the server, check 'list' later")
