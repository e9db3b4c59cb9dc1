// Package server initializes and runs the marketplace application server:
// it wires the volatile store, the services, and the HTTP endpoint, and
// handles graceful shutdown. All state is scoped to the process lifetime:
// constructed empty here, discarded at shutdown.
package server

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/gophmarket/internal/logging"
	"github.com/dmitrijs2005/gophmarket/internal/randx"
	"github.com/dmitrijs2005/gophmarket/internal/server/config"
	"github.com/dmitrijs2005/gophmarket/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/gophmarket/internal/server/rest"
	"github.com/dmitrijs2005/gophmarket/internal/server/services"
)

type App struct {
	config             *config.Config
	logger             logging.Logger
	userService        *services.UserService
	postService        *services.PostService
	transactionService *services.TransactionService
}

func NewApp(c *config.Config) (*App, error) {

	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	m := repomanager.NewInMemoryRepositoryManager()

	us := services.NewUserService(m.Users(), m.RefreshTokens(), c)
	ps := services.NewPostService(m.Posts())
	ts := services.NewTransactionService(m.Transactions(), randx.MakeRandHexString, c)

	return &App{
		config:             c,
		logger:             logger,
		userService:        us,
		postService:        ps,
		transactionService: ts,
	}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startRESTServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := rest.NewRestServer(
		app.config.EndpointAddr,
		app.logger,
		app.userService,
		app.postService,
		app.transactionService,
		app.config.SecretKey,
		app.config.CORSAllowedOrigins,
	)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startRESTServer(ctx, cancelFunc)
	}()

	wg.Wait()
}
