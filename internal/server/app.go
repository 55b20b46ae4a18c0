// Package server initializes and runs the assignment server.
// It connects the document store and object storage, wires the services into
// the HTTP router and handles graceful shutdown.
package server

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/dmitrijs2005/assignhub/internal/logging"
	"github.com/dmitrijs2005/assignhub/internal/server/auth"
	"github.com/dmitrijs2005/assignhub/internal/server/config"
	"github.com/dmitrijs2005/assignhub/internal/server/httpserver"
	"github.com/dmitrijs2005/assignhub/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/assignhub/internal/server/services"
	"github.com/dmitrijs2005/assignhub/internal/server/storage"
)

const closeTimeout = 5 * time.Second

// Seams for tests.
var (
	newRepositoryManager = func(ctx context.Context, uri, dbName string) (repomanager.RepositoryManager, error) {
		return repomanager.NewMongoRepositoryManager(ctx, uri, dbName)
	}

	newUploader = func(ctx context.Context, c *config.Config) (services.Uploader, error) {
		return storage.NewS3Storage(ctx, c)
	}
)

type App struct {
	config      *config.Config
	logger      logging.Logger
	repomanager repomanager.RepositoryManager
	handler     *httpserver.Handler
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {

	logger := logging.NewJSONLogger(os.Stdout, c.LogLevel)

	rm, err := newRepositoryManager(ctx, c.MongoURI(), c.DatabaseName)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}
	logger.Info(ctx, "Connected to MongoDB", "database", c.DatabaseName)

	if err := rm.EnsureIndexes(ctx); err != nil {
		logger.Warn(ctx, "index creation failed", "error", err)
	}

	uploader, err := newUploader(ctx, c)
	if err != nil {
		_ = rm.Close(ctx)
		return nil, fmt.Errorf("storage init error: %w", err)
	}

	as := services.NewAssignmentService(rm, uploader)
	ss := services.NewSubmissionService(rm)
	ts := auth.NewTokenService(c.SecretKey, c.TokenValidityDuration)

	h := httpserver.NewHandler(as, ss, ts, logger, c.AllowedOrigins)

	return &App{config: c, logger: logger, repomanager: rm, handler: h}, nil
}

// initSignalHandler cancels on the first termination signal. The returned
// func unregisters the signals and waits for the watcher goroutine to exit.
func (app *App) initSignalHandler(cancelFunc context.CancelFunc) (stop func()) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	done := make(chan struct{})
	exited := make(chan struct{})
	go func() {
		defer close(exited)
		select {
		case <-sigs:
			cancelFunc()
		case <-done:
		}
	}()

	return func() {
		signal.Stop(sigs)
		close(done)
		<-exited
	}
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := httpserver.NewHTTPServer(app.config.EndpointAddrHTTP, app.logger, app.handler.Routes())

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

// Run serves until ctx is cancelled or a termination signal arrives, then
// disconnects from the database.
func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	stopSignals := app.initSignalHandler(cancelFunc)
	defer stopSignals()

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	closeCtx, cancel := context.WithTimeout(context.Background(), closeTimeout)
	defer cancel()
	if err := app.repomanager.Close(closeCtx); err != nil {
		app.logger.Error(closeCtx, "db close error", "error", err)
	}

	app.logger.Info(closeCtx, "App stopped")
}
