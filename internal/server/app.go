// Package server initializes and runs the authentication server. It wires
// configuration, the database, the blacklist backend, the HTTP endpoint
// and the scheduled cleanup, and handles graceful shutdown.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/redis/go-redis/v9"

	"github.com/ZeroColaa/authkeep/internal/logging"
	"github.com/ZeroColaa/authkeep/internal/server/cleanup"
	"github.com/ZeroColaa/authkeep/internal/server/config"
	"github.com/ZeroColaa/authkeep/internal/server/httpapi"
	"github.com/ZeroColaa/authkeep/internal/server/repositories/blacklist"
	"github.com/ZeroColaa/authkeep/internal/server/repositories/repomanager"
	"github.com/ZeroColaa/authkeep/internal/server/services"
)

type App struct {
	config    *config.Config
	logger    logging.Logger
	db        *sql.DB
	httpServ  *httpapi.HTTPServer
	scheduler *cleanup.Scheduler
}

func NewApp(cfg *config.Config) (*App, error) {

	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	secret, err := cfg.DecodeSecretKey()
	if err != nil {
		return nil, fmt.Errorf("secret key decode error: %w", err)
	}

	db, err := sql.Open("pgx", cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	m := repomanager.NewPostgresRepositoryManager()
	if err := m.RunMigrations(context.Background(), db); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	if cfg.BlacklistBackend == config.BlacklistBackendRedis {
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		m = repomanager.WithBlacklist(m, blacklist.NewRedisRepository(client))
	}

	authService := services.NewAuthService(db, m, secret, cfg)

	httpServ := httpapi.NewHTTPServer(cfg.EndpointAddr, logger, authService, m.Blacklist(db), secret)
	scheduler := cleanup.NewScheduler(m.RefreshTokens(db), m.Blacklist(db), logger, cfg.CleanupSchedule)

	return &App{
		config:    cfg,
		logger:    logger,
		db:        db,
		httpServ:  httpServ,
		scheduler: scheduler,
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

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	if err := app.scheduler.Start(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		return
	}

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := app.httpServ.Run(ctx); err != nil {
			app.logger.Error(ctx, err.Error())
			cancelFunc()
		}
	}()

	wg.Wait()

	app.scheduler.Stop()
	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, err.Error())
	}
}
