package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/bookflow-backend/internal/adapter/postgres"
	bookrepo "github.com/heartmarshall/bookflow-backend/internal/adapter/postgres/book"
	categoryrepo "github.com/heartmarshall/bookflow-backend/internal/adapter/postgres/category"
	historyrepo "github.com/heartmarshall/bookflow-backend/internal/adapter/postgres/history"
	lookuprepo "github.com/heartmarshall/bookflow-backend/internal/adapter/postgres/lookup"
	taskrepo "github.com/heartmarshall/bookflow-backend/internal/adapter/postgres/task"
	userrepo "github.com/heartmarshall/bookflow-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/bookflow-backend/internal/adapter/rabbit"
	"github.com/heartmarshall/bookflow-backend/internal/audit"
	"github.com/heartmarshall/bookflow-backend/internal/auth"
	"github.com/heartmarshall/bookflow-backend/internal/config"
	"github.com/heartmarshall/bookflow-backend/internal/lookup"
	authsvc "github.com/heartmarshall/bookflow-backend/internal/service/auth"
	booksvc "github.com/heartmarshall/bookflow-backend/internal/service/book"
	historysvc "github.com/heartmarshall/bookflow-backend/internal/service/history"
	tasksvc "github.com/heartmarshall/bookflow-backend/internal/service/task"
	usersvc "github.com/heartmarshall/bookflow-backend/internal/service/user"
	"github.com/heartmarshall/bookflow-backend/internal/transport/middleware"
	"github.com/heartmarshall/bookflow-backend/internal/transport/rest"
)

// App holds the wired components of a running server.
type App struct {
	cfg       *config.Config
	log       *slog.Logger
	pool      *pgxpool.Pool
	cache     *lookup.Cache
	refresher *lookup.Refresher
	audit     *audit.Logger
	publisher *rabbit.Publisher
	limiter   *middleware.RateLimiter
	handler   http.Handler

	workers errgroup.Group
}

// Run is the application entry point. It loads configuration, wires every
// component and serves HTTP until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	a, err := New(ctx, cfg, logger)
	if err != nil {
		return err
	}

	a.Start(ctx)
	serveErr := a.Serve(ctx)
	a.Shutdown(context.WithoutCancel(ctx))

	logger.Info("application stopped")
	return serveErr
}

// New connects to the database, loads the lookup cache and builds the
// HTTP handler tree. Background workers are not started.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	if cfg.Database.AutoMigrate {
		if err := MigrateUp(ctx, cfg.Database.DSN, logger); err != nil {
			return nil, err
		}
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	cache := lookup.New(logger, lookuprepo.New(pool))
	if err := cache.Load(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("load lookup cache: %w", err)
	}

	refresher, err := lookup.NewRefresher(cache, cfg.Lookup.RefreshSchedule)
	if err != nil {
		pool.Close()
		return nil, err
	}

	pub, err := rabbit.Dial(cfg.Audit.AMQPURL, cfg.Audit.AMQPExchange)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("audit fan-out: %w", err)
	}
	if pub == nil {
		logger.Info("audit fan-out disabled")
	}

	// Repositories
	books := bookrepo.New(pool)
	categories := categoryrepo.New(pool)
	tasks := taskrepo.New(pool)
	users := userrepo.New(pool)
	history := historyrepo.New(pool)
	tx := postgres.NewTxManager(pool)

	auditLog := audit.New(logger, audit.Config{
		QueueSize:    cfg.Audit.QueueSize,
		WriteTimeout: cfg.Audit.WriteTimeout,
		DrainTimeout: cfg.Audit.DrainTimeout,
	}, history, cache, pub)

	jwt := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL, cfg.Auth.AnonymousTTL)

	// Services
	authService := authsvc.NewService(logger, users, jwt, auditLog, cfg.Auth)
	bookService := booksvc.NewService(logger, books, categories, cache, auditLog, tx)
	taskService := tasksvc.NewService(logger, tasks, books, users, cache, auditLog, tx)
	historyService := historysvc.NewService(logger, history, cache)
	userService := usersvc.NewService(logger, users, cache, auditLog, tx, cfg.Auth.BcryptCost)

	limiter := middleware.NewRateLimiter(5 * time.Minute)

	handler := rest.NewRouter(*cfg, logger, jwt, limiter, rest.Handlers{
		Health:  rest.NewHealthHandler(pool, BuildVersion()).WithLookup(cache),
		Auth:    rest.NewAuthHandler(authService, logger),
		Book:    rest.NewBookHandler(bookService, logger),
		Task:    rest.NewTaskHandler(taskService, logger),
		History: rest.NewHistoryHandler(historyService, logger),
		User:    rest.NewUserHandler(userService, logger),
	})

	return &App{
		cfg:       cfg,
		log:       logger,
		pool:      pool,
		cache:     cache,
		refresher: refresher,
		audit:     auditLog,
		publisher: pub,
		limiter:   limiter,
		handler:   handler,
	}, nil
}

// Handler returns the root HTTP handler.
func (a *App) Handler() http.Handler {
	return a.handler
}

// Start launches the audit worker and the lookup refresh schedule.
func (a *App) Start(ctx context.Context) {
	a.workers.Go(func() error {
		return a.audit.Run(ctx)
	})
	a.refresher.Start()
}

// Serve listens on the configured address until ctx is cancelled or the
// listener fails, then shuts the server down gracefully.
func (a *App) Serve(ctx context.Context) error {
	srv := &http.Server{
		Addr:         net.JoinHostPort(a.cfg.Server.Host, strconv.Itoa(a.cfg.Server.Port)),
		Handler:      a.handler,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		a.log.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		a.log.Info("shutting down http server")

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), a.cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})

	return g.Wait()
}

// Shutdown stops the refresh schedule, drains the audit outbox and closes
// connections, in that order.
func (a *App) Shutdown(ctx context.Context) {
	stopCtx, cancel := context.WithTimeout(ctx, a.cfg.Server.ShutdownTimeout)
	defer cancel()
	a.refresher.Stop(stopCtx)

	if err := a.audit.Close(); err != nil {
		a.log.Warn("audit drain incomplete", slog.String("error", err.Error()))
	}
	if err := a.workers.Wait(); err != nil {
		a.log.Warn("audit worker stopped with error", slog.String("error", err.Error()))
	}

	if err := a.publisher.Close(); err != nil {
		a.log.Warn("close audit fan-out", slog.String("error", err.Error()))
	}
	a.limiter.Stop()
	a.pool.Close()
}
