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
	"github.com/sethvargo/go-retry"
	"golang.org/x/sync/errgroup"

	"github.com/alhidayah/hidayah-backend/internal/adapter/postgres"
	"github.com/alhidayah/hidayah-backend/internal/adapter/postgres/flashcard"
	"github.com/alhidayah/hidayah-backend/internal/adapter/postgres/reviewlog"
	"github.com/alhidayah/hidayah-backend/internal/adapter/postgres/reviewstate"
	"github.com/alhidayah/hidayah-backend/internal/adapter/sqlite"
	"github.com/alhidayah/hidayah-backend/internal/auth"
	"github.com/alhidayah/hidayah-backend/internal/config"
	"github.com/alhidayah/hidayah-backend/internal/domain"
	"github.com/alhidayah/hidayah-backend/internal/service/study"
	"github.com/alhidayah/hidayah-backend/internal/service/study/sm2"
	"github.com/alhidayah/hidayah-backend/internal/transport/middleware"
	"github.com/alhidayah/hidayah-backend/internal/transport/rest"
)

const (
	connectAttempts   = 5
	connectBackoff    = 500 * time.Millisecond
	rateLimitCleanup  = time.Minute
	readHeaderTimeout = 5 * time.Second
)

// Run is the application entry point. It loads configuration, opens the
// configured store, and serves HTTP until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("db_driver", cfg.Database.Driver),
	)

	a, err := newApplication(ctx, logger, *cfg)
	if err != nil {
		return err
	}
	defer a.Close()

	return a.Serve(ctx)
}

// application holds the assembled HTTP handler and the resources it owns.
type application struct {
	log     *slog.Logger
	cfg     config.Config
	handler http.Handler
	closers []func()
}

func newApplication(ctx context.Context, logger *slog.Logger, cfg config.Config) (*application, error) {
	a := &application{log: logger, cfg: cfg}

	svc, check, err := a.openStudy(ctx)
	if err != nil {
		a.Close()
		return nil, err
	}

	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	var limiter middleware.Middleware
	if cfg.RateLimit.Enabled {
		rl := middleware.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst, rateLimitCleanup)
		a.closers = append(a.closers, rl.Stop)
		limiter = rl.Middleware()
	}

	api := http.NewServeMux()
	rest.NewFlashCardHandler(svc, logger).Register(api)

	apiHandler := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		middleware.Auth(tokens),
		limiter,
	)(api)

	mux := http.NewServeMux()
	rest.NewHealthHandler(BuildVersion(), check).Register(mux)
	mux.Handle("/api/", apiHandler)

	a.handler = mux
	return a, nil
}

// openStudy opens the configured store and builds the study service on it.
func (a *application) openStudy(ctx context.Context) (*study.Service, rest.Check, error) {
	reviewCfg, params := reviewSettings(a.cfg.Review)

	switch a.cfg.Database.Driver {
	case config.DriverSQLite:
		db, err := sqlite.Open(ctx, a.cfg.Database.DSN)
		if err != nil {
			return nil, rest.Check{}, err
		}
		a.closers = append(a.closers, func() { _ = db.Close() })

		svc, err := study.NewService(a.log,
			sqlite.NewFlashCardRepo(db),
			sqlite.NewReviewStateRepo(db),
			sqlite.NewReviewLogRepo(db),
			sqlite.NewTxManager(db),
			reviewCfg, params,
		)
		if err != nil {
			return nil, rest.Check{}, err
		}
		return svc, rest.Check{Name: "sqlite", Ping: db.PingContext}, nil

	case config.DriverPostgres:
		pool, err := a.connectPostgres(ctx)
		if err != nil {
			return nil, rest.Check{}, err
		}
		a.closers = append(a.closers, pool.Close)

		svc, err := study.NewService(a.log,
			flashcard.New(pool),
			reviewstate.New(pool),
			reviewlog.New(pool),
			postgres.NewTxManager(pool),
			reviewCfg, params,
		)
		if err != nil {
			return nil, rest.Check{}, err
		}
		return svc, rest.Check{Name: "postgres", Ping: pool.Ping}, nil

	default:
		return nil, rest.Check{}, fmt.Errorf("unsupported database driver %q", a.cfg.Database.Driver)
	}
}

// connectPostgres retries the initial connection so the service can start
// alongside a database that is still booting.
func (a *application) connectPostgres(ctx context.Context) (*pgxpool.Pool, error) {
	var pool *pgxpool.Pool
	backoff := retry.WithMaxRetries(connectAttempts-1, retry.NewExponential(connectBackoff))

	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		p, err := postgres.NewPool(ctx, a.cfg.Database)
		if err != nil {
			a.log.Warn("database not ready", slog.String("error", err.Error()))
			return retry.RetryableError(err)
		}
		pool = p
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	return pool, nil
}

// Serve runs the HTTP server until ctx is cancelled, then shuts it down
// within the configured shutdown timeout.
func (a *application) Serve(ctx context.Context) error {
	srv := &http.Server{
		Addr:              net.JoinHostPort(a.cfg.Server.Host, strconv.Itoa(a.cfg.Server.Port)),
		Handler:           a.handler,
		ReadTimeout:       a.cfg.Server.ReadTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
		WriteTimeout:      a.cfg.Server.WriteTimeout,
		IdleTimeout:       a.cfg.Server.IdleTimeout,
		ErrorLog:          slog.NewLogLogger(a.log.Handler(), slog.LevelError),
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

		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})

	return g.Wait()
}

// Close releases resources in reverse order of acquisition.
func (a *application) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
	a.closers = nil
}

func reviewSettings(c config.ReviewConfig) (domain.ReviewConfig, sm2.Parameters) {
	reviewCfg := domain.ReviewConfig{
		DefaultDueLimit:    c.DefaultDueLimit,
		MaxDueLimit:        c.MaxDueLimit,
		MaxConflictRetries: c.MaxConflictRetries,
		ConflictBackoff:    c.ConflictBackoff,
	}
	params := sm2.Parameters{
		InitialEaseFactor: c.InitialEaseFactor,
		MinEaseFactor:     c.MinEaseFactor,
		PassingQuality:    c.PassingQuality,
		FirstInterval:     c.FirstInterval,
		SecondInterval:    c.SecondInterval,
		Mastery: sm2.MasteryThresholds{
			MinSuccessRate:  c.MasteryMinSuccessRate,
			MinReviews:      c.MasteryMinReviews,
			MinIntervalDays: c.MasteryMinIntervalDays,
		},
	}
	return reviewCfg, params
}
