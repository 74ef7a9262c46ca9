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

	"github.com/jonboulle/clockwork"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/adaptation-catalog/internal/adapter/postgres"
	authjwt "github.com/heartmarshall/adaptation-catalog/internal/auth"
	"github.com/heartmarshall/adaptation-catalog/internal/blob"
	"github.com/heartmarshall/adaptation-catalog/internal/config"
	"github.com/heartmarshall/adaptation-catalog/internal/importer"
	"github.com/heartmarshall/adaptation-catalog/internal/observability"
	"github.com/heartmarshall/adaptation-catalog/internal/service/auth"
	"github.com/heartmarshall/adaptation-catalog/internal/transport/middleware"
)

const rateLimitSweepInterval = time.Minute

// Run is the server entry point. It loads configuration, connects the
// database and the blob store, builds the services and serves HTTP until
// ctx is cancelled, then shuts the server down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("blob_driver", cfg.Blob.Driver),
	)

	// 1. Storage
	pool, err := postgres.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		return err
	}
	defer pool.Close()

	blobs, err := blob.Open(ctx, cfg.Blob)
	if err != nil {
		return fmt.Errorf("open blob store: %w", err)
	}

	// 2. Services
	clock := clockwork.NewRealClock()
	metrics := observability.NewMetrics()
	services := NewServices(logger, pool, blobs)

	jwtManager := authjwt.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.TokenTTL)
	authService := auth.NewService(logger, jwtManager, cfg.Auth)
	runner := importer.NewRunner(logger, clock, metrics, cfg.Import, services.Importers()...)

	limiter := middleware.NewRateLimiter(clock, rateLimitSweepInterval)
	defer limiter.Stop()

	// 3. HTTP
	handler, err := NewHandler(Deps{
		Config:   cfg,
		Logger:   logger,
		Services: services,
		Auth:     authService,
		Runner:   runner,
		Blobs:    blobs,
		Metrics:  metrics,
		Limiter:  limiter,
		Database: pool,
	})
	if err != nil {
		return fmt.Errorf("build handler: %w", err)
	}

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	return serve(ctx, srv, cfg.Server.ShutdownTimeout, logger)
}

// serve runs srv until ctx is done and then shuts it down within timeout.
func serve(ctx context.Context, srv *http.Server, timeout time.Duration, logger *slog.Logger) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down http server")

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), timeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("application stopped")
	return nil
}
