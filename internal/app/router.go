package app

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/heartmarshall/adaptation-catalog/internal/blob"
	"github.com/heartmarshall/adaptation-catalog/internal/config"
	"github.com/heartmarshall/adaptation-catalog/internal/importer"
	"github.com/heartmarshall/adaptation-catalog/internal/observability"
	"github.com/heartmarshall/adaptation-catalog/internal/service/auth"
	"github.com/heartmarshall/adaptation-catalog/internal/transport/middleware"
	"github.com/heartmarshall/adaptation-catalog/internal/transport/rest"
	"github.com/heartmarshall/adaptation-catalog/internal/transport/web"
)

// blobProbeKey is looked up by the readiness probe; it never exists.
const blobProbeKey = "health/probe"

// Deps is everything the HTTP handler is built from.
type Deps struct {
	Config   *config.Config
	Logger   *slog.Logger
	Services *Services
	Auth     *auth.Service
	Runner   *importer.Runner
	Blobs    blob.Store
	// Metrics is optional; without it requests are not observed.
	Metrics  *observability.Metrics
	Limiter  *middleware.RateLimiter
	// Database is probed by /ready and /health.
	Database rest.Pinger
}

// NewHandler mounts the admin API, the public site, the health probes and
// the metrics endpoint on one mux and wraps it in the global middleware.
func NewHandler(d Deps) (http.Handler, error) {
	cfg := d.Config
	mux := http.NewServeMux()

	// Health
	health := rest.NewHealthHandler(BuildVersion(), map[string]rest.Pinger{
		"database": d.Database,
		"blob":     rest.PingFunc(func(ctx context.Context) error { return probeBlob(ctx, d.Blobs) }),
	})
	mux.HandleFunc("GET /live", health.Live)
	mux.HandleFunc("GET /ready", health.Ready)
	mux.HandleFunc("GET /health", health.Health)
	mux.Handle("GET /metrics", promhttp.Handler())

	// Admin API
	cors := middleware.CORS(cfg.CORS)
	protect := middleware.Chain(cors, middleware.AdminOnly)
	throttle := middleware.Chain(cors, d.Limiter.Limit(cfg.Auth.LoginRatePerMinute))

	handlers := rest.TaxonomyHandlers(d.Services.Taxonomy, d.Logger)
	handlers = append(handlers,
		rest.NewMeasureHandler(d.Services.Measures, cfg.Blob.MaxUploadBytes, d.Logger),
		rest.NewImportHandler(d.Runner, cfg.Import.MaxFileBytes, d.Logger),
	)
	rest.Admin{Auth: rest.NewAuthHandler(d.Auth, d.Logger), Handlers: handlers}.Register(mux, protect, throttle)
	mux.Handle("OPTIONS /admin/api/", cors(http.NotFoundHandler()))

	// Public site
	site, err := web.NewHandler(d.Services.Browse, d.Blobs, cfg.Web, d.Logger)
	if err != nil {
		return nil, err
	}
	site.Register(mux)

	var metrics middleware.Middleware
	if d.Metrics != nil {
		metrics = middleware.Metrics(d.Metrics)
	}
	global := middleware.Chain(
		middleware.Recovery(d.Logger),
		middleware.RequestID(),
		middleware.Auth(d.Auth, d.Logger),
		middleware.Logger(d.Logger),
		metrics,
	)
	return global(mux), nil
}

func probeBlob(ctx context.Context, store blob.Store) error {
	_, rc, err := store.Get(ctx, blobProbeKey)
	if rc != nil {
		rc.Close()
	}
	if err == nil || errors.Is(err, blob.ErrNotFound) {
		return nil
	}
	return err
}
