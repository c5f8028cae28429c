package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/kailas-cloud/propdex/internal/config"
	"github.com/kailas-cloud/propdex/internal/domain/landing"
	logpkg "github.com/kailas-cloud/propdex/internal/logger"
	"github.com/kailas-cloud/propdex/internal/metrics"
	amqpTransport "github.com/kailas-cloud/propdex/internal/transport/amqp"
	chiTransport "github.com/kailas-cloud/propdex/internal/transport/chi"
	healthuc "github.com/kailas-cloud/propdex/internal/usecase/health"
	searchuc "github.com/kailas-cloud/propdex/internal/usecase/search"
	"github.com/kailas-cloud/propdex/internal/usecase/snapshot"
	"github.com/kailas-cloud/propdex/internal/version"
)

func main() {
	// Load configuration based on ENV
	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.NewLogger(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting propdex API server",
		zap.String("build", version.String()),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.String("db_driver", cfg.Database.Driver),
		zap.Int("landing_pages", len(cfg.Landing)),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	metrics.RegisterCatalogMetrics()

	be, err := openBackend(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("Failed to open catalog store", zap.Error(err))
	}
	defer be.close()
	logger.Info("Connected to database")

	landingPages, err := landing.NewRegistry(cfg.LandingPresets())
	if err != nil {
		logger.Fatal("Invalid landing presets", zap.Error(err))
	}

	// Catalog snapshot: pages are served from memory, never from the store directly
	snap := snapshot.New(be.catalog, logger,
		snapshot.WithMaxAge(time.Duration(cfg.Catalog.MaxAgeSec)*time.Second))
	if err := snap.Refresh(ctx); err != nil {
		logger.Warn("Initial catalog load failed, serving an empty catalog until the next refresh", zap.Error(err))
	} else {
		logger.Info("Catalog loaded", zap.Int("listings", len(snap.Listings())))
	}
	go snap.Run(ctx, time.Duration(cfg.Catalog.RefreshIntervalSec)*time.Second)

	if cfg.Events.Enabled {
		startListener(ctx, cfg.Events, snap, logger)
	}

	searchSvc := searchuc.New(snap, be.banners,
		searchuc.WithPageSize(cfg.Catalog.PageSize),
		searchuc.WithLanding(landingPages),
	)
	healthSvc := healthuc.New(be.pinger, snap)

	server := chiTransport.NewServer(searchSvc, healthSvc, snap, logger)

	r := chi.NewRouter()
	r.Use(jsonRecoverer(logger))
	r.Use(chiMiddleware.RequestID)
	r.Use(wideEventMiddleware(logger))
	if len(cfg.CORS.AllowedOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: cfg.CORS.AllowedOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
			ExposedHeaders: []string{"X-Request-ID"},
			MaxAge:         300,
		}))
	}
	r.Use(metrics.Middleware())
	server.Routes(r, cfg.Auth.APIKeys)

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
	}

	logger.Info("Server stopped gracefully")
}

// startListener consumes catalog change events. A broker outage is logged,
// not fatal: the periodic refresh still picks up changes.
func startListener(ctx context.Context, cfg config.EventsConfig, snap *snapshot.Snapshot, logger *zap.Logger) {
	conn, ch, err := amqpTransport.Dial(cfg.URL)
	if err != nil {
		logger.Error("Catalog change events disabled", zap.Error(err))
		return
	}
	listener := amqpTransport.NewListener(ch, cfg.Queue, snap, logger)

	go func() {
		defer func() {
			_ = ch.Close()
			_ = conn.Close()
		}()
		if err := listener.Run(ctx); err != nil {
			logger.Error("Catalog change listener stopped", zap.Error(err))
		}
	}()
}

// jsonRecoverer is a recovery middleware that returns JSON instead of a plain text stacktrace.
func jsonRecoverer(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rvr := recover(); rvr != nil {
					if rvr == http.ErrAbortHandler {
						panic(rvr)
					}
					logger.Error("panic recovered",
						zap.Any("panic", rvr),
						zap.String("path", r.URL.Path),
						zap.Stack("stacktrace"),
					)
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					_ = json.NewEncoder(w).Encode(chiTransport.ErrorResponse{
						Code:    chiTransport.ErrorCodeInternalError,
						Message: "internal error",
					})
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// wideEventMiddleware emits a canonical log line per request and propagates X-Request-ID.
func wideEventMiddleware(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			// chi.middleware.RequestID already placed request_id in context
			requestID := chiMiddleware.GetReqID(r.Context())
			if requestID != "" {
				w.Header().Set("X-Request-ID", requestID)
			}

			reqLogger := logger.With(zap.String("request_id", requestID))
			ctx := logpkg.ContextWithLogger(r.Context(), reqLogger)

			ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r.WithContext(ctx))

			// Canonical log line, one per request
			reqLogger.Info("http_request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.String("query", r.URL.RawQuery),
				zap.String("route", chi.RouteContext(r.Context()).RoutePattern()),
				zap.Int("status", ww.Status()),
				zap.Duration("latency", time.Since(start)),
				zap.String("ip", r.RemoteAddr),
				zap.String("user_agent", r.UserAgent()),
				zap.Int("response_bytes", ww.BytesWritten()),
			)
		})
	}
}
