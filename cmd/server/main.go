package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/LuizHNR/NebuloHub-Mongo/common/id"
	"github.com/LuizHNR/NebuloHub-Mongo/common/logger"
	"github.com/LuizHNR/NebuloHub-Mongo/common/metrics"
	"github.com/LuizHNR/NebuloHub-Mongo/common/otel"
	"github.com/LuizHNR/NebuloHub-Mongo/core/config"
	"github.com/LuizHNR/NebuloHub-Mongo/internal/http/dto"
	"github.com/LuizHNR/NebuloHub-Mongo/internal/http/middleware"
	httprouter "github.com/LuizHNR/NebuloHub-Mongo/internal/http/router"
	"github.com/LuizHNR/NebuloHub-Mongo/internal/model"
	"github.com/LuizHNR/NebuloHub-Mongo/internal/service"
	"github.com/LuizHNR/NebuloHub-Mongo/internal/store"
)

func main() {
	fmt.Printf("%s\n", banner)
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		slog.ErrorContext(ctx, "failed to load config", "error", err)
		os.Exit(1)
	}

	// OTel must init before logger (logger uses OTel provider in production)
	telemetry, err := otel.Setup(ctx, cfg.OTel)
	if err != nil {
		os.Stderr.WriteString("failed to initialize otel: " + err.Error() + "\n")
		os.Exit(1)
	}

	logger.Setup(cfg)

	if telemetry != nil {
		slog.InfoContext(ctx, "otel initialized", "endpoint", cfg.OTel.Endpoint)
	} else {
		slog.InfoContext(ctx, "otel disabled (no endpoint configured)")
	}

	slog.InfoContext(ctx, "nebulo api starting", "env", cfg.Env, "store", cfg.Store.Driver)
	if err := id.Init(1); err != nil {
		slog.ErrorContext(ctx, "failed to initialize snowflake id generator", "error", err)
		os.Exit(1)
	}

	if err := dto.RegisterValidators(); err != nil {
		slog.ErrorContext(ctx, "failed to register validators", "error", err)
		os.Exit(1)
	}

	cols, err := store.NewCollections(map[model.Kind]string{
		model.KindAccount:      cfg.Collections.Accounts,
		model.KindOrganization: cfg.Collections.Organizations,
		model.KindRating:       cfg.Collections.Ratings,
	})
	if err != nil {
		slog.ErrorContext(ctx, "invalid collection names", "error", err)
		os.Exit(1)
	}

	backend, err := openBackend(ctx, cfg, cols)
	if err != nil {
		slog.ErrorContext(ctx, "failed to open store", "driver", cfg.Store.Driver, "error", err)
		os.Exit(1)
	}
	slog.InfoContext(ctx, "store connected", "driver", backend.Name(), "collections", cols.Names())

	cache, closeCache, err := openCache(ctx, cfg.Redis)
	if err != nil {
		slog.ErrorContext(ctx, "failed to connect to redis", "error", err)
		os.Exit(1)
	}
	defer closeCache()

	stores, err := store.NewStores(ctx, backend, cols, cache)
	if err != nil {
		slog.ErrorContext(ctx, "failed to open repositories", "error", err)
		os.Exit(1)
	}

	m := metrics.New()
	services := service.NewServices(
		stores,
		service.NewBcryptHasher(0),
		service.NewTokenIssuer(cfg.JWT),
		m,
	)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := setupRouter(cfg, services, m, backend)
	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		slog.InfoContext(ctx, "http server starting", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.ErrorContext(ctx, "http server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.InfoContext(ctx, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.ErrorContext(shutdownCtx, "http server shutdown error", "error", err)
	}

	if err := backend.Close(shutdownCtx); err != nil {
		slog.ErrorContext(shutdownCtx, "store close error", "error", err)
	}

	if telemetry != nil {
		if err := telemetry.Shutdown(shutdownCtx); err != nil {
			slog.ErrorContext(shutdownCtx, "otel shutdown error", "error", err)
		}
	}

	slog.InfoContext(shutdownCtx, "shutdown complete")
}

func setupRouter(cfg config.Config, services *service.Services, m *metrics.Metrics, backend store.Backend) *gin.Engine {
	router := gin.New()

	// Order matters: OTel creates span → Recovery catches panics → Logger logs with trace context
	if cfg.OTel.Enabled() {
		router.Use(otelgin.Middleware(cfg.OTel.ServiceName))
	}
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Metrics(m))

	httprouter.SetupRoutes(router, services, m, backend, httprouter.RouterConfig{
		PublicURL: cfg.PublicURL,
	})

	return router
}

const banner = `
 _   _      _           _         _    ____ ___
| \ | | ___| |__  _   _| | ___   / \  |  _ \_ _|
|  \| |/ _ \ '_ \| | | | |/ _ \ / _ \ | |_) | |
| |\  |  __/ |_) | |_| | | (_) / ___ \|  __/| |
|_| \_|\___|_.__/ \__,_|_|\___/_/   \_\_|  |___|
`
