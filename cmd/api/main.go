package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	_ "SpaceXLaunchDashboard/docs"
	"SpaceXLaunchDashboard/internal/config"
	"SpaceXLaunchDashboard/internal/dataset"
	"SpaceXLaunchDashboard/internal/handler"
	"SpaceXLaunchDashboard/internal/logging"
	"SpaceXLaunchDashboard/internal/middleware"
	"SpaceXLaunchDashboard/internal/observability"

	"github.com/andybalholm/brotli"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

// @title           SpaceX Launch Records Dashboard API
// @version         1.0
// @description     Launch outcome pie chart and payload/outcome scatter chart over the SpaceX launch dataset.
// @BasePath        /
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("main(): failed to load config", "error", err)
		os.Exit(1)
	}

	logger := logging.New(os.Stdout, cfg.LogLevel, cfg.LogFormat)
	slog.SetDefault(logger)

	if cfg.TraceStdout {
		shutdown, err := observability.InitTracer(os.Stdout)
		if err != nil {
			slog.Error("main(): failed to init tracer", "error", err)
			os.Exit(1)
		}
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			shutdown(ctx)
		}()
	}

	table, err := dataset.Load(context.Background(), cfg.DatasetPath)
	if err != nil {
		slog.Error("main(): failed to load dataset", "path", cfg.DatasetPath, "error", err)
		os.Exit(1)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics := observability.NewMetrics(reg)

	dash, err := handler.NewDashboard(table, metrics)
	if err != nil {
		slog.Error("main(): failed to build dashboard", "error", err)
		os.Exit(1)
	}

	gin.SetMode(cfg.GinMode)
	router, err := newRouter(cfg, dash, reg)
	if err != nil {
		slog.Error("main(): failed to build router", "error", err)
		os.Exit(1)
	}

	slog.Info("main(): dashboard listening", "addr", cfg.Addr, "records", table.Len())
	if err := router.Run(cfg.Addr); err != nil {
		slog.Error("main(): server stopped", "error", err)
		os.Exit(1)
	}
}

// newRouter builds the engine with the middleware chain in serving order.
// Only cfg.TrustedProxies may set the client IP through forwarding headers.
func newRouter(cfg *config.Config, dash *handler.Dashboard, gatherer prometheus.Gatherer) (*gin.Engine, error) {
	router := gin.Default()
	var proxies []string
	if len(cfg.TrustedProxies) > 0 {
		proxies = cfg.TrustedProxies
	}
	if err := router.SetTrustedProxies(proxies); err != nil {
		return nil, fmt.Errorf("trusted proxies: %w", err)
	}
	router.Use(otelgin.Middleware("launch-dashboard"))

	corsConfig := cors.DefaultConfig()
	if cfg.AllowAllOrigins() {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	}
	router.Use(cors.New(corsConfig))
	router.Use(middleware.RateLimit(cfg.RateLimitPerSecond, cfg.RateLimitBurst))
	router.Use(middleware.Brotli(brotli.DefaultCompression))

	handler.SetupRoutes(router, dash, gatherer)
	return router, nil
}
