// Command server runs the rental marketplace REST API.
//
// Startup order: load .env, parse configuration, configure logging, open and
// migrate the database, load the settlements dataset, set up tracing, wire
// the HTTP router, then serve until SIGINT/SIGTERM with graceful shutdown.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	_ "github.com/orendahub/go-rental-backend/docs"
	"github.com/orendahub/go-rental-backend/internal/config"
	"github.com/orendahub/go-rental-backend/internal/geo"
	httpapi "github.com/orendahub/go-rental-backend/internal/http"
	"github.com/orendahub/go-rental-backend/internal/observability"
	"github.com/orendahub/go-rental-backend/internal/repo"
	"github.com/orendahub/go-rental-backend/internal/sysutil"
)

// version is stamped at build time via -ldflags "-X main.version=...".
var version = "dev"

// @title           Rental Marketplace API
// @version         1.0
// @description     Apartment rental marketplace backend: listings, booking requests, and rental contracts with cookie-session auth.
//
// @host      localhost:8080
// @BasePath  /api/v1

func main() {
	// Best effort; real deployments configure the environment directly.
	_ = godotenv.Load()

	cfg := config.MustLoad()

	sysutil.SetLogLevel(cfg.LogLevel)
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if cfg.LogPretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
	appVersion := sysutil.FirstNonEmpty(os.Getenv("APP_VERSION"), version)

	gin.SetMode(cfg.GinMode)

	db, err := repo.OpenSQLite(cfg.DBPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.DBPath).Msg("open database")
	}
	if err := repo.AutoMigrate(db); err != nil {
		log.Fatal().Err(err).Msg("migrate database")
	}

	ctx := context.Background()

	if cfg.SeedDemo {
		if err := repo.SeedDemo(ctx, db); err != nil {
			log.Fatal().Err(err).Msg("seed demo data")
		}
		log.Info().Msg("demo data seeded")
	}

	idx, err := geo.NewIndexFromFile(cfg.GeoDataPath)
	if err != nil {
		// Settlement search degrades to empty results; everything else works.
		log.Warn().Err(err).Str("path", cfg.GeoDataPath).Msg("geo dataset unavailable")
		idx = geo.NewIndexFromSettlements(nil)
	}

	shutdownOTel, err := observability.SetupOTel(ctx, cfg.OTEL, appVersion)
	if err != nil {
		log.Fatal().Err(err).Msg("setup tracing")
	}
	if cfg.OTEL.Enabled {
		if err := repo.EnableTracing(db); err != nil {
			log.Fatal().Err(err).Msg("enable db tracing")
		}
	}

	r := gin.New()
	httpapi.RegisterRoutes(r, db, idx, cfg)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
		MaxHeaderBytes:    cfg.MaxHeaderBytes,
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Str("version", appVersion).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("http shutdown")
	}
	if err := shutdownOTel(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("tracing shutdown")
	}
	log.Info().Msg("bye")
}
