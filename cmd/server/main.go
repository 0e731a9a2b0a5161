package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/i-am-Shekinah/alx-workspace-booking-app-backend/internal/api"
	"github.com/i-am-Shekinah/alx-workspace-booking-app-backend/internal/infrastructure/config"
	"github.com/i-am-Shekinah/alx-workspace-booking-app-backend/internal/infrastructure/db/postgres"
	redisdb "github.com/i-am-Shekinah/alx-workspace-booking-app-backend/internal/infrastructure/db/redis"
	"github.com/i-am-Shekinah/alx-workspace-booking-app-backend/internal/infrastructure/queue"
	"github.com/i-am-Shekinah/alx-workspace-booking-app-backend/internal/pkg/token"
	"github.com/i-am-Shekinah/alx-workspace-booking-app-backend/pkg/logger"
)

const accessTokenTTL = 15 * time.Minute

func main() {
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		bootLog := logger.Init(logger.Options{})
		bootLog.Fatal().Err(err).Msg("configuration invalid")
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: !cfg.IsProduction(),
	})

	// Store handles open once at boot and close at shutdown.
	pool, err := postgres.Connect(ctx, postgres.Config{
		URL:      cfg.Postgres.URL,
		MaxConns: cfg.Postgres.MaxConns,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("postgres connection failed")
	}
	defer pool.Close()

	if err := postgres.EnsureSchema(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("schema migration failed")
	}

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() { _ = rdb.Close() }()

	issuer := token.NewIssuer(cfg.JWTAccessSecret, cfg.JWTRefreshSecret, accessTokenTTL)

	dispatcher := queue.NewDispatcher(0, postgres.NewAuthEventRepository(pool), log)
	dispatcher.Start(ctx)

	e := api.NewRouter(api.Deps{
		Pool:       pool,
		Redis:      rdb,
		Issuer:     issuer,
		Events:     dispatcher,
		Production: cfg.IsProduction(),
		Log:        log,
	})

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("workspace backend running")

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	log.Info().Msg("server stopped")
}
