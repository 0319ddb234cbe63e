package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"ledgerkeep/internal/api"
	"ledgerkeep/internal/config"
	"ledgerkeep/internal/logger"
	"ledgerkeep/internal/schema"
	"ledgerkeep/internal/service"
	"ledgerkeep/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		boot := logger.New("production")
		boot.Fatal().Err(err).Msg("configuration error")
	}
	log := logger.New(cfg.Env)

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, cfg.DBSource)
	if err != nil {
		log.Fatal().Err(err).Msg("unable to connect to database")
	}
	defer pool.Close()

	if err := schema.Apply(ctx, pool, log); err != nil {
		log.Fatal().Err(err).Msg("schema migration failed")
	}

	st, err := store.NewStoreWithPool(pool, cfg.CacheEntries)
	if err != nil {
		log.Fatal().Err(err).Msg("unable to initialize store")
	}

	ledger := service.NewLedgerService(st, st, st, log)
	payments := service.NewPaymentService(pool, st, log)
	auth := service.NewAuthService(st, cfg.JWTSecret, log)

	handler := api.NewHandler(st, ledger, payments, auth, log)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler.Router(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	log.Info().Msg("server stopped")
}
