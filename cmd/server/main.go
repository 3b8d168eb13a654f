package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"openfairdb/internal/auth"
	"openfairdb/internal/platform/config"
	"openfairdb/internal/platform/httpserver"
	"openfairdb/internal/platform/logger"
	"openfairdb/internal/platform/metrics"
	"openfairdb/internal/storage"
	httptransport "openfairdb/internal/transport/http"
	"openfairdb/internal/web/guards"
)

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in the internal packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New(cfg.Env)

	stores := httptransport.Stores{
		Places:        storage.NewInMemoryPlaceStore(),
		Events:        storage.NewInMemoryEventStore(),
		Users:         storage.NewInMemoryUserStore(),
		Ratings:       storage.NewInMemoryRatingStore(),
		Subscriptions: storage.NewInMemorySubscriptionStore(),
		Clearances:    storage.NewInMemoryClearanceStore(),
	}

	handler := httptransport.NewHandler(
		log,
		metrics.New(),
		stores,
		guards.NewCookies(cfg.CookieHashKey, cfg.CookieBlockKey),
		auth.NewTokenService(cfg.TokenSigningKey, "openfairdb", cfg.TokenTTL),
		auth.NewResetTokenStore(cfg.TokenTTL),
	)
	router := httptransport.NewRouter(handler)
	srv := httpserver.New(cfg.Addr, router)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("starting openfairdb", "addr", cfg.Addr, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		log.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("server exited", "error", err)
		os.Exit(1)
	}
}
