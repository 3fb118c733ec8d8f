package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/pdemaers/skb-voedingsdagboek/config"
	"github.com/pdemaers/skb-voedingsdagboek/logger"
	"github.com/pdemaers/skb-voedingsdagboek/routes"
	"github.com/pdemaers/skb-voedingsdagboek/services"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := run(ctx); err != nil {
		log.Fatalf("startup failed: %v", err)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	zlog := logger.New(cfg.Env)
	defer func() { _ = zlog.Sync() }()
	zlog.Info("starting voedingsdagboek backend", zap.String("addr", cfg.Addr))

	store, err := config.ConnectMongo(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() { _ = store.Disconnect(context.Background()) }()

	sessions := services.NewSessionService(cfg.SessionIdleTTL)
	roster := services.NewRosterService(store.Collection(config.RosterCollection), cfg.RosterCacheTTL, zlog)
	diary := services.NewDiaryService(sessions, store.Collection(config.MealCollection), zlog)
	weights := services.NewWeightService(sessions, store.Collection(config.WeightCollection), zlog)

	r := routes.SetupRouter(zlog, sessions, roster, diary, weights)

	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Fatal("server error", zap.Error(err))
		}
	}()

	<-ctx.Done()

	zlog.Info("shutting down")
	ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(ctxShutdown)
}
