package main

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"resolucity/internal/app/server/api"
	"resolucity/internal/app/server/config"
	"resolucity/internal/clients/agify"
	"resolucity/internal/clients/openmeteo"
	"resolucity/internal/clients/viacep"
	"resolucity/internal/domain/account"
	"resolucity/internal/domain/dashboard"
	"resolucity/internal/domain/report"
	"resolucity/internal/infrastructure/storage/kv"
	"resolucity/internal/infrastructure/storage/localstore"
	"resolucity/internal/utils/logger"
)

func main() {
	cfg := config.NewConfig()
	log := logger.New(cfg.Env)

	ctx := context.Background()
	store, err := kv.Open(ctx, cfg)
	if err != nil {
		log.Error("open storage", "driver", cfg.Storage.Driver, "error", err)
		os.Exit(1)
	}
	if closer, ok := store.(io.Closer); ok {
		defer closer.Close()
	}

	userRepo := localstore.NewUserRepository(store, log)
	sessionRepo := localstore.NewSessionRepository(store, log)
	reportRepo := localstore.NewReportRepository(store, log)

	accounts := account.NewService(userRepo, sessionRepo, account.NewRegisterValidator(), log)
	if err := accounts.Initialize(ctx); err != nil {
		log.Error("initialize account store", "error", err)
		os.Exit(1)
	}
	reports := report.NewService(reportRepo, log)

	mux := api.New(api.Services{
		Accounts:  accounts,
		Reports:   reports,
		Dashboard: dashboard.NewService(reports, log),
		Geo:       viacep.New(log),
		Weather:   openmeteo.New(log),
		Ages:      agify.New(log),
	}, log)

	srv := &http.Server{
		Addr:    cfg.Server.RunAddress,
		Handler: mux,
	}

	go func() {
		log.Info("server listening", "address", cfg.Server.RunAddress, "storage", cfg.Storage.Driver)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server stopped", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown", "error", err)
	}
}
