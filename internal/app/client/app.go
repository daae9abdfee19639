// Package client assembles the local-first application the CLI drives:
// the stores live in a file under the user's data directory, no server
// involved, just like the original site kept everything in the browser.
package client

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/exp/slog"

	"resolucity/internal/app/client/config"
	"resolucity/internal/clients/agify"
	"resolucity/internal/clients/openmeteo"
	"resolucity/internal/clients/viacep"
	"resolucity/internal/domain/account"
	"resolucity/internal/domain/dashboard"
	"resolucity/internal/domain/report"
	"resolucity/internal/infrastructure/storage/kv"
	"resolucity/internal/infrastructure/storage/localstore"
)

type App struct {
	Accounts  account.Servicer
	Reports   report.Servicer
	Dashboard *dashboard.Service
	Geo       *viacep.Client
	Weather   *openmeteo.Client
	Ages      *agify.Client

	cfg   *config.Config
	store kv.Store
	log   *slog.Logger
}

func New(cfg *config.Config, log *slog.Logger) (*App, error) {
	if err := os.MkdirAll(cfg.DataDir, 0o700); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	store, err := openStore(cfg)
	if err != nil {
		return nil, err
	}

	userRepo := localstore.NewUserRepository(store, log)
	sessionRepo := localstore.NewSessionRepository(store, log)
	reportRepo := localstore.NewReportRepository(store, log)

	accounts := account.NewService(userRepo, sessionRepo, account.NewRegisterValidator(), log)
	reports := report.NewService(reportRepo, log)

	return &App{
		Accounts:  accounts,
		Reports:   reports,
		Dashboard: dashboard.NewService(reports, log),
		Geo:       viacep.New(log),
		Weather:   openmeteo.New(log),
		Ages:      agify.New(log),
		cfg:       cfg,
		store:     store,
		log:       log,
	}, nil
}

func openStore(cfg *config.Config) (kv.Store, error) {
	switch cfg.Driver {
	case config.DriverSQLite:
		return kv.NewSQLite(cfg.StoragePath)
	case config.DriverFile:
		return kv.NewFile(cfg.StoragePath)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}

func (a *App) Close() error {
	if closer, ok := a.store.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}
