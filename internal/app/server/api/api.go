package api

import (
	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"golang.org/x/exp/slog"

	accountAPI "resolucity/internal/app/server/api/http/account"
	dashboardAPI "resolucity/internal/app/server/api/http/dashboard"
	healthAPI "resolucity/internal/app/server/api/http/health"
	lookupAPI "resolucity/internal/app/server/api/http/lookup"
	"resolucity/internal/app/server/api/http/middleware"
	"resolucity/internal/app/server/api/http/middleware/auth"
	"resolucity/internal/app/server/api/http/middleware/logger"
	reportAPI "resolucity/internal/app/server/api/http/report"
	"resolucity/internal/clients/agify"
	"resolucity/internal/clients/openmeteo"
	"resolucity/internal/clients/viacep"
	"resolucity/internal/domain/account"
	"resolucity/internal/domain/dashboard"
	"resolucity/internal/domain/report"
)

// Services are the wired domain services and lookup clients the API sits on.
type Services struct {
	Accounts  account.Servicer
	Reports   report.Servicer
	Dashboard *dashboard.Service
	Geo       *viacep.Client
	Weather   *openmeteo.Client
	Ages      *agify.Client
}

type Handlers struct {
	Health    *healthAPI.Handler
	Account   *accountAPI.Handler
	Report    *reportAPI.Handler
	Dashboard *dashboardAPI.Handler
	Lookup    *lookupAPI.Handler
}

// New builds a *chi.Mux with every operation registered through huma.
func New(svc Services, log *slog.Logger) *chi.Mux {
	mux := chi.NewMux()

	config := huma.DefaultConfig("ResoluCity API", "1.0.0")
	API := humachi.New(mux, config)

	h := handlers(svc, log)
	h.Health.SetupRoutes(API)
	h.Account.SetupRoutes(API)
	h.Report.SetupRoutes(API)
	h.Dashboard.SetupRoutes(API)
	h.Lookup.SetupRoutes(API)

	return mux
}

func handlers(svc Services, log *slog.Logger) *Handlers {
	authMW := auth.New(svc.Accounts, log)
	loggerMW := logger.New(log)
	middlewares := middleware.NewContainer()

	middlewares.Add(loggerMW.Middleware())
	healthHandler := healthAPI.NewHandler(log, middlewares.GetAllAndClear())

	middlewares.Add(loggerMW.Middleware())
	accountHandler := accountAPI.NewHandler(svc.Accounts, svc.Ages, log, middlewares.GetAllAndClear())

	validator := report.NewFormValidator()
	middlewares.Add(loggerMW.Middleware())
	public := middlewares.GetAllAndClear()
	middlewares.Add(loggerMW.Middleware())
	middlewares.Add(authMW.Middleware())
	authed := middlewares.GetAllAndClear()
	reportHandler := reportAPI.NewHandler(svc.Reports, svc.Accounts, validator, svc.Geo, log, public, authed)

	middlewares.Add(loggerMW.Middleware())
	dashboardHandler := dashboardAPI.NewHandler(svc.Dashboard, log, middlewares.GetAllAndClear())

	middlewares.Add(loggerMW.Middleware())
	lookupHandler := lookupAPI.NewHandler(svc.Geo, svc.Weather, log, middlewares.GetAllAndClear())

	return &Handlers{
		Health:    healthHandler,
		Account:   accountHandler,
		Report:    reportHandler,
		Dashboard: dashboardHandler,
		Lookup:    lookupHandler,
	}
}
