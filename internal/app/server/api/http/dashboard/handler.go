package dashboard

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"resolucity/internal/domain/dashboard"
)

type Handler struct {
	service    *dashboard.Service
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service *dashboard.Service, log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log,
		middleware: middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.seriesOp(), h.series)
}

func (h *Handler) series(ctx context.Context, _ *struct{}) (*seriesOutput, error) {
	series, err := h.service.Build(ctx)
	if err != nil {
		return nil, err
	}
	return &seriesOutput{Body: series}, nil
}
