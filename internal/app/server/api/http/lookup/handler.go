// Package lookup proxies the two public lookups the complaint form uses,
// so the frontend never talks to the external APIs directly.
package lookup

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"resolucity/internal/clients/openmeteo"
	"resolucity/internal/clients/viacep"
)

type Handler struct {
	geo        *viacep.Client
	weather    *openmeteo.Client
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(geo *viacep.Client, weather *openmeteo.Client, log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		geo:        geo,
		weather:    weather,
		log:        log,
		middleware: middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.addressOp(), h.address)
	huma.Register(api, h.weatherOp(), h.currentWeather)
}

func (h *Handler) address(ctx context.Context, input *addressInput) (*addressOutput, error) {
	addr, err := h.geo.Lookup(ctx, input.CEP)
	if err != nil {
		return &addressOutput{
			Body: AddressResponse{Status: "Error", Error: err.Error()},
		}, nil
	}

	return &addressOutput{
		Body: AddressResponse{
			Status:    "Ok",
			Address:   &addr,
			Formatted: addr.Formatted(),
		},
	}, nil
}

func (h *Handler) currentWeather(ctx context.Context, input *weatherInput) (*weatherOutput, error) {
	lat, lon := input.Latitude, input.Longitude
	if lat == 0 && lon == 0 {
		lat, lon = openmeteo.DefaultLatitude, openmeteo.DefaultLongitude
	}

	w, err := h.weather.Current(ctx, lat, lon)
	if err != nil {
		// The widget just stays hidden when the lookup fails.
		h.log.Debug("weather lookup failed", "error", err)
		return &weatherOutput{
			Body: WeatherResponse{Status: "Error", Error: err.Error()},
		}, nil
	}

	return &weatherOutput{
		Body: WeatherResponse{Status: "Ok", Weather: &w},
	}, nil
}
