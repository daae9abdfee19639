package lookup

import (
	"resolucity/internal/clients/openmeteo"
	"resolucity/internal/clients/viacep"
)

type addressInput struct {
	CEP string `path:"cep" example:"27310-020"`
}

type addressOutput struct {
	Body AddressResponse
}

type AddressResponse struct {
	Status    string          `json:"status"`
	Error     string          `json:"error,omitempty"`
	Address   *viacep.Address `json:"address,omitempty"`
	Formatted string          `json:"formatted,omitempty"`
}

type weatherInput struct {
	Latitude  float64 `query:"lat" required:"false"`
	Longitude float64 `query:"lon" required:"false"`
}

type weatherOutput struct {
	Body WeatherResponse
}

type WeatherResponse struct {
	Status  string             `json:"status"`
	Error   string             `json:"error,omitempty"`
	Weather *openmeteo.Weather `json:"weather,omitempty"`
}
