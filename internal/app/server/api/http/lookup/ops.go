package lookup

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) addressOp() huma.Operation {
	return huma.Operation{
		OperationID: "lookup-address",
		Method:      http.MethodGet,
		Path:        "/api/lookup/address/{cep}",
		Summary:     "Resolve a CEP to a formatted address",
		Tags:        []string{"lookup"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) weatherOp() huma.Operation {
	return huma.Operation{
		OperationID: "lookup-weather",
		Method:      http.MethodGet,
		Path:        "/api/lookup/weather",
		Summary:     "Current weather for the served municipality",
		Tags:        []string{"lookup"},
		Middlewares: h.middleware,
	}
}
