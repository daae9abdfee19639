package dashboard

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) seriesOp() huma.Operation {
	return huma.Operation{
		OperationID: "dashboard-series",
		Method:      http.MethodGet,
		Path:        "/api/dashboard",
		Summary:     "Chart series derived from the report collection",
		Tags:        []string{"dashboard"},
		Middlewares: h.middleware,
	}
}
