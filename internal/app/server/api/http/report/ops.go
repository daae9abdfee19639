package report

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) createOp() huma.Operation {
	return huma.Operation{
		OperationID: "report-create",
		Method:      http.MethodPost,
		Path:        "/api/reports",
		Summary:     "Submit a complaint report",
		Description: "Anonymous submissions are allowed; a logged-in session owns the report.",
		Tags:        []string{"reports"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "report-list",
		Method:      http.MethodGet,
		Path:        "/api/reports",
		Summary:     "List the caller's reports, newest first",
		Tags:        []string{"reports"},
		Middlewares: h.authMiddleware,
	}
}

func (h *Handler) deleteOp() huma.Operation {
	return huma.Operation{
		OperationID: "report-delete",
		Method:      http.MethodDelete,
		Path:        "/api/reports/{id}",
		Summary:     "Delete a report by id",
		Description: "Deleting an unknown id succeeds silently.",
		Tags:        []string{"reports"},
		Middlewares: h.authMiddleware,
	}
}
