package report

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"resolucity/internal/app/server/api/http/middleware/auth"
	"resolucity/internal/clients/viacep"
	"resolucity/internal/domain/account"
	"resolucity/internal/domain/report"
)

// Handler is the form layer over the report store: it validates the
// submission and resolves the address from the CEP; the store itself
// accepts whatever it is handed.
type Handler struct {
	service   report.Servicer
	accounts  account.Servicer
	validator report.Validator
	geo       *viacep.Client
	log       *slog.Logger

	middleware     huma.Middlewares
	authMiddleware huma.Middlewares
}

func NewHandler(
	service report.Servicer,
	accounts account.Servicer,
	validator report.Validator,
	geo *viacep.Client,
	log *slog.Logger,
	middleware huma.Middlewares,
	authMiddleware huma.Middlewares,
) *Handler {
	return &Handler{
		service:        service,
		accounts:       accounts,
		validator:      validator,
		geo:            geo,
		log:            log,
		middleware:     middleware,
		authMiddleware: authMiddleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.createOp(), h.create)
	huma.Register(api, h.listOp(), h.list)
	huma.Register(api, h.deleteOp(), h.delete)
}

func (h *Handler) create(ctx context.Context, input *createInput) (*createOutput, error) {
	body := input.Body

	// Resolve the address from the CEP before validating, the way the
	// form does on blur. Lookup failures fall through to validation.
	if body.Address == "" && body.CEP != "" && h.geo != nil {
		addr, err := h.geo.Lookup(ctx, body.CEP)
		if err != nil {
			h.log.Debug("cep lookup failed", "cep", body.CEP, "error", err)
		} else {
			body.Address = addr.Formatted()
		}
	}

	if err := h.validator.ValidateSubmission(report.Submission{
		Name:        body.Name,
		CPF:         body.CPF,
		BirthDate:   body.BirthDate,
		Phone:       body.Phone,
		Email:       body.Email,
		Category:    body.Category,
		CEP:         body.CEP,
		Address:     body.Address,
		Description: body.Description,
	}); err != nil {
		out := &createOutput{Body: CreateResponse{Status: "Error", Error: err.Error()}}
		var fields report.FieldErrors
		if errors.As(err, &fields) {
			out.Body.Fields = fields
		}
		return out, nil
	}

	owner := report.OwnerAnonymous
	if sess, ok := h.accounts.CurrentSession(ctx); ok {
		owner = sess.Email
	}

	stored, err := h.service.Create(ctx, report.CreateRequest{
		Category:    body.Category,
		Address:     body.Address,
		Description: body.Description,
	}, owner)
	if err != nil {
		return &createOutput{
			Body: CreateResponse{Status: "Error", Error: err.Error()},
		}, nil
	}

	return &createOutput{
		Body: CreateResponse{ID: stored.ID, Status: "Ok"},
	}, nil
}

func (h *Handler) list(ctx context.Context, _ *struct{}) (*listOutput, error) {
	sess, ok := auth.GetSession(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	reports, err := h.service.ListForOwner(ctx, sess.Email)
	if err != nil {
		return nil, err
	}
	if reports == nil {
		reports = []report.Report{}
	}

	return &listOutput{
		Body: ListResponse{Reports: reports, Total: len(reports)},
	}, nil
}

func (h *Handler) delete(ctx context.Context, input *deleteInput) (*deleteOutput, error) {
	if _, ok := auth.GetSession(ctx); !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	if err := h.service.Delete(ctx, input.ID); err != nil {
		return nil, huma.Error500InternalServerError("could not delete report")
	}

	return &deleteOutput{Body: DeleteResponse{Status: "Ok"}}, nil
}
