package account

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"resolucity/internal/clients/agify"
	"resolucity/internal/domain/account"
)

// Handler is the form layer over the account store: it validates nothing
// itself beyond what the store's validator enforces, but it owns the
// best-effort metadata lookup the registration form used to do.
type Handler struct {
	service    account.Servicer
	ages       *agify.Client
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service account.Servicer, ages *agify.Client, log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		ages:       ages,
		log:        log,
		middleware: middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.registerOp(), h.register)
	huma.Register(api, h.loginOp(), h.login)
	huma.Register(api, h.logoutOp(), h.logout)
	huma.Register(api, h.sessionOp(), h.session)
}

func (h *Handler) register(ctx context.Context, input *registerInput) (*registerOutput, error) {
	var metadata map[string]any
	if h.ages != nil {
		metadata = h.ages.EstimateAge(ctx, input.Body.Name)
	}

	stored, err := h.service.Register(ctx, account.RegisterRequest{
		Name:     input.Body.Name,
		Email:    input.Body.Email,
		Password: input.Body.Password,
		Metadata: metadata,
	})
	if err != nil {
		return &registerOutput{
			Body: RegisterResponse{Status: "Error", Error: err.Error()},
		}, nil
	}

	return &registerOutput{
		Body: RegisterResponse{ID: stored.ID, Status: "Ok"},
	}, nil
}

func (h *Handler) login(ctx context.Context, input *loginInput) (*loginOutput, error) {
	u, err := h.service.Authenticate(ctx, input.Body.Email, input.Body.Password)
	if err != nil {
		return &loginOutput{
			Body: LoginResponse{Status: "Error", Error: "Invalid credentials"},
		}, nil
	}

	sess, err := h.service.Login(ctx, u)
	if err != nil {
		h.log.Error("fill session slot", "error", err)
		return &loginOutput{
			Body: LoginResponse{Status: "Error", Error: err.Error()},
		}, nil
	}

	return &loginOutput{
		Body: LoginResponse{Status: "Ok", Session: &sess},
	}, nil
}

func (h *Handler) logout(ctx context.Context, _ *struct{}) (*logoutOutput, error) {
	if err := h.service.Logout(ctx); err != nil {
		h.log.Error("clear session slot", "error", err)
		return nil, huma.Error500InternalServerError("could not clear session")
	}
	return &logoutOutput{Body: LogoutResponse{Status: "Ok"}}, nil
}

func (h *Handler) session(ctx context.Context, _ *struct{}) (*sessionOutput, error) {
	sess, ok := h.service.CurrentSession(ctx)
	if !ok {
		return &sessionOutput{Body: SessionResponse{Active: false}}, nil
	}
	return &sessionOutput{Body: SessionResponse{Active: true, Session: &sess}}, nil
}
