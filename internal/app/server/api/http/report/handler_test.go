package report

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"resolucity/internal/app/server/api/http/middleware/auth"
	"resolucity/internal/clients/viacep"
	"resolucity/internal/domain/account"
	"resolucity/internal/domain/report"
	"resolucity/internal/infrastructure/storage/kv"
	"resolucity/internal/infrastructure/storage/localstore"
)

type testEnv struct {
	handler  *Handler
	reports  report.Servicer
	accounts account.Servicer
}

func newTestEnv(t *testing.T, viacepURL string) testEnv {
	t.Helper()
	log := slog.Default()
	store := kv.NewMemory()

	accounts := account.NewService(
		localstore.NewUserRepository(store, log),
		localstore.NewSessionRepository(store, log),
		account.NewRegisterValidator(),
		log,
	)
	reports := report.NewService(localstore.NewReportRepository(store, log), log)

	var geo *viacep.Client
	if viacepURL != "" {
		geo = viacep.NewWithBaseURL(viacepURL, log)
	}

	handler := NewHandler(reports, accounts, report.NewFormValidator(), geo, log, huma.Middlewares{}, huma.Middlewares{})
	return testEnv{handler: handler, reports: reports, accounts: accounts}
}

func validCreateRequest() CreateRequest {
	return CreateRequest{
		Name:        "Ana Silva",
		CPF:         "123.456.789-01",
		BirthDate:   "1990-05-10",
		Phone:       "(24) 99999-8888",
		Email:       "ana@email.com",
		Category:    "Infraestrutura",
		Address:     "Rua das Flores, Centro - Resende/RJ",
		Description: "Buraco grande na pista há semanas",
	}
}

func TestHandler_Create_Anonymous(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, "")

	out, err := env.handler.create(ctx, &createInput{Body: validCreateRequest()})
	require.NoError(t, err)
	assert.Equal(t, "Ok", out.Body.Status)
	assert.NotZero(t, out.Body.ID)

	all, err := env.reports.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, report.OwnerAnonymous, all[0].OwnerKey)
	assert.Equal(t, report.StatusPending, all[0].Status)
}

func TestHandler_Create_OwnedBySession(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, "")

	u, err := env.accounts.Register(ctx, account.RegisterRequest{
		Name: "Ana Silva", Email: "ana@email.com", Password: "senha123",
	})
	require.NoError(t, err)
	_, err = env.accounts.Login(ctx, u)
	require.NoError(t, err)

	out, err := env.handler.create(ctx, &createInput{Body: validCreateRequest()})
	require.NoError(t, err)
	assert.Equal(t, "Ok", out.Body.Status)

	all, err := env.reports.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "ana@email.com", all[0].OwnerKey)
}

func TestHandler_Create_ResolvesAddressFromCEP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"cep":"27511-000","logradouro":"Rua das Flores","bairro":"Centro","localidade":"Resende","uf":"RJ"}`))
	}))
	defer srv.Close()

	ctx := context.Background()
	env := newTestEnv(t, srv.URL)

	body := validCreateRequest()
	body.Address = ""
	body.CEP = "27511-000"

	out, err := env.handler.create(ctx, &createInput{Body: body})
	require.NoError(t, err)
	assert.Equal(t, "Ok", out.Body.Status)

	all, err := env.reports.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Rua das Flores, Centro - Resende/RJ", all[0].Address)
}

func TestHandler_Create_ValidationErrors(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, "")

	body := validCreateRequest()
	body.Description = "curta"
	body.CPF = "123"

	out, err := env.handler.create(ctx, &createInput{Body: body})
	require.NoError(t, err)
	assert.Equal(t, "Error", out.Body.Status)
	assert.Contains(t, out.Body.Fields, "description")
	assert.Contains(t, out.Body.Fields, "cpf")

	all, err := env.reports.ListAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestHandler_List(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, "")

	_, err := env.reports.Create(ctx, report.CreateRequest{Category: "Obras"}, "ana@email.com")
	require.NoError(t, err)
	second, err := env.reports.Create(ctx, report.CreateRequest{Category: "Drenagem"}, "ana@email.com")
	require.NoError(t, err)
	_, err = env.reports.Create(ctx, report.CreateRequest{Category: "Outros"}, "bruno@email.com")
	require.NoError(t, err)

	authed := auth.WithSession(ctx, account.Session{ID: 1, Email: "ana@email.com"})
	out, err := env.handler.list(authed, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, out.Body.Total)
	require.Len(t, out.Body.Reports, 2)
	assert.Equal(t, second.ID, out.Body.Reports[0].ID)
}

func TestHandler_List_NoSession(t *testing.T) {
	env := newTestEnv(t, "")

	_, err := env.handler.list(context.Background(), nil)
	require.Error(t, err)

	var status huma.StatusError
	require.ErrorAs(t, err, &status)
	assert.Equal(t, http.StatusUnauthorized, status.GetStatus())
}

func TestHandler_List_EmptyCollection(t *testing.T) {
	env := newTestEnv(t, "")

	authed := auth.WithSession(context.Background(), account.Session{ID: 1, Email: "ana@email.com"})
	out, err := env.handler.list(authed, nil)
	require.NoError(t, err)
	assert.Zero(t, out.Body.Total)
	assert.NotNil(t, out.Body.Reports)
}

func TestHandler_Delete(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, "")

	stored, err := env.reports.Create(ctx, report.CreateRequest{Category: "Obras"}, "ana@email.com")
	require.NoError(t, err)

	authed := auth.WithSession(ctx, account.Session{ID: 1, Email: "ana@email.com"})
	out, err := env.handler.delete(authed, &deleteInput{ID: stored.ID})
	require.NoError(t, err)
	assert.Equal(t, "Ok", out.Body.Status)

	all, err := env.reports.ListAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestHandler_Delete_NoSession(t *testing.T) {
	env := newTestEnv(t, "")

	_, err := env.handler.delete(context.Background(), &deleteInput{ID: 1})
	require.Error(t, err)

	var status huma.StatusError
	require.ErrorAs(t, err, &status)
	assert.Equal(t, http.StatusUnauthorized, status.GetStatus())
}
