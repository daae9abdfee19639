package agify

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/exp/slog"
)

func TestClient_EstimateAge(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Ana", r.URL.Query().Get("name"))
		assert.Equal(t, "BR", r.URL.Query().Get("country_id"))
		w.Write([]byte(`{"name":"Ana","age":34,"count":10000}`))
	}))
	defer srv.Close()

	client := NewWithBaseURL(srv.URL, slog.Default())

	// Only the first name goes out.
	meta := client.EstimateAge(context.Background(), "Ana Silva")
	assert.Equal(t, map[string]any{"estimatedAge": 34}, meta)
}

func TestClient_EstimateAge_NullAge(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"name":"Zyx","age":null,"count":0}`))
	}))
	defer srv.Close()

	client := NewWithBaseURL(srv.URL, slog.Default())

	meta := client.EstimateAge(context.Background(), "Zyx")
	assert.Equal(t, map[string]any{"estimatedAge": "Não estimado"}, meta)
}

func TestClient_EstimateAge_APIDown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client := NewWithBaseURL(srv.URL, slog.Default())

	meta := client.EstimateAge(context.Background(), "Ana Silva")
	assert.Equal(t, map[string]any{"error": "API indisponível"}, meta)
}

func TestClient_EstimateAge_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close()

	client := NewWithBaseURL(srv.URL, slog.Default())

	meta := client.EstimateAge(context.Background(), "Ana Silva")
	assert.Equal(t, map[string]any{"error": "API indisponível"}, meta)
}
