// Package viacep looks up Brazilian postal codes to pre-fill the
// complaint form's address field. Best-effort: callers are expected to
// continue without an address when the lookup fails.
package viacep

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"golang.org/x/exp/slog"
)

const defaultBaseURL = "https://viacep.com.br"

var (
	ErrInvalidCEP = errors.New("cep must have 8 digits")
	ErrNotFound   = errors.New("cep not found")
)

type Address struct {
	CEP      string `json:"cep"`
	Street   string `json:"logradouro"`
	District string `json:"bairro"`
	City     string `json:"localidade"`
	State    string `json:"uf"`
}

// Formatted renders the address the way the form fills its field:
// "logradouro, bairro - localidade/uf".
func (a Address) Formatted() string {
	return fmt.Sprintf("%s, %s - %s/%s", a.Street, a.District, a.City, a.State)
}

type Client struct {
	baseURL string
	http    *http.Client
	log     *slog.Logger
}

func New(log *slog.Logger) *Client {
	return NewWithBaseURL(defaultBaseURL, log)
}

func NewWithBaseURL(baseURL string, log *slog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
		log:     log.With(slog.String("component", "viacep_client")),
	}
}

// Lookup resolves a CEP, mask tolerated ("27310-020" and "27310020" are
// the same code).
func (c *Client) Lookup(ctx context.Context, cep string) (Address, error) {
	clean := digits(cep)
	if len(clean) != 8 {
		return Address{}, ErrInvalidCEP
	}

	url := fmt.Sprintf("%s/ws/%s/json/", c.baseURL, clean)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Address{}, fmt.Errorf("build request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return Address{}, fmt.Errorf("viacep request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Address{}, fmt.Errorf("viacep status %d", resp.StatusCode)
	}

	var body struct {
		Address
		Erro bool `json:"erro"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return Address{}, fmt.Errorf("decode viacep response: %w", err)
	}
	if body.Erro {
		return Address{}, ErrNotFound
	}

	c.log.Debug("cep resolved", "cep", clean, "city", body.City)
	return body.Address, nil
}

func digits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
