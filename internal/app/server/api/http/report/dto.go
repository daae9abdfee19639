package report

import "resolucity/internal/domain/report"

// CreateRequest mirrors the complaint form, masks included.
type CreateRequest struct {
	Name        string `json:"name" example:"Ana Silva"`
	CPF         string `json:"cpf" example:"123.456.789-00"`
	BirthDate   string `json:"birthDate" example:"1990-05-12"`
	Phone       string `json:"phone" example:"(24) 99999-1234"`
	Email       string `json:"email" example:"ana@ex.com"`
	Category    string `json:"category" example:"Drenagem"`
	CEP         string `json:"cep,omitempty" example:"27310-020"`
	Address     string `json:"address,omitempty" doc:"Filled from the CEP when omitted"`
	Description string `json:"description"`
}

type createInput struct {
	Body CreateRequest
}

type createOutput struct {
	Body CreateResponse
}

type CreateResponse struct {
	ID     int64             `json:"id,omitempty"`
	Status string            `json:"status"`
	Error  string            `json:"error,omitempty"`
	Fields map[string]string `json:"fields,omitempty" doc:"Per-field validation messages"`
}

type listOutput struct {
	Body ListResponse
}

type ListResponse struct {
	Reports []report.Report `json:"reports"`
	Total   int             `json:"total"`
}

type deleteInput struct {
	ID int64 `path:"id"`
}

type deleteOutput struct {
	Body DeleteResponse
}

type DeleteResponse struct {
	Status string `json:"status"`
}
