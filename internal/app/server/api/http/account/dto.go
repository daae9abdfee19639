package account

import "resolucity/internal/domain/account"

type RegisterRequest struct {
	Name     string `json:"name" example:"Ana Silva" doc:"Full name, at least 3 characters"`
	Email    string `json:"email" example:"ana@ex.com" doc:"Unique email, matched case-insensitively"`
	Password string `json:"password" example:"abcdef" doc:"At least 6 characters"`
}

type registerInput struct {
	Body RegisterRequest
}

type registerOutput struct {
	Body RegisterResponse
}

type RegisterResponse struct {
	ID     int64  `json:"user_id,omitempty"`
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginInput struct {
	Body LoginRequest
}

type loginOutput struct {
	Body LoginResponse
}

type LoginResponse struct {
	Status  string           `json:"status"`
	Error   string           `json:"error,omitempty"`
	Session *account.Session `json:"session,omitempty"`
}

type sessionOutput struct {
	Body SessionResponse
}

type SessionResponse struct {
	Active  bool             `json:"active"`
	Session *account.Session `json:"session,omitempty"`
}

type logoutOutput struct {
	Body LogoutResponse
}

type LogoutResponse struct {
	Status string `json:"status"`
}
