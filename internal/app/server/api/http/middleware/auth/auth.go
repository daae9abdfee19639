package auth

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"resolucity/internal/domain/account"
)

// Auth gates operations behind the session slot: no active session means
// 401, an active session lands in the request context.
type Auth struct {
	accounts account.Servicer
	log      *slog.Logger
}

func New(accounts account.Servicer, log *slog.Logger) *Auth {
	return &Auth{
		accounts: accounts,
		log:      log.With(slog.String("component", "auth_middleware")),
	}
}

type contextKey string

const sessionKey contextKey = "session"

func (a *Auth) Middleware() func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		sess, ok := a.accounts.CurrentSession(ctx.Context())
		if !ok {
			a.log.Debug("request without active session", "path", ctx.URL().Path)
			ctx.SetStatus(http.StatusUnauthorized)
			ctx.SetHeader("Content-Type", "application/json")
			_ = json.NewEncoder(ctx.BodyWriter()).Encode(map[string]string{
				"error": "Unauthorized",
			})
			return
		}

		next(huma.WithContext(ctx, WithSession(ctx.Context(), sess)))
	}
}

// WithSession returns a context carrying the given session.
func WithSession(ctx context.Context, sess account.Session) context.Context {
	return context.WithValue(ctx, sessionKey, sess)
}

// GetSession returns the session stored by the middleware.
func GetSession(ctx context.Context) (account.Session, bool) {
	sess, ok := ctx.Value(sessionKey).(account.Session)
	return sess, ok
}
