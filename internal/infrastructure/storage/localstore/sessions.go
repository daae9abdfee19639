package localstore

import (
	"context"
	"encoding/json"
	"fmt"

	"golang.org/x/exp/slog"

	"resolucity/internal/domain/account"
	"resolucity/internal/infrastructure/storage/kv"
)

// SessionRepository owns the single session slot.
type SessionRepository struct {
	kv  kv.Store
	log *slog.Logger
}

func NewSessionRepository(store kv.Store, log *slog.Logger) *SessionRepository {
	return &SessionRepository{
		kv:  store,
		log: log.With(slog.String("component", "session_repository")),
	}
}

func (r *SessionRepository) Get(ctx context.Context) (account.Session, bool, error) {
	raw, ok, err := r.kv.Load(ctx, SessionKey)
	if err != nil {
		return account.Session{}, false, fmt.Errorf("load session: %w", err)
	}
	if !ok {
		return account.Session{}, false, nil
	}

	var sess account.Session
	if err := json.Unmarshal(raw, &sess); err != nil {
		return account.Session{}, false, fmt.Errorf("%w: session: %v", ErrCorruptData, err)
	}
	return sess, true, nil
}

func (r *SessionRepository) Put(ctx context.Context, sess account.Session) error {
	raw, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := r.kv.Save(ctx, SessionKey, raw); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

func (r *SessionRepository) Clear(ctx context.Context) error {
	if err := r.kv.Delete(ctx, SessionKey); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}
