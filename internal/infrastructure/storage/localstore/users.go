package localstore

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"golang.org/x/exp/slog"

	"resolucity/internal/domain/account"
	"resolucity/internal/infrastructure/storage/kv"
)

type UserRepository struct {
	kv  kv.Store
	log *slog.Logger
	ids idSource
}

func NewUserRepository(store kv.Store, log *slog.Logger) *UserRepository {
	return &UserRepository{
		kv:  store,
		log: log.With(slog.String("component", "user_repository")),
	}
}

// Init writes an empty collection when the key is absent. Idempotent.
func (r *UserRepository) Init(ctx context.Context) error {
	_, ok, err := r.kv.Load(ctx, UsersKey)
	if err != nil {
		return fmt.Errorf("init users: %w", err)
	}
	if ok {
		return nil
	}
	if err := r.kv.Save(ctx, UsersKey, []byte("[]")); err != nil {
		return fmt.Errorf("init users: %w", err)
	}
	return nil
}

func (r *UserRepository) List(ctx context.Context) ([]account.User, error) {
	raw, ok, err := r.kv.Load(ctx, UsersKey)
	if err != nil {
		return nil, fmt.Errorf("load users: %w", err)
	}
	if !ok {
		return nil, nil
	}

	var users []account.User
	if err := json.Unmarshal(raw, &users); err != nil {
		return nil, fmt.Errorf("%w: users: %v", ErrCorruptData, err)
	}
	return users, nil
}

// Append assigns the id and creation timestamp, appends and writes the
// whole collection back. A corrupt collection is replaced rather than kept.
func (r *UserRepository) Append(ctx context.Context, u account.User) (account.User, error) {
	users, err := r.List(ctx)
	if err != nil {
		r.log.Warn("replacing unreadable user collection", "error", err)
		users = nil
	}

	u.ID = r.ids.next()
	u.CreatedAt = time.UnixMilli(u.ID).UTC().Format(time.RFC3339)
	users = append(users, u)

	raw, err := json.Marshal(users)
	if err != nil {
		return account.User{}, fmt.Errorf("encode users: %w", err)
	}
	if err := r.kv.Save(ctx, UsersKey, raw); err != nil {
		return account.User{}, fmt.Errorf("save users: %w", err)
	}
	return u, nil
}
