package account

import (
	"context"
)

// Repository persists the user collection as a whole. Append assigns the
// id and creation timestamp and returns the stored record.
type Repository interface {
	Init(ctx context.Context) error
	List(ctx context.Context) ([]User, error)
	Append(ctx context.Context, u User) (User, error)
}

// SessionRepository manages the single session slot. Put overwrites any
// prior session, last-write-wins.
type SessionRepository interface {
	Get(ctx context.Context) (Session, bool, error)
	Put(ctx context.Context, s Session) error
	Clear(ctx context.Context) error
}
