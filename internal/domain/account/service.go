package account

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/exp/slog"
)

type Servicer interface {
	Initialize(ctx context.Context) error
	List(ctx context.Context) ([]User, error)
	FindByEmail(ctx context.Context, email string) (User, error)
	Authenticate(ctx context.Context, email, password string) (User, error)
	Register(ctx context.Context, req RegisterRequest) (User, error)
	Login(ctx context.Context, u User) (Session, error)
	CurrentSession(ctx context.Context) (Session, bool)
	Logout(ctx context.Context) error
}

type RegisterRequest struct {
	Name     string
	Email    string
	Password string
	Metadata map[string]any
}

type Service struct {
	repo      Repository
	sessions  SessionRepository
	validator Validator
	log       *slog.Logger
}

func NewService(repo Repository, sessions SessionRepository, validator Validator, log *slog.Logger) *Service {
	return &Service{
		repo:      repo,
		sessions:  sessions,
		validator: validator,
		log:       log.With(slog.String("component", "account_service")),
	}
}

// Initialize makes sure the persisted user collection exists. Idempotent.
func (s *Service) Initialize(ctx context.Context) error {
	return s.repo.Init(ctx)
}

// List returns the full user collection in insertion order. An unreadable
// collection is treated as empty so the UI layer can always continue.
func (s *Service) List(ctx context.Context) ([]User, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		s.log.Warn("user collection unreadable, treating as empty", "error", err)
		return nil, nil
	}
	return users, nil
}

// FindByEmail matches case-insensitively and returns the first match.
func (s *Service) FindByEmail(ctx context.Context, email string) (User, error) {
	users, _ := s.List(ctx)
	for _, u := range users {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return User{}, ErrNotFound
}

// Authenticate requires a case-insensitive email match and an exact
// password match. Both failure modes come back as ErrInvalidAuth.
func (s *Service) Authenticate(ctx context.Context, email, password string) (User, error) {
	users, _ := s.List(ctx)
	for _, u := range users {
		if strings.EqualFold(u.Email, email) && u.Password == password {
			return u, nil
		}
	}
	return User{}, ErrInvalidAuth
}

func (s *Service) Register(ctx context.Context, req RegisterRequest) (User, error) {
	if err := s.validator.ValidateRegister(req.Name, req.Email, req.Password); err != nil {
		s.log.Debug("registration rejected", "email", req.Email, "error", err)
		return User{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if _, err := s.FindByEmail(ctx, req.Email); err == nil {
		return User{}, ErrEmailTaken
	}

	stored, err := s.repo.Append(ctx, User{
		Name:     strings.TrimSpace(req.Name),
		Email:    strings.ToLower(strings.TrimSpace(req.Email)),
		Password: req.Password,
		Metadata: req.Metadata,
	})
	if err != nil {
		return User{}, fmt.Errorf("persist user: %w", err)
	}

	s.log.Info("user registered", "id", stored.ID, "email", stored.Email)
	return stored, nil
}

// Login fills the session slot with the user minus the password,
// overwriting whatever session was there before.
func (s *Service) Login(ctx context.Context, u User) (Session, error) {
	sess := u.Session()
	if err := s.sessions.Put(ctx, sess); err != nil {
		return Session{}, fmt.Errorf("persist session: %w", err)
	}
	return sess, nil
}

// CurrentSession returns the active session, or false when the slot is
// empty or unreadable.
func (s *Service) CurrentSession(ctx context.Context) (Session, bool) {
	sess, ok, err := s.sessions.Get(ctx)
	if err != nil {
		s.log.Debug("session slot unreadable", "error", err)
		return Session{}, false
	}
	return sess, ok
}

func (s *Service) Logout(ctx context.Context) error {
	return s.sessions.Clear(ctx)
}
