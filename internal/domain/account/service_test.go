package account

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/exp/slog"
)

// MockRepository is a mock implementation of the Repository interface for testing
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Init(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRepository) List(ctx context.Context) ([]User, error) {
	args := m.Called(ctx)
	users, _ := args.Get(0).([]User)
	return users, args.Error(1)
}

func (m *MockRepository) Append(ctx context.Context, u User) (User, error) {
	args := m.Called(ctx, u)
	return args.Get(0).(User), args.Error(1)
}

// MockSessionRepository is a mock implementation of the SessionRepository interface
type MockSessionRepository struct {
	mock.Mock
}

func (m *MockSessionRepository) Get(ctx context.Context) (Session, bool, error) {
	args := m.Called(ctx)
	return args.Get(0).(Session), args.Bool(1), args.Error(2)
}

func (m *MockSessionRepository) Put(ctx context.Context, s Session) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockSessionRepository) Clear(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func newTestService(repo Repository, sessions SessionRepository) *Service {
	return NewService(repo, sessions, NewRegisterValidator(), slog.Default())
}

func TestService_Register(t *testing.T) {
	mockRepo := new(MockRepository)
	mockSessions := new(MockSessionRepository)
	service := newTestService(mockRepo, mockSessions)

	mockRepo.On("List", mock.Anything).Return([]User{}, nil)
	mockRepo.On("Append", mock.Anything, mock.MatchedBy(func(u User) bool {
		return u.Name == "Ana Silva" && u.Email == "ana@email.com" && u.Password == "senha123"
	})).Return(User{ID: 1700000000000, Name: "Ana Silva", Email: "ana@email.com", Password: "senha123", CreatedAt: "2023-11-14T22:13:20Z"}, nil)

	stored, err := service.Register(context.Background(), RegisterRequest{
		Name:     "Ana Silva",
		Email:    "Ana@Email.com",
		Password: "senha123",
	})
	assert.NoError(t, err)
	assert.Equal(t, int64(1700000000000), stored.ID)
	assert.Equal(t, "ana@email.com", stored.Email)

	mockRepo.AssertExpectations(t)
}

func TestService_Register_InvalidInput(t *testing.T) {
	tests := []struct {
		name     string
		req      RegisterRequest
		wantPart string
	}{
		{
			name:     "short name",
			req:      RegisterRequest{Name: "Al", Email: "al@email.com", Password: "senha123"},
			wantPart: "name",
		},
		{
			name:     "bad email",
			req:      RegisterRequest{Name: "Ana Silva", Email: "ana-email.com", Password: "senha123"},
			wantPart: "email",
		},
		{
			name:     "short password",
			req:      RegisterRequest{Name: "Ana Silva", Email: "ana@email.com", Password: "12345"},
			wantPart: "password",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockRepository)
			service := newTestService(mockRepo, new(MockSessionRepository))

			_, err := service.Register(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.Contains(t, err.Error(), tt.wantPart)
			mockRepo.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
		})
	}
}

func TestService_Register_EmailTaken(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(mockRepo, new(MockSessionRepository))

	existing := []User{{ID: 1, Name: "Ana Silva", Email: "ana@email.com", Password: "senha123"}}
	mockRepo.On("List", mock.Anything).Return(existing, nil)

	// Duplicate detection must ignore case.
	_, err := service.Register(context.Background(), RegisterRequest{
		Name:     "Outra Ana",
		Email:    "ANA@EMAIL.COM",
		Password: "outrasenha",
	})
	assert.ErrorIs(t, err, ErrEmailTaken)
	mockRepo.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
}

func TestService_FindByEmail_CaseInsensitive(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(mockRepo, new(MockSessionRepository))

	mockRepo.On("List", mock.Anything).Return([]User{
		{ID: 1, Name: "Ana Silva", Email: "ana@email.com"},
		{ID: 2, Name: "Bruno Costa", Email: "bruno@email.com"},
	}, nil)

	u, err := service.FindByEmail(context.Background(), "Ana@Email.COM")
	assert.NoError(t, err)
	assert.Equal(t, int64(1), u.ID)

	_, err = service.FindByEmail(context.Background(), "carla@email.com")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_Authenticate(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(mockRepo, new(MockSessionRepository))

	mockRepo.On("List", mock.Anything).Return([]User{
		{ID: 1, Name: "Ana Silva", Email: "ana@email.com", Password: "senha123"},
	}, nil)

	u, err := service.Authenticate(context.Background(), "ANA@email.com", "senha123")
	assert.NoError(t, err)
	assert.Equal(t, int64(1), u.ID)

	// Password comparison stays exact.
	_, err = service.Authenticate(context.Background(), "ana@email.com", "SENHA123")
	assert.ErrorIs(t, err, ErrInvalidAuth)

	_, err = service.Authenticate(context.Background(), "ninguem@email.com", "senha123")
	assert.ErrorIs(t, err, ErrInvalidAuth)
}

func TestService_List_UnreadableCollection(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(mockRepo, new(MockSessionRepository))

	mockRepo.On("List", mock.Anything).Return(nil, errors.New("corrupt json"))

	users, err := service.List(context.Background())
	assert.NoError(t, err)
	assert.Empty(t, users)
}

func TestService_Login_StripsPassword(t *testing.T) {
	mockSessions := new(MockSessionRepository)
	service := newTestService(new(MockRepository), mockSessions)

	u := User{ID: 5, Name: "Ana Silva", Email: "ana@email.com", Password: "senha123", CreatedAt: "2024-01-01T00:00:00Z"}
	mockSessions.On("Put", mock.Anything, mock.MatchedBy(func(s Session) bool {
		return s.ID == u.ID && s.Email == u.Email && s.Name == u.Name
	})).Return(nil)

	sess, err := service.Login(context.Background(), u)
	assert.NoError(t, err)
	assert.Equal(t, u.ID, sess.ID)
	assert.Equal(t, u.CreatedAt, sess.CreatedAt)

	mockSessions.AssertExpectations(t)
}

func TestService_CurrentSession(t *testing.T) {
	mockSessions := new(MockSessionRepository)
	service := newTestService(new(MockRepository), mockSessions)

	mockSessions.On("Get", mock.Anything).Return(Session{ID: 5, Email: "ana@email.com"}, true, nil).Once()
	sess, ok := service.CurrentSession(context.Background())
	assert.True(t, ok)
	assert.Equal(t, "ana@email.com", sess.Email)

	mockSessions.On("Get", mock.Anything).Return(Session{}, false, nil).Once()
	_, ok = service.CurrentSession(context.Background())
	assert.False(t, ok)

	// Unreadable slot reads as logged out.
	mockSessions.On("Get", mock.Anything).Return(Session{}, false, errors.New("corrupt json")).Once()
	_, ok = service.CurrentSession(context.Background())
	assert.False(t, ok)
}

func TestService_Logout(t *testing.T) {
	mockSessions := new(MockSessionRepository)
	service := newTestService(new(MockRepository), mockSessions)

	mockSessions.On("Clear", mock.Anything).Return(nil)
	assert.NoError(t, service.Logout(context.Background()))
	mockSessions.AssertExpectations(t)
}
