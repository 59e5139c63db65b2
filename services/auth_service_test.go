package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/vacinalettipaolo93-sudo/Gestionale-tornei-sub000/models"
	"github.com/vacinalettipaolo93-sudo/Gestionale-tornei-sub000/repositories"
)

var _ repositories.UserRepository = (*mockUserRepository)(nil)

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *mockUserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	args := m.Called(ctx, id)
	if u := args.Get(0); u != nil {
		return u.(*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if u := args.Get(0); u != nil {
		return u.(*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepository) Update(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *mockUserRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestRegisterHashesPasswordAndDefaultsToOrganizer(t *testing.T) {
	repo := new(mockUserRepository)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*models.User")).Return(nil)

	svc := NewAuthService(repo, seqIDs())
	user, err := svc.Register(context.Background(), RegisterInput{
		Name:     "  Anna  ",
		Email:    "Anna@Example.com",
		Password: "correct horse",
	})
	require.NoError(t, err)

	assert.Equal(t, "Anna", user.Name)
	assert.Equal(t, "anna@example.com", user.Email)
	assert.Equal(t, models.RoleOrganizer, user.Role)
	assert.NotEqual(t, "correct horse", user.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("correct horse")))
	repo.AssertExpectations(t)
}

func TestRegisterRejectsShortPassword(t *testing.T) {
	svc := NewAuthService(new(mockUserRepository), seqIDs())
	_, err := svc.Register(context.Background(), RegisterInput{
		Name:     "Anna",
		Email:    "anna@example.com",
		Password: "short",
	})
	assert.ErrorIs(t, err, ErrPasswordTooShort)
}

func TestRegisterMapsEmailConflict(t *testing.T) {
	repo := new(mockUserRepository)
	repo.On("Create", mock.Anything, mock.Anything).Return(repositories.ErrUserEmailConflict)

	svc := NewAuthService(repo, seqIDs())
	_, err := svc.Register(context.Background(), RegisterInput{
		Name:     "Anna",
		Email:    "anna@example.com",
		Password: "correct horse",
	})
	assert.ErrorIs(t, err, ErrUserEmailConflict)
}

func TestLoginWrongPassword(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("correct horse"), bcrypt.MinCost)
	require.NoError(t, err)

	repo := new(mockUserRepository)
	repo.On("GetByEmail", mock.Anything, "anna@example.com").Return(&models.User{
		ID:           "u1",
		Email:        "anna@example.com",
		PasswordHash: string(hash),
		Role:         models.RoleOrganizer,
	}, nil)

	svc := NewAuthService(repo, seqIDs())
	_, err = svc.Login(context.Background(), models.Credentials{Email: "anna@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrAuthInvalidCredentials)
}

func TestLoginUnknownEmailHidesExistence(t *testing.T) {
	repo := new(mockUserRepository)
	repo.On("GetByEmail", mock.Anything, "ghost@example.com").Return(nil, repositories.ErrUserNotFound)

	svc := NewAuthService(repo, seqIDs())
	_, err := svc.Login(context.Background(), models.Credentials{Email: "ghost@example.com", Password: "whatever"})
	assert.ErrorIs(t, err, ErrAuthInvalidCredentials)
}
