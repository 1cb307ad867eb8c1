package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/rafflehq/raffle-sales-api/internal/domain"
	"github.com/rafflehq/raffle-sales-api/internal/repository"
)

type stubAuthRepo struct {
	created *domain.User
	found   domain.User
	findErr error
}

func (s *stubAuthRepo) Create(ctx context.Context, user domain.User) (domain.User, error) {
	s.created = &user
	user.ID = 1

	return user, nil
}

func (s *stubAuthRepo) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	return s.found, s.findErr
}

func TestSignup_HashesPassword(t *testing.T) {
	repo := &stubAuthRepo{}
	svc := NewAuthService(repo)

	_, err := svc.Signup(context.Background(), domain.User{
		Email:    "seller@example.com",
		Name:     "Sam",
		Password: "hunter2hunter2",
	})

	require.NoError(t, err)
	require.NotNil(t, repo.created)
	assert.NotEqual(t, "hunter2hunter2", repo.created.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(repo.created.Password), []byte("hunter2hunter2")))
}

func TestLogin_WrongPassword(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("correct-horse1"), bcrypt.DefaultCost)
	require.NoError(t, err)

	svc := NewAuthService(&stubAuthRepo{
		found: domain.User{Email: "seller@example.com", Password: string(hash)},
	})

	_, err = svc.Login(context.Background(), "seller@example.com", "wrong")
	assert.ErrorIs(t, err, ErrWrongPassword)
}

func TestLogin_UnknownUser(t *testing.T) {
	svc := NewAuthService(&stubAuthRepo{findErr: repository.ErrUserNotFound})

	_, err := svc.Login(context.Background(), "ghost@example.com", "whatever1")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestLogin_BuyerWithoutPasswordCannotLogIn(t *testing.T) {
	// Users created through the buyer upsert have an empty hash.
	svc := NewAuthService(&stubAuthRepo{
		found: domain.User{Email: "buyer@example.com", Password: ""},
	})

	_, err := svc.Login(context.Background(), "buyer@example.com", "anything1")
	assert.ErrorIs(t, err, ErrWrongPassword)
}
