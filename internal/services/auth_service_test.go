package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rest-playground/internal/models"
	"rest-playground/internal/repositories"
	"rest-playground/internal/utils"
)

var testSecret = []byte("test-secret")

func TestLoginUnknownEmail(t *testing.T) {
	users := &fakeUserStore{
		getByEmailFn: func(ctx context.Context, email string) (*models.User, error) {
			return nil, repositories.ErrNotFound
		},
	}

	svc := NewAuthService(users, &fakeTokenStore{}, testSecret)

	_, err := svc.Login(context.Background(), "nobody@example.com", "secret")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginWrongPassword(t *testing.T) {
	hash, err := utils.HashPassword("right")
	require.NoError(t, err)

	users := &fakeUserStore{
		getByEmailFn: func(ctx context.Context, email string) (*models.User, error) {
			return &models.User{ID: 1, Email: email, Password: hash}, nil
		},
	}

	svc := NewAuthService(users, &fakeTokenStore{}, testSecret)

	_, err = svc.Login(context.Background(), "ada@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginIssuesAndPersistsToken(t *testing.T) {
	hash, err := utils.HashPassword("secret")
	require.NoError(t, err)

	users := &fakeUserStore{
		getByEmailFn: func(ctx context.Context, email string) (*models.User, error) {
			return &models.User{ID: 42, Email: email, Password: hash}, nil
		},
	}

	var persisted *models.Token
	tokens := &fakeTokenStore{
		createFn: func(ctx context.Context, token *models.Token) error {
			persisted = token
			return nil
		},
	}

	svc := NewAuthService(users, tokens, testSecret)

	signed, err := svc.Login(context.Background(), "ada@example.com", "secret")
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	// The persisted jti must match the one inside the issued token.
	claims, err := utils.VerifyToken(signed, testSecret)
	require.NoError(t, err)

	require.NotNil(t, persisted)
	assert.Equal(t, int64(42), persisted.UserID)
	assert.Equal(t, persisted.JTI.String(), claims.ID)
}

func TestLogoutRevokesAllTokens(t *testing.T) {
	var gotUserID int64
	tokens := &fakeTokenStore{
		deleteByUserFn: func(ctx context.Context, userID int64) error {
			gotUserID = userID
			return nil
		},
	}

	svc := NewAuthService(&fakeUserStore{}, tokens, testSecret)

	require.NoError(t, svc.Logout(context.Background(), 7))
	assert.Equal(t, int64(7), gotUserID)
}
