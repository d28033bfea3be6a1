package services

import (
	"context"
	"errors"
	"fmt"

	"rest-playground/internal/models"
	"rest-playground/internal/repositories"
	"rest-playground/internal/utils"
)

type AuthService struct {
	users  UserStore
	tokens TokenStore
	secret []byte
}

func NewAuthService(users UserStore, tokens TokenStore, secret []byte) *AuthService {
	return &AuthService{
		users:  users,
		tokens: tokens,
		secret: secret,
	}
}

// Login authenticates the credentials and issues a bearer token. The jti is
// persisted so the token can be revoked later.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("look up user: %w", err)
	}

	if err := utils.VerifyPassword(user.Password, password); err != nil {
		return "", ErrInvalidCredentials
	}

	signed, jti, err := utils.GenerateToken(user.ID, s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	token := &models.Token{JTI: jti, UserID: user.ID}
	if err := s.tokens.Create(ctx, token); err != nil {
		return "", fmt.Errorf("persist token: %w", err)
	}

	return signed, nil
}

// Logout revokes every outstanding token of the user, not only the one the
// request carried.
func (s *AuthService) Logout(ctx context.Context, userID int64) error {
	return s.tokens.DeleteByUser(ctx, userID)
}
