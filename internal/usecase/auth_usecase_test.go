package usecase

import (
	"testing"

	"portfolio-backend/pkg/jwt"
	"portfolio-backend/pkg/logger"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func newTestAuthUseCase(t *testing.T, email, password string) AuthUseCase {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("Failed to hash password: %v", err)
	}
	return NewAuthUseCase(email, string(hash), jwt.NewService("test-secret-key"), logger.New())
}

func TestLogin_Success(t *testing.T) {
	uc := newTestAuthUseCase(t, "admin@example.com", "correct-horse")

	token, err := uc.Login("admin@example.com", "correct-horse")

	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	// The issued token carries the admin identity
	claims, err := jwt.NewService("test-secret-key").ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "admin@example.com", claims.Email)
}

func TestLogin_WrongPassword(t *testing.T) {
	uc := newTestAuthUseCase(t, "admin@example.com", "correct-horse")

	_, err := uc.Login("admin@example.com", "battery-staple")

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_WrongEmail(t *testing.T) {
	uc := newTestAuthUseCase(t, "admin@example.com", "correct-horse")

	_, err := uc.Login("intruder@example.com", "correct-horse")

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_EmptyCredentials(t *testing.T) {
	uc := newTestAuthUseCase(t, "admin@example.com", "correct-horse")

	_, err := uc.Login("", "")

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
