package usecase

import (
	"crypto/subtle"
	"fmt"

	"portfolio-backend/pkg/jwt"
	"portfolio-backend/pkg/logger"

	"golang.org/x/crypto/bcrypt"
)

type AuthUseCase interface {
	Login(email, password string) (string, error)
}

type authUseCase struct {
	adminEmail        string
	adminPasswordHash string
	jwtService        *jwt.Service
	logger            *logger.Logger
}

func NewAuthUseCase(adminEmail, adminPasswordHash string, jwtService *jwt.Service, logger *logger.Logger) AuthUseCase {
	return &authUseCase{
		adminEmail:        adminEmail,
		adminPasswordHash: adminPasswordHash,
		jwtService:        jwtService,
		logger:            logger,
	}
}

// Login checks the credentials against the single configured admin identity
// and issues a signed token with a fixed 24h expiry. This is not a multi-user
// system: there is no user table to consult.
func (uc *authUseCase) Login(email, password string) (string, error) {
	emailMatch := subtle.ConstantTimeCompare([]byte(email), []byte(uc.adminEmail)) == 1

	// Always run the bcrypt comparison so a wrong email costs the same as a
	// wrong password.
	passwordErr := bcrypt.CompareHashAndPassword([]byte(uc.adminPasswordHash), []byte(password))

	if !emailMatch || passwordErr != nil {
		uc.logger.Warn("Failed login attempt for %s", email)
		return "", ErrInvalidCredentials
	}

	token, err := uc.jwtService.GenerateToken(uc.adminEmail)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return token, nil
}
