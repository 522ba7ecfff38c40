package services

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	apperr "github.com/openslp/trialtrack-backend/internal/pkg/errors"
	"github.com/openslp/trialtrack-backend/internal/pkg/logger"
)

// AuthService pairs a device with the practice: a correct clinic passcode
// yields a short-lived bearer token for every other endpoint.
type AuthService interface {
	Pair(ctx context.Context, passcode string) (string, error)
	Verify(tokenString string) error
}

type authService struct {
	log          *logger.Logger
	passcodeHash []byte
	jwtSecretKey string
	accessTTL    time.Duration
}

func NewAuthService(log *logger.Logger, passcodeHash []byte, jwtSecretKey string, accessTTL time.Duration) AuthService {
	return &authService{
		log:          log.With("service", "AuthService"),
		passcodeHash: passcodeHash,
		jwtSecretKey: jwtSecretKey,
		accessTTL:    accessTTL,
	}
}

func (as *authService) Pair(_ context.Context, passcode string) (string, error) {
	if err := bcrypt.CompareHashAndPassword(as.passcodeHash, []byte(passcode)); err != nil {
		as.log.Warn("pairing rejected")
		return "", fmt.Errorf("%w: wrong passcode", apperr.ErrUnauthorized)
	}
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   "device",
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(as.accessTTL)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(as.jwtSecretKey))
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	as.log.Info("device paired", "ttl", as.accessTTL)
	return signed, nil
}

func (as *authService) Verify(tokenString string) error {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(as.jwtSecretKey), nil
	})
	if err != nil || !token.Valid {
		return fmt.Errorf("%w: invalid token", apperr.ErrUnauthorized)
	}
	return nil
}
