package services

import (
	"context"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	apperr "github.com/openslp/trialtrack-backend/internal/pkg/errors"
	"github.com/openslp/trialtrack-backend/internal/pkg/logger"
)

func newTestAuth(t *testing.T, passcode, secret string) AuthService {
	t.Helper()
	log, err := logger.New("development")
	if err != nil {
		t.Fatalf("init logger: %v", err)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(passcode), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash passcode: %v", err)
	}
	return NewAuthService(log, hash, secret, time.Hour)
}

func TestPairIssuesVerifiableToken(t *testing.T) {
	ctx := context.Background()
	auth := newTestAuth(t, "4321", "test-secret")

	token, err := auth.Pair(ctx, "4321")
	if err != nil {
		t.Fatalf("Pair: %v", err)
	}
	if token == "" {
		t.Fatal("empty token")
	}
	if err := auth.Verify(token); err != nil {
		t.Fatalf("Verify: %v", err)
	}
}

func TestPairRejectsWrongPasscode(t *testing.T) {
	ctx := context.Background()
	auth := newTestAuth(t, "4321", "test-secret")

	if _, err := auth.Pair(ctx, "0000"); !apperr.Is(err, apperr.ErrUnauthorized) {
		t.Fatalf("got %v, want ErrUnauthorized", err)
	}
}

func TestVerifyRejectsBadTokens(t *testing.T) {
	ctx := context.Background()
	auth := newTestAuth(t, "4321", "test-secret")
	foreign := newTestAuth(t, "4321", "other-secret")

	if err := auth.Verify("not.a.token"); !apperr.Is(err, apperr.ErrUnauthorized) {
		t.Fatalf("garbage token: got %v, want ErrUnauthorized", err)
	}

	token, err := foreign.Pair(ctx, "4321")
	if err != nil {
		t.Fatalf("Pair: %v", err)
	}
	if err := auth.Verify(token); !apperr.Is(err, apperr.ErrUnauthorized) {
		t.Fatalf("foreign-secret token: got %v, want ErrUnauthorized", err)
	}
}
