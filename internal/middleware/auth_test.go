package middleware

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	apperr "github.com/openslp/trialtrack-backend/internal/pkg/errors"
	"github.com/openslp/trialtrack-backend/internal/pkg/logger"
)

type staticAuth struct {
	accepted string
}

func (sa staticAuth) Pair(context.Context, string) (string, error) {
	return sa.accepted, nil
}

func (sa staticAuth) Verify(token string) error {
	if token != sa.accepted {
		return fmt.Errorf("%w: invalid token", apperr.ErrUnauthorized)
	}
	return nil
}

func newAuthRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	log, err := logger.New("development")
	if err != nil {
		t.Fatalf("init logger: %v", err)
	}
	r := gin.New()
	r.Use(NewAuthMiddleware(log, staticAuth{accepted: "good-token"}).RequireAuth())
	r.GET("/protected", func(c *gin.Context) { c.Status(http.StatusNoContent) })
	return r
}

func TestRequireAuth(t *testing.T) {
	r := newAuthRouter(t)

	cases := []struct {
		name       string
		target     string
		authHeader string
		wantStatus int
	}{
		{"no_token", "/protected", "", http.StatusUnauthorized},
		{"bearer_token", "/protected", "Bearer good-token", http.StatusNoContent},
		{"bad_bearer_token", "/protected", "Bearer evil-token", http.StatusUnauthorized},
		{"query_token", "/protected?token=good-token", "", http.StatusNoContent},
		{"bad_query_token", "/protected?token=evil-token", "", http.StatusUnauthorized},
		{"malformed_header", "/protected", "good-token", http.StatusUnauthorized},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tc.target, nil)
			if tc.authHeader != "" {
				req.Header.Set("Authorization", tc.authHeader)
			}
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)
			if rec.Code != tc.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tc.wantStatus)
			}
		})
	}
}
