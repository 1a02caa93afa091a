package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/upb/answer-gate/auth"
	"go.uber.org/zap"
)

const testSecret = "middleware-test-secret"

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func authedRequest(t *testing.T, role string) *http.Request {
	t.Helper()
	token, err := auth.IssueToken(testSecret, "test-service", role, time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}

func TestRequireAuth_ValidToken(t *testing.T) {
	m := NewAuthMiddleware(auth.NewTokenValidator(testSecret), zap.NewNop())

	var gotClaims *auth.Claims
	handler := m.RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotClaims = GetClaimsFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, authedRequest(t, "admin"))

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, gotClaims)
	assert.Equal(t, "test-service", gotClaims.Service)
}

func TestRequireAuth_MissingToken(t *testing.T) {
	m := NewAuthMiddleware(auth.NewTokenValidator(testSecret), zap.NewNop())
	handler := m.RequireAuth(okHandler())

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireAuth_MalformedHeader(t *testing.T) {
	m := NewAuthMiddleware(auth.NewTokenValidator(testSecret), zap.NewNop())
	handler := m.RequireAuth(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Token abc123")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireAuth_InvalidToken(t *testing.T) {
	m := NewAuthMiddleware(auth.NewTokenValidator(testSecret), zap.NewNop())
	handler := m.RequireAuth(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer not-a-real-token")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireRole(t *testing.T) {
	m := NewAuthMiddleware(auth.NewTokenValidator(testSecret), zap.NewNop())
	handler := m.RequireAuth(m.RequireRole("admin")(okHandler()))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, authedRequest(t, "admin"))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, authedRequest(t, "reader"))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRequireRole_WithoutAuthContext(t *testing.T) {
	m := NewAuthMiddleware(auth.NewTokenValidator(testSecret), zap.NewNop())
	handler := m.RequireRole("admin")(okHandler())

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
