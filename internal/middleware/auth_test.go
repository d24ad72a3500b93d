package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"floorplan-server/internal/auth"
	"floorplan-server/internal/shared/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func setAuthConfig(t *testing.T, secret string) {
	t.Helper()
	config.GlobalConfig = &config.Config{
		Auth: config.AuthConfig{
			JWTSecret:       secret,
			TokenExpiration: time.Hour,
		},
	}
	t.Cleanup(func() { config.GlobalConfig = nil })
}

func TestRequireAdmin_AllowsAdminToken(t *testing.T) {
	setAuthConfig(t, "0123456789abcdef0123456789abcdef")

	token, err := auth.GenerateToken("ops", auth.RoleAdmin)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodDelete, "/api/generations", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	RequireAdmin(okHandler()).ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireAdmin_RejectsMissingHeader(t *testing.T) {
	setAuthConfig(t, "0123456789abcdef0123456789abcdef")

	req := httptest.NewRequest(http.MethodDelete, "/api/generations", nil)
	rec := httptest.NewRecorder()

	RequireAdmin(okHandler()).ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireAdmin_RejectsNonAdminRole(t *testing.T) {
	setAuthConfig(t, "0123456789abcdef0123456789abcdef")

	token, err := auth.GenerateToken("viewer", "viewer")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodDelete, "/api/generations", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	RequireAdmin(okHandler()).ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRequireAdmin_UnavailableWithoutSecret(t *testing.T) {
	setAuthConfig(t, "")

	req := httptest.NewRequest(http.MethodDelete, "/api/generations", nil)
	rec := httptest.NewRecorder()

	RequireAdmin(okHandler()).ServeHTTP(rec, req)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestRequestID_GeneratesAndEchoes(t *testing.T) {
	var seen string
	handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestIDFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/status", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.NotEmpty(t, seen)
	assert.Equal(t, seen, rec.Header().Get(RequestIDHeader))
}

func TestRequestID_HonorsCallerSuppliedID(t *testing.T) {
	handler := RequestID(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/api/status", nil)
	req.Header.Set(RequestIDHeader, "caller-id")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, "caller-id", rec.Header().Get(RequestIDHeader))
}
