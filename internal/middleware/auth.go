package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"floorplan-server/internal/auth"
	"floorplan-server/internal/shared/config"
	"floorplan-server/internal/shared/errors"
	"floorplan-server/internal/shared/response"
)

type contextKey string

const ClaimsContextKey contextKey = "claims"

// RequireAdmin guards maintenance endpoints with a bearer token minted from
// the shared secret. When no secret is configured the endpoints are
// reported as unavailable rather than unauthorized.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := slog.With(
			"middleware", "auth",
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
		)

		if !config.GlobalConfig.AdminConfigured() {
			response.Error(w, r, logger, errors.External("admin endpoints are not configured"))
			return
		}

		token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
		if !ok || token == "" {
			response.Error(w, r, logger, errors.Unauthorized("authentication required"))
			return
		}

		claims, err := auth.ValidateToken(token)
		if err != nil {
			response.Error(w, r, logger, errors.Unauthorized("invalid token"))
			return
		}

		if claims.Role != auth.RoleAdmin {
			logger.Warn("Non-admin token used on admin endpoint",
				"subject", claims.Subject, "role", claims.Role)
			response.Error(w, r, logger, errors.Forbidden("admin access required"))
			return
		}

		logger.Debug("Admin authorization successful", "subject", claims.Subject)

		ctx := context.WithValue(r.Context(), ClaimsContextKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// ClaimsFromContext returns the validated claims set by RequireAdmin, or
// nil when the request was not authenticated.
func ClaimsFromContext(r *http.Request) *auth.Claims {
	claims, _ := r.Context().Value(ClaimsContextKey).(*auth.Claims)
	return claims
}
