package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

type contextKey string

const (
	AdminEmailKey contextKey = "admin_email"
	AdminRoleKey  contextKey = "admin_role"
)

// AdminSessionMiddleware validates admin session tokens minted by the
// password verify endpoint and puts the session identity on the request
// context.
func AdminSessionMiddleware(jwtSecret string, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				logger.Debug("Missing authorization header")
				RespondWithError(w, http.StatusUnauthorized, "missing authorization header")
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				logger.Debug("Invalid authorization header format")
				RespondWithError(w, http.StatusUnauthorized, "invalid authorization header format")
				return
			}

			token, err := jwt.Parse(parts[1], func(token *jwt.Token) (interface{}, error) {
				if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, jwt.ErrSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil {
				logger.Debug("Session token validation failed", zap.Error(err))
				if err == jwt.ErrTokenExpired {
					RespondWithError(w, http.StatusUnauthorized, "session expired")
				} else {
					RespondWithError(w, http.StatusUnauthorized, "invalid session token")
				}
				return
			}
			if !token.Valid {
				RespondWithError(w, http.StatusUnauthorized, "invalid session token")
				return
			}

			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				logger.Error("Failed to extract claims from session token")
				RespondWithError(w, http.StatusUnauthorized, "invalid session claims")
				return
			}

			email, ok := claims["email"].(string)
			if !ok {
				RespondWithError(w, http.StatusUnauthorized, "invalid session claims")
				return
			}
			role, ok := claims["role"].(string)
			if !ok {
				RespondWithError(w, http.StatusUnauthorized, "invalid session claims")
				return
			}

			ctx := context.WithValue(r.Context(), AdminEmailKey, email)
			ctx = context.WithValue(ctx, AdminRoleKey, role)

			logger.Debug("Admin session validated", zap.String("email", email))

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetAdminEmail extracts the admin email from the request context
func GetAdminEmail(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(AdminEmailKey).(string)
	return email, ok
}

// GetAdminRole extracts the admin role from the request context
func GetAdminRole(ctx context.Context) (string, bool) {
	role, ok := ctx.Value(AdminRoleKey).(string)
	return role, ok
}
