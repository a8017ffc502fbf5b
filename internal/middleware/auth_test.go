package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

const authTestSecret = "test-session-secret"

func mintTestToken(t *testing.T, secret string, ttl time.Duration, claims jwt.MapClaims) string {
	t.Helper()
	if claims == nil {
		claims = jwt.MapClaims{
			"email": "admin@trynex.com",
			"role":  "admin",
		}
	}
	claims["exp"] = time.Now().Add(ttl).Unix()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("Failed to sign test token: %v", err)
	}
	return signed
}

func sessionProtectedHandler(t *testing.T) http.Handler {
	t.Helper()
	logger, _ := zap.NewDevelopment()
	return AdminSessionMiddleware(authTestSecret, logger)(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			email, ok := GetAdminEmail(r.Context())
			if !ok {
				t.Error("admin email missing from request context")
			}
			role, ok := GetAdminRole(r.Context())
			if !ok {
				t.Error("admin role missing from request context")
			}
			w.Header().Set("X-Test-Email", email)
			w.Header().Set("X-Test-Role", role)
			w.WriteHeader(http.StatusOK)
		}),
	)
}

func serveWithAuth(handler http.Handler, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/admin/session", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	return w
}

func TestSessionMiddlewareAcceptsValidToken(t *testing.T) {
	handler := sessionProtectedHandler(t)
	token := mintTestToken(t, authTestSecret, time.Hour, nil)

	w := serveWithAuth(handler, "Bearer "+token)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if got := w.Header().Get("X-Test-Email"); got != "admin@trynex.com" {
		t.Fatalf("unexpected email in context: %q", got)
	}
	if got := w.Header().Get("X-Test-Role"); got != "admin" {
		t.Fatalf("unexpected role in context: %q", got)
	}
}

func TestSessionMiddlewareRejectsMissingHeader(t *testing.T) {
	handler := sessionProtectedHandler(t)

	w := serveWithAuth(handler, "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestSessionMiddlewareRejectsMalformedHeader(t *testing.T) {
	handler := sessionProtectedHandler(t)

	for _, header := range []string{"Bearer", "Basic dXNlcg==", "Bearer a b"} {
		w := serveWithAuth(handler, header)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("header %q: expected 401, got %d", header, w.Code)
		}
	}
}

func TestSessionMiddlewareRejectsWrongSecret(t *testing.T) {
	handler := sessionProtectedHandler(t)
	token := mintTestToken(t, "other-secret", time.Hour, nil)

	w := serveWithAuth(handler, "Bearer "+token)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestSessionMiddlewareRejectsExpiredToken(t *testing.T) {
	handler := sessionProtectedHandler(t)
	token := mintTestToken(t, authTestSecret, -time.Minute, nil)

	w := serveWithAuth(handler, "Bearer "+token)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestSessionMiddlewareRejectsTokenWithoutIdentityClaims(t *testing.T) {
	handler := sessionProtectedHandler(t)
	token := mintTestToken(t, authTestSecret, time.Hour, jwt.MapClaims{"email": "admin@trynex.com"})

	w := serveWithAuth(handler, "Bearer "+token)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}
