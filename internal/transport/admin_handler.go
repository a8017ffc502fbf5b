package transport

import (
	"errors"
	"net/http"

	"trynex-storefront/internal/middleware"
	"trynex-storefront/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// VerifyRequest represents the admin password verify payload
type VerifyRequest struct {
	Password string `json:"password" validate:"required"`
}

// VerifyResponse carries the session token the dashboard holds after a
// successful password check.
type VerifyResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
}

// SessionResponse reports the identity behind a valid session token
type SessionResponse struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}

// AdminHandler handles HTTP requests for the admin dashboard
type AdminHandler struct {
	admin  service.AdminService
	logger *zap.Logger
}

// NewAdminHandler creates a new AdminHandler
func NewAdminHandler(admin service.AdminService, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{
		admin:  admin,
		logger: logger,
	}
}

// RegisterRoutes registers all admin routes. The verify endpoint is
// rate limited; the session endpoint requires a Bearer session token.
func (h *AdminHandler) RegisterRoutes(r chi.Router, sessionMiddleware, rateLimitMiddleware func(http.Handler) http.Handler) {
	r.Route("/api/admin", func(r chi.Router) {
		r.With(rateLimitMiddleware).Post("/verify", h.Verify)
		r.With(sessionMiddleware).Get("/session", h.Session)
		r.Get("/stats", h.Stats)
	})
}

// Verify checks the admin password and mints a session token.
func (h *AdminHandler) Verify(w http.ResponseWriter, r *http.Request) {
	var req VerifyRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		h.logger.Debug("Verify validation failed", zap.Error(err))
		middleware.RespondWithError(w, http.StatusBadRequest, "password is required")
		return
	}

	token, err := h.admin.VerifyPassword(r.Context(), req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidPassword) {
			h.logger.Warn("Admin password verification failed", zap.String("remote_addr", r.RemoteAddr))
			middleware.RespondWithError(w, http.StatusUnauthorized, "invalid password")
			return
		}
		h.logger.Error("Failed to verify admin password", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to verify admin password")
		return
	}

	h.logger.Info("Admin authenticated")
	middleware.RespondWithJSON(w, http.StatusOK, VerifyResponse{Success: true, Token: token})
}

// Session reports the identity behind the presented session token. The
// middleware has already rejected invalid tokens with 401.
func (h *AdminHandler) Session(w http.ResponseWriter, r *http.Request) {
	email, ok := middleware.GetAdminEmail(r.Context())
	if !ok {
		middleware.RespondWithError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	role, _ := middleware.GetAdminRole(r.Context())

	middleware.RespondWithJSON(w, http.StatusOK, SessionResponse{Email: email, Role: role})
}

// Stats returns the dashboard snapshot, recomputed on every call.
func (h *AdminHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.admin.Stats(r.Context())
	if err != nil {
		h.logger.Error("Failed to compute admin stats", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to fetch admin stats")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, stats)
}
