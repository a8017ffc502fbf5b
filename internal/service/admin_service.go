package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"trynex-storefront/internal/domain"
	"trynex-storefront/internal/store"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidPassword = errors.New("invalid admin password")
	ErrInvalidSession  = errors.New("invalid session token")
)

// DashboardStats is the admin dashboard snapshot, recomputed fresh on
// every call; nothing is cached or maintained incrementally.
type DashboardStats struct {
	TotalProducts int             `json:"totalProducts"`
	PendingOrders int             `json:"pendingOrders"`
	TodayRevenue  int64           `json:"todayRevenue"`
	FeaturedItems int             `json:"featuredItems"`
	TotalOrders   int             `json:"totalOrders"`
	RecentOrders  []*domain.Order `json:"recentOrders"`
}

// SessionClaims are the JWT claims of an admin session token.
type SessionClaims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// AdminService defines admin authentication and dashboard aggregation.
type AdminService interface {
	// VerifyPassword compares the password against the seeded admin
	// record's bcrypt hash and mints a session token on success.
	VerifyPassword(ctx context.Context, password string) (string, error)
	ValidateSession(token string) (*SessionClaims, error)
	Stats(ctx context.Context) (*DashboardStats, error)
}

type adminService struct {
	admins     store.AdminStore
	orders     store.OrderStore
	products   store.ProductStore
	adminEmail string
	jwtSecret  string
	sessionTTL time.Duration
}

// NewAdminService creates a new instance of AdminService.
func NewAdminService(
	admins store.AdminStore,
	orders store.OrderStore,
	products store.ProductStore,
	adminEmail, jwtSecret string,
	sessionTTL time.Duration,
) AdminService {
	return &adminService{
		admins:     admins,
		orders:     orders,
		products:   products,
		adminEmail: adminEmail,
		jwtSecret:  jwtSecret,
		sessionTTL: sessionTTL,
	}
}

func (s *adminService) VerifyPassword(ctx context.Context, password string) (string, error) {
	admin, err := s.admins.GetByEmail(ctx, s.adminEmail)
	if err != nil {
		if errors.Is(err, store.ErrAdminNotFound) {
			return "", ErrInvalidPassword
		}
		return "", fmt.Errorf("failed to load admin record: %w", err)
	}
	if !admin.IsActive {
		return "", ErrInvalidPassword
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidPassword
	}

	return s.mintSessionToken(admin)
}

func (s *adminService) mintSessionToken(admin *domain.Admin) (string, error) {
	now := time.Now()
	claims := &SessionClaims{
		Email: admin.Email,
		Role:  admin.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			Subject:   admin.Email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.sessionTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return signed, nil
}

// ValidateSession parses and verifies a session token.
func (s *adminService) ValidateSession(tokenString string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil {
		return nil, ErrInvalidSession
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidSession
	}
	return claims, nil
}

// Stats scans the order and product collections at request time.
// TodayRevenue sums totalAmount over orders created on the current
// calendar day in the server timezone.
func (s *adminService) Stats(ctx context.Context) (*DashboardStats, error) {
	products, err := s.products.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	orders, err := s.orders.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	stats := &DashboardStats{
		TotalProducts: len(products),
		TotalOrders:   len(orders),
	}

	for _, p := range products {
		if p.Featured {
			stats.FeaturedItems++
		}
	}

	today := time.Now()
	for _, o := range orders {
		if o.Status == domain.OrderStatusPending {
			stats.PendingOrders++
		}
		if sameCalendarDay(o.CreatedAt, today) {
			stats.TodayRevenue += o.TotalAmount
		}
	}

	// Orders come back newest-first, so the head of the list is the
	// recent-orders panel.
	recent := orders
	if len(recent) > 5 {
		recent = recent[:5]
	}
	stats.RecentOrders = recent

	return stats, nil
}

func sameCalendarDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
