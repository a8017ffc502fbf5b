package server

import (
	"fmt"
	"net/http"
	"time"

	"trynex-storefront/internal/config"
	custommiddleware "trynex-storefront/internal/middleware"
	"trynex-storefront/internal/service"
	"trynex-storefront/internal/store"
	"trynex-storefront/internal/transport"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Server struct {
	*http.Server
	config *config.Config
	logger *zap.Logger
	redis  *redis.Client
}

func NewServer(cfg *config.Config, logger *zap.Logger, st *store.Store, redisClient *redis.Client) *Server {
	// Create router
	router := chi.NewRouter()

	// Add basic middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Compress(5))
	router.Use(custommiddleware.CORSMiddleware(nil, cfg.Server.Env == "development"))
	router.Use(custommiddleware.LoggingMiddleware(logger))
	router.Use(custommiddleware.ErrorHandlingMiddleware(logger))

	// Health check endpoint
	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	// Initialize services
	catalogService := service.NewCatalogService(st.Products)
	orderService := service.NewOrderService(st.Orders)
	promoService := service.NewPromoService(st.Promos)
	contentService := service.NewContentService(st.Content)
	adminService := service.NewAdminService(
		st.Admins, st.Orders, st.Products,
		cfg.Admin.Email, cfg.Admin.SessionSecret,
		time.Duration(cfg.Admin.SessionExpiry)*time.Minute,
	)

	// Initialize handlers
	productHandler := transport.NewProductHandler(catalogService, logger)
	orderHandler := transport.NewOrderHandler(orderService, logger)
	promoHandler := transport.NewPromoHandler(promoService, logger)
	contentHandler := transport.NewContentHandler(contentService, logger)
	adminHandler := transport.NewAdminHandler(adminService, logger)

	// Admin middleware: session tokens plus a throttle on password guessing
	sessionMiddleware := custommiddleware.AdminSessionMiddleware(cfg.Admin.SessionSecret, logger)
	rateLimitMiddleware := custommiddleware.RateLimitMiddleware(redisClient, custommiddleware.RateLimitConfig{
		RequestsPerWindow: cfg.Admin.VerifyLimit,
		Window:            time.Duration(cfg.Admin.VerifyWindow) * time.Second,
		KeyPrefix:         "admin_verify",
	}, logger)

	// Register routes
	productHandler.RegisterRoutes(router)
	orderHandler.RegisterRoutes(router)
	promoHandler.RegisterRoutes(router)
	contentHandler.RegisterRoutes(router)
	adminHandler.RegisterRoutes(router, sessionMiddleware, rateLimitMiddleware)

	server := &Server{
		Server: &http.Server{
			Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
			Handler:      router,
			IdleTimeout:  time.Minute,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
		config: cfg,
		logger: logger,
		redis:  redisClient,
	}

	return server
}

func (s *Server) Close() error {
	s.logger.Info("Closing server resources")

	if s.redis != nil {
		if err := s.redis.Close(); err != nil {
			s.logger.Error("Failed to close redis client", zap.Error(err))
		}
	}

	s.logger.Sync()
	return nil
}
