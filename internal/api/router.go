package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/acquisitions/acquisitions-api/internal/api/handler"
	"github.com/acquisitions/acquisitions-api/internal/api/middleware"
	"github.com/acquisitions/acquisitions-api/internal/api/session"
	"github.com/acquisitions/acquisitions-api/internal/core/domain"
	"github.com/acquisitions/acquisitions-api/internal/core/ports"
	"github.com/acquisitions/acquisitions-api/internal/core/service"
	"github.com/acquisitions/acquisitions-api/internal/infrastructure/config"
	"github.com/acquisitions/acquisitions-api/internal/infrastructure/db/postgres"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// The guard is injected so callers control how requests are screened.
func NewRouter(cfg *config.Config, db *gorm.DB, rdb *redis.Client, guard ports.Guard, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())

	// --- Dependencies ---
	userRepo := postgres.NewUserRepository(db)
	authService := service.NewAuthService(userRepo, log)
	userService := service.NewUserService(userRepo, log)
	tokenService := service.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	cookies := session.NewManager(cfg.Production())

	authHandler := handler.NewAuthHandler(authService, tokenService, cookies)
	userHandler := handler.NewUserHandler(userService)
	authRequired := middleware.Auth(cookies, tokenService)

	// --- Health probes and metrics (no auth, no protection) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// --- API routes, gated by the protection guard ---
	apiGroup := e.Group("/api", middleware.Protection(guard, cookies, tokenService))

	apiGroup.GET("", func(c echo.Context) error {
		return c.String(http.StatusOK, "Hello, from Acquisitions API!")
	})

	apiGroup.POST("/auth/sign-up", authHandler.Signup)
	apiGroup.POST("/auth/sign-in", authHandler.Signin)
	apiGroup.POST("/auth/sign-out", authHandler.Signout)

	apiGroup.GET("/users", userHandler.List)
	apiGroup.GET("/users/:id", userHandler.Get, authRequired)
	apiGroup.PUT("/users/:id", userHandler.Update, authRequired)
	apiGroup.DELETE("/users/:id", userHandler.Delete, authRequired, middleware.RBAC(domain.RoleAdmin))

	return e
}
