package api

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/i-am-Shekinah/alx-workspace-booking-app-backend/internal/api/handler"
	"github.com/i-am-Shekinah/alx-workspace-booking-app-backend/internal/api/middleware"
	"github.com/i-am-Shekinah/alx-workspace-booking-app-backend/internal/core/ports"
	"github.com/i-am-Shekinah/alx-workspace-booking-app-backend/internal/core/service"
	"github.com/i-am-Shekinah/alx-workspace-booking-app-backend/internal/infrastructure/db/postgres"
	redisdb "github.com/i-am-Shekinah/alx-workspace-booking-app-backend/internal/infrastructure/db/redis"
	"github.com/i-am-Shekinah/alx-workspace-booking-app-backend/internal/pkg/token"
)

// Deps carries the process-level handles the router wires together. Stores
// are constructed here from the injected pool/client, never from globals.
type Deps struct {
	Pool       *pgxpool.Pool
	Redis      *redis.Client
	Issuer     *token.Issuer
	Events     ports.AuthEventSink
	Production bool
	Log        zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("workspace"))

	// --- Dependencies ---
	userRepo := postgres.NewUserRepository(deps.Pool)
	tokenRepo := redisdb.NewRefreshTokenRepository(deps.Redis)
	authService := service.NewAuthService(userRepo, tokenRepo, deps.Issuer, deps.Events)
	authHandler := handler.NewAuthHandler(authService, deps.Production, deps.Log)
	userHandler := handler.NewUserHandler(authService)
	authMiddleware := middleware.Auth(deps.Issuer)

	// --- Auth routes ---
	auth := e.Group("/api/auth")
	auth.POST("/signup", authHandler.Signup)
	auth.POST("/login", authHandler.Login)
	auth.POST("/logout", authHandler.Logout)
	auth.POST("/refresh", authHandler.Refresh)

	// --- Authenticated routes ---
	users := e.Group("/api/users", authMiddleware)
	users.GET("/me", userHandler.Me)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(deps.Pool, deps.Redis)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
