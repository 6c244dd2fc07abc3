package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/bewerbungsportal/review-portal/docs"
	"github.com/bewerbungsportal/review-portal/internal/api/handler"
	"github.com/bewerbungsportal/review-portal/internal/api/middleware"
	"github.com/bewerbungsportal/review-portal/internal/core/domain"
	"github.com/bewerbungsportal/review-portal/internal/core/service"
	"github.com/bewerbungsportal/review-portal/internal/infrastructure/config"
	mongodb "github.com/bewerbungsportal/review-portal/internal/infrastructure/db/mongo"
	redisdb "github.com/bewerbungsportal/review-portal/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("portal"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	appRepo := mongodb.NewApplicationRepository(db)
	cache := redisdb.NewCollectionCache(rdb, cfg.Cache.TTL)
	revocation := redisdb.NewRevocationStore(rdb)

	authService := service.NewAuthService(userRepo, revocation, cfg.JWTSecret, cfg.SessionTTL)
	userService := service.NewUserService(userRepo, cache, log)
	appService := service.NewApplicationService(appRepo, userRepo, cache, log)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	appHandler := handler.NewApplicationHandler(appService)

	auth := middleware.Auth(cfg.JWTSecret, revocation)
	adminOnly := middleware.RBAC(domain.RoleAdmin)
	anyRole := middleware.RBAC(domain.RoleAdmin, domain.RoleUser)

	// --- Auth / session ---
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/logout", authHandler.Logout, auth)
	e.GET("/v1/session", authHandler.Session, auth)

	// --- Applicant form ---
	e.POST("/v1/applications", appHandler.Submit, auth, anyRole)

	// --- Admin dashboard ---
	admin := e.Group("/v1/admin", auth, adminOnly)
	admin.GET("/users", userHandler.List)
	admin.POST("/users", userHandler.Create)
	admin.PUT("/users/:id", userHandler.Update)
	admin.DELETE("/users/:id", userHandler.Delete)
	admin.GET("/applications", appHandler.List)
	admin.GET("/applications/:id", appHandler.Get)
	admin.PATCH("/applications/:id/status", appHandler.UpdateStatus)

	// --- Operational endpoints ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
