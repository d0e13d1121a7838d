package api

import (
	"strings"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/taskify/taskify-server/docs"
	"github.com/taskify/taskify-server/internal/api/handler"
	"github.com/taskify/taskify-server/internal/api/middleware"
	"github.com/taskify/taskify-server/internal/core/service"
	"github.com/taskify/taskify-server/internal/infrastructure/config"
	mongodb "github.com/taskify/taskify-server/internal/infrastructure/db/mongo"
	redisdb "github.com/taskify/taskify-server/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, log zerolog.Logger, db *mongo.Database, rdb *redis.Client) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log, cfg.Env == "development")

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware("taskify"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	taskRepo := mongodb.NewTaskRepository(db)

	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.TokenTTL)
	taskService := service.NewTaskService(taskRepo, log)
	profileService := service.NewProfileService(userRepo)

	authHandler := handler.NewAuthHandler(authService)
	taskHandler := handler.NewTaskHandler(taskService)
	profileHandler := handler.NewProfileHandler(profileService)

	authMiddleware := middleware.Auth(cfg.JWTSecret, userRepo)

	loginLimiter := redisdb.NewLoginLimiter(rdb, cfg.AuthRateLimit, cfg.AuthRateWindow)
	rateLimit := middleware.RateLimit(middleware.LimiterFunc(func(c echo.Context) (bool, error) {
		return loginLimiter.Allow(c.Request().Context(), c.RealIP())
	}), log)

	// --- API routes ---
	apiGroup := e.Group("/api")

	apiGroup.POST("/auth/register", authHandler.Register, rateLimit)
	apiGroup.POST("/auth/login", authHandler.Login, rateLimit)

	tasks := apiGroup.Group("/tasks", authMiddleware)
	tasks.GET("", taskHandler.List)
	tasks.POST("", taskHandler.Create)
	tasks.GET("/stats", taskHandler.Stats)
	tasks.PUT("/:id", taskHandler.Update)
	tasks.DELETE("/:id", taskHandler.Delete)

	profile := apiGroup.Group("/profile", authMiddleware)
	profile.GET("", profileHandler.Get)
	profile.PUT("", profileHandler.Update)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	apiGroup.GET("/health", healthHandler.Liveness)
	apiGroup.GET("/health/ready", readinessHandler.Readiness)

	// --- Operational surface ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	// --- SPA fallback ---
	// Everything outside the API serves the web client; unknown paths
	// fall back to index.html so client-side routing works on reload.
	e.Use(echomiddleware.StaticWithConfig(echomiddleware.StaticConfig{
		Root:  cfg.StaticDir,
		Index: "index.html",
		HTML5: true,
		Skipper: func(c echo.Context) bool {
			p := c.Request().URL.Path
			return strings.HasPrefix(p, "/api") ||
				strings.HasPrefix(p, "/metrics") ||
				strings.HasPrefix(p, "/swagger")
		},
	}))

	return e
}
