package routes

import (
	"net/http"

	"crudapp/internal/adapter/http/handler"
	"crudapp/internal/adapter/http/middleware"
	. "crudapp/pkg"
	. "crudapp/pkg/auth"
	"crudapp/pkg/config"
	"crudapp/pkg/logger"
	"crudapp/pkg/metrics"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

type HandlersConfig struct {
	AuthHandler *handler.AuthHandler
	UserHandler *handler.UserHandler
	TodoHandler *handler.TodoHandler
}

type RouterDeps struct {
	Metrics  *metrics.AppMetrics
	Registry *prometheus.Registry
	Logger   *logger.AppLogger
}

func SetupRouter(handlers HandlersConfig, deps RouterDeps) *gin.Engine {
	return SetupRouterWithConfig(handlers, deps, config.GetDefaultConfig())
}

func SetupRouterWithConfig(handlers HandlersConfig, deps RouterDeps, cfg *config.AppConfig) *gin.Engine {
	if gin.Mode() == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(otelgin.Middleware("crudapp"))
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware(deps.Logger))

	if cfg.RateLimitEnabled {
		rateLimiter := config.NewRateLimiter(deps.Logger.Zap(), deps.Metrics)
		for path, limit := range cfg.RateLimitConfigs {
			rateLimiter.SetConfig(path, config.RateLimitEndpointConfig{
				Requests: limit.Requests,
				Window:   limit.Window,
				KeyFunc:  GetClientIP,
			})
		}
		router.Use(rateLimiter.RateLimitMiddleware())
	}

	router.Use(deps.Metrics.GinMiddleware())
	router.Use(gin.Recovery())
	router.Use(corsMiddleware())

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{})))

	registerAPIRoutes(router, handlers)

	return router
}

func registerAPIRoutes(router *gin.Engine, handlers HandlersConfig) {
	api := router.Group("/api")

	if handlers.AuthHandler != nil {
		authRoutes := api.Group("/auth")
		{
			authRoutes.POST("/signup", handlers.AuthHandler.SignUp)
			authRoutes.POST("/login", handlers.AuthHandler.Login)
			authRoutes.GET("/me", GinJwtMiddleware(), handlers.AuthHandler.Me)
		}
	}

	if handlers.UserHandler != nil {
		userRoutes := api.Group("/users")
		{
			userRoutes.POST("", handlers.UserHandler.Create)
			userRoutes.GET("", handlers.UserHandler.GetAll)
			userRoutes.GET("/:id", handlers.UserHandler.GetByID)
			userRoutes.PUT("/:id", handlers.UserHandler.Update)
			userRoutes.PATCH("/:id", handlers.UserHandler.Update)
			userRoutes.DELETE("/:id", handlers.UserHandler.Delete)
		}
	}

	if handlers.TodoHandler != nil {
		todoRoutes := api.Group("/todos")
		{
			todoRoutes.POST("", handlers.TodoHandler.Create)
			todoRoutes.GET("", handlers.TodoHandler.GetAll)
			todoRoutes.GET("/:id", handlers.TodoHandler.GetByID)
			todoRoutes.PUT("/:id", handlers.TodoHandler.Update)
			todoRoutes.PATCH("/:id", handlers.TodoHandler.Update)
			todoRoutes.PATCH("/:id/toggle", handlers.TodoHandler.Toggle)
			todoRoutes.DELETE("/:id", handlers.TodoHandler.Delete)
		}
	}
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

// SetupRouterForTests skips telemetry, rate limiting and metrics.
func SetupRouterForTests(handlers HandlersConfig) *gin.Engine {
	if gin.Mode() == "" {
		gin.SetMode(gin.TestMode)
	}

	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(corsMiddleware())

	registerAPIRoutes(router, handlers)

	return router
}
