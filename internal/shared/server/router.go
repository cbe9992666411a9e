package server

import (
	"github.com/gin-gonic/gin"

	"outfit-backend/internal/shared/config"
	"outfit-backend/internal/shared/metrics"
	"outfit-backend/internal/shared/server/middleware"
	"outfit-backend/internal/shared/server/respond"
)

// RouteRegistrar mounts a feature's routes on the authenticated API group.
type RouteRegistrar interface {
	Register(group *gin.RouterGroup)
}

// PublicRouteRegistrar mounts routes that skip API-key auth, such as
// per-feature health checks.
type PublicRouteRegistrar interface {
	RegisterPublic(group *gin.RouterGroup)
}

// NewRouter builds the gin engine with the standard middleware chain and
// mounts each feature under the API-key protected group.
func NewRouter(cfg config.Config, registrars ...RouteRegistrar) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigin),
		middleware.RateLimit(middleware.RateLimitConfig{
			Rules: map[string]middleware.RateLimitRule{
				"DEFAULT": {Rate: 10, Burst: 20},
			},
		}),
	)

	router.GET("/health", func(c *gin.Context) {
		respond.OK(c, gin.H{"status": "healthy"})
	})
	router.GET("/metrics", metrics.Handler())

	if cfg.ObjectStoreType == "local" {
		router.Static("/files", cfg.LocalStoreDir)
	}

	public := router.Group("/api")
	api := router.Group("/api")
	api.Use(middleware.APIKeyAuth(cfg.APIKey, cfg.Env))
	for _, registrar := range registrars {
		registrar.Register(api)
		if pub, ok := registrar.(PublicRouteRegistrar); ok {
			pub.RegisterPublic(public)
		}
	}

	return router
}

// Addr returns the listen address for the configured port.
func Addr(cfg config.Config) string {
	return ":" + cfg.Port
}
