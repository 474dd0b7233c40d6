package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"plancompare-backend/internal/catalog"
	"plancompare-backend/internal/comparisons"
	"plancompare-backend/internal/services/health"
	"plancompare-backend/internal/shared/config"
	"plancompare-backend/internal/shared/metrics"
	"plancompare-backend/internal/shared/server/middleware"
	"plancompare-backend/internal/shared/server/respond"
)

// RouterDeps carries everything NewRouter registers.
type RouterDeps struct {
	Config            config.Config
	CatalogHandler    *catalog.Handler
	ComparisonHandler *comparisons.Handler
	Health            *health.Service
	RateLimiter       *middleware.RateLimiter
}

// rateLimitedRoutes maps gin full paths to rate limit groups.
var rateLimitedRoutes = map[string]string{
	"POST /api/v1/comparisons":           middleware.RankingGroup,
	"POST /api/v1/comparisons/scenarios": middleware.RankingGroup,
	"POST /api/v1/catalog/feeds":         middleware.ImportGroup,
	"POST /api/v1/catalog/imports":       middleware.ImportGroup,
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	if deps.Config.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
	)

	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		if deps.Health == nil {
			respond.JSON(c, http.StatusOK, gin.H{"ok": true})
			return
		}
		st := deps.Health.Status(c.Request.Context())
		status := http.StatusOK
		if !st.OK {
			status = http.StatusServiceUnavailable
		}
		respond.JSON(c, status, st)
	})

	if deps.CatalogHandler != nil {
		deps.CatalogHandler.RegisterRoutes(api)
	}

	identified := api.Group("")
	identified.Use(
		middleware.Identity(deps.Config.JWTSecret),
		middleware.RateLimit(middleware.RateLimitConfig{
			Rules:    middleware.DefaultRateLimitRules(),
			GroupFor: middleware.GroupByRoute(rateLimitedRoutes),
			Limiter:  deps.RateLimiter,
		}),
	)
	registerMeRoutes(identified)
	if deps.CatalogHandler != nil {
		deps.CatalogHandler.RegisterImportRoutes(identified)
	}
	if deps.ComparisonHandler != nil {
		deps.ComparisonHandler.RegisterRoutes(identified)
	}

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
