package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/LuizHNR/NebuloHub-Mongo/common/metrics"
	"github.com/LuizHNR/NebuloHub-Mongo/internal/http/handler"
	"github.com/LuizHNR/NebuloHub-Mongo/internal/http/middleware"
	"github.com/LuizHNR/NebuloHub-Mongo/internal/service"
)

type RouterConfig struct {
	PublicURL string
}

// SetupRoutes mounts v1 (auth and accounts) and v2 (every resource). Both
// versions share handlers.
func SetupRoutes(router *gin.Engine, services *service.Services, m *metrics.Metrics, backend handler.Pinger, cfg RouterConfig) {
	router.GET("/health", handler.NewHealthHandler(backend).Check)
	router.GET("/metrics", gin.WrapH(m.Handler()))
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "route not found"})
	})

	requireAuth := middleware.RequireAuth(services.Tokens())

	authHandler := handler.NewAuthHandler(services.Auth())
	accountHandler := handler.NewAccountHandler(services.Accounts(), cfg.PublicURL)

	v1 := router.Group("/api/v1")
	{
		AuthRouter(v1.Group("/auth"), authHandler)
		AccountRouter(v1.Group("/accounts"), requireAuth, accountHandler)
	}

	v2 := router.Group("/api/v2")
	{
		AuthRouter(v2.Group("/auth"), authHandler)
		AccountRouter(v2.Group("/accounts"), requireAuth, accountHandler)

		orgHandler := handler.NewOrganizationHandler(services.Organizations(), cfg.PublicURL)
		OrganizationRouter(v2.Group("/organizations"), requireAuth, orgHandler)

		ratingHandler := handler.NewRatingHandler(services.Ratings(), cfg.PublicURL)
		RatingRouter(v2.Group("/ratings"), requireAuth, ratingHandler)

		SchemaRouter(v2.Group("/schemas"), handler.NewSchemaHandler())
	}
}
