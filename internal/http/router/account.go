package router

import (
	"github.com/gin-gonic/gin"

	"github.com/LuizHNR/NebuloHub-Mongo/internal/http/handler"
	"github.com/LuizHNR/NebuloHub-Mongo/internal/http/middleware"
	"github.com/LuizHNR/NebuloHub-Mongo/internal/model"
)

// AccountRouter sets up account routes
// - POST is public (registration)
// - everything else requires a bearer token; DELETE requires ADMIN
func AccountRouter(rg *gin.RouterGroup, requireAuth gin.HandlerFunc, h *handler.AccountHandler) {
	rg.POST("", h.Create)

	authed := rg.Group("")
	authed.Use(requireAuth)
	{
		authed.GET("", h.List)
		authed.GET("/:id", h.Get)
		authed.PUT("/:id", h.Update)
		authed.DELETE("/:id", middleware.RequireRole(model.RoleAdmin), h.Delete)
	}
}
