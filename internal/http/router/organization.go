package router

import (
	"github.com/gin-gonic/gin"

	"github.com/LuizHNR/NebuloHub-Mongo/internal/http/handler"
	"github.com/LuizHNR/NebuloHub-Mongo/internal/http/middleware"
	"github.com/LuizHNR/NebuloHub-Mongo/internal/model"
)

func OrganizationRouter(rg *gin.RouterGroup, requireAuth gin.HandlerFunc, h *handler.OrganizationHandler) {
	rg.Use(requireAuth)
	{
		rg.POST("", h.Create)
		rg.GET("", h.List)
		rg.GET("/:id", h.Get)
		rg.PUT("/:id", h.Update)
		rg.DELETE("/:id", middleware.RequireRole(model.RoleAdmin), h.Delete)
	}
}
