package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/LuizHNR/NebuloHub-Mongo/internal/http/dto"
	"github.com/LuizHNR/NebuloHub-Mongo/internal/service"
)

type AuthHandler struct {
	authService service.AuthService
}

func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login exchanges an email and password for a bearer token. Unknown email and
// wrong password produce the same 401.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	result, err := h.authService.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err, "authenticate")
		return
	}

	c.Header("Cache-Control", "no-store")
	c.JSON(http.StatusOK, dto.ToLoginResponse(result))
}
