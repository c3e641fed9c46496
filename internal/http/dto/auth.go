package dto

import (
	"time"

	"github.com/LuizHNR/NebuloHub-Mongo/internal/service"
)

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	AccountID string    `json:"accountId"`
}

func ToLoginResponse(r *service.AuthResult) LoginResponse {
	return LoginResponse{
		Token:     r.Token,
		ExpiresAt: r.ExpiresAt,
		Email:     r.Email,
		Role:      r.Role.String(),
		AccountID: r.AccountID,
	}
}
