package dto

import (
	"github.com/LuizHNR/NebuloHub-Mongo/internal/model"
	"github.com/LuizHNR/NebuloHub-Mongo/internal/service"
)

type CreateAccountRequest struct {
	NationalID string `json:"nationalId" binding:"required,len=11,digits" jsonschema:"minLength=11,maxLength=11,pattern=^[0-9]+$"`
	Name       string `json:"name" binding:"required,max=250" jsonschema:"maxLength=250"`
	Email      string `json:"email" binding:"required,email,max=255" jsonschema:"format=email,maxLength=255"`
	Password   string `json:"password" binding:"required,max=255,strongsecret" jsonschema:"minLength=9,maxLength=255"`
	Role       string `json:"role" binding:"required,oneof=ADMIN USER" jsonschema:"enum=ADMIN,enum=USER"`
	Phone      *int64 `json:"phone,omitempty" binding:"omitempty,gt=0" jsonschema:"exclusiveMinimum=0"`
}

func (r CreateAccountRequest) Input() service.AccountInput {
	return service.AccountInput{
		NationalID: r.NationalID,
		Name:       r.Name,
		Email:      r.Email,
		Secret:     r.Password,
		Role:       model.Role(r.Role),
		Phone:      r.Phone,
	}
}

// UpdateAccountRequest omits the national id, which is fixed at registration.
type UpdateAccountRequest struct {
	Name     string `json:"name" binding:"required,max=250" jsonschema:"maxLength=250"`
	Email    string `json:"email" binding:"required,email,max=255" jsonschema:"format=email,maxLength=255"`
	Password string `json:"password" binding:"required,max=255,strongsecret" jsonschema:"minLength=9,maxLength=255"`
	Role     string `json:"role" binding:"required,oneof=ADMIN USER" jsonschema:"enum=ADMIN,enum=USER"`
	Phone    *int64 `json:"phone,omitempty" binding:"omitempty,gt=0" jsonschema:"exclusiveMinimum=0"`
}

func (r UpdateAccountRequest) Input() service.AccountInput {
	return service.AccountInput{
		Name:   r.Name,
		Email:  r.Email,
		Secret: r.Password,
		Role:   model.Role(r.Role),
		Phone:  r.Phone,
	}
}

// AccountResponse never carries the secret.
type AccountResponse struct {
	ID         string `json:"id"`
	NationalID string `json:"nationalId"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	Phone      *int64 `json:"phone,omitempty"`
	Links      Links  `json:"links"`
}

func ToAccountResponse(a *model.Account, basePath string) AccountResponse {
	return AccountResponse{
		ID:         a.GetID(),
		NationalID: a.NationalID,
		Name:       a.Name,
		Email:      a.Email,
		Role:       a.Role.String(),
		Phone:      a.Phone,
		Links:      Links{Self: basePath + "/" + a.GetID()},
	}
}

func ToAccountResponses(accounts []*model.Account, basePath string) []AccountResponse {
	out := make([]AccountResponse, len(accounts))
	for i, a := range accounts {
		out[i] = ToAccountResponse(a, basePath)
	}
	return out
}
