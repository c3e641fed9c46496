package service

import (
	"github.com/LuizHNR/NebuloHub-Mongo/common/metrics"
	"github.com/LuizHNR/NebuloHub-Mongo/internal/store"
)

type Services struct {
	accounts      AccountService
	organizations OrganizationService
	ratings       RatingService
	auth          AuthService
	tokens        *TokenIssuer
}

func NewServices(stores *store.Stores, hasher PasswordHasher, tokens *TokenIssuer, m *metrics.Metrics, opts ...Option) *Services {
	return &Services{
		accounts:      NewAccountService(stores.Accounts(), hasher, m),
		organizations: NewOrganizationService(stores.Organizations(), m, opts...),
		ratings:       NewRatingService(stores.Ratings(), m, opts...),
		auth:          NewAuthService(stores.Accounts(), hasher, tokens, m),
		tokens:        tokens,
	}
}

func (s *Services) Accounts() AccountService {
	return s.accounts
}

func (s *Services) Organizations() OrganizationService {
	return s.organizations
}

func (s *Services) Ratings() RatingService {
	return s.ratings
}

func (s *Services) Auth() AuthService {
	return s.auth
}

func (s *Services) Tokens() *TokenIssuer {
	return s.tokens
}
