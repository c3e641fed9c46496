package store

import (
	"context"
	"fmt"

	"github.com/LuizHNR/NebuloHub-Mongo/internal/model"
)

type Stores struct {
	backend       Backend
	accounts      AccountStore
	organizations OrganizationStore
	ratings       RatingStore
}

// NewStores opens one repository per entity kind. A nil cache disables caching.
func NewStores(ctx context.Context, backend Backend, cols Collections, cache *Cache) (*Stores, error) {
	accounts, err := open[model.Account](ctx, backend, cols, cache)
	if err != nil {
		return nil, fmt.Errorf("opening accounts: %w", err)
	}
	organizations, err := open[model.Organization](ctx, backend, cols, cache)
	if err != nil {
		return nil, fmt.Errorf("opening organizations: %w", err)
	}
	ratings, err := open[model.Rating](ctx, backend, cols, cache)
	if err != nil {
		return nil, fmt.Errorf("opening ratings: %w", err)
	}

	return &Stores{
		backend:       backend,
		accounts:      accounts,
		organizations: organizations,
		ratings:       ratings,
	}, nil
}

func open[T any, E entityPtr[T]](ctx context.Context, backend Backend, cols Collections, cache *Cache) (Repository[E], error) {
	repo, err := Open[T, E](ctx, backend, cols)
	if err != nil {
		return nil, err
	}
	if cache == nil {
		return repo, nil
	}

	name, err := cols.Resolve(E(new(T)).Kind())
	if err != nil {
		return nil, err
	}
	return Cached[T, E](repo, cache, name), nil
}

func (s *Stores) Backend() Backend {
	return s.backend
}

func (s *Stores) Accounts() AccountStore {
	return s.accounts
}

func (s *Stores) Organizations() OrganizationStore {
	return s.organizations
}

func (s *Stores) Ratings() RatingStore {
	return s.ratings
}
