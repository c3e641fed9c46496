package service

import (
	"context"
	"fmt"

	"github.com/LuizHNR/NebuloHub-Mongo/common/metrics"
	"github.com/LuizHNR/NebuloHub-Mongo/internal/model"
	"github.com/LuizHNR/NebuloHub-Mongo/internal/store"
)

// AccountInput carries the client-supplied account fields. NationalID is
// ignored on update. Secret is plaintext and is hashed before storage.
type AccountInput struct {
	NationalID string
	Name       string
	Email      string
	Secret     string
	Role       model.Role
	Phone      *int64
}

type AccountService interface {
	Create(ctx context.Context, in AccountInput) (*model.Account, error)
	List(ctx context.Context, page, pageSize int) ([]*model.Account, error)
	Get(ctx context.Context, id string) (*model.Account, error)
	Update(ctx context.Context, id string, in AccountInput) (*model.Account, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type accountService struct {
	crud   crud[*model.Account]
	hasher PasswordHasher
}

func NewAccountService(repo store.AccountStore, hasher PasswordHasher, m *metrics.Metrics) AccountService {
	return &accountService{
		crud:   crud[*model.Account]{repo: repo, kind: model.KindAccount, metrics: m},
		hasher: hasher,
	}
}

func (s *accountService) Create(ctx context.Context, in AccountInput) (*model.Account, error) {
	hash, err := s.hasher.Hash(in.Secret)
	if err != nil {
		return nil, fmt.Errorf("creating account: %w", err)
	}

	account := model.NewAccount(in.NationalID, in.Name, in.Email, hash, in.Role, in.Phone)
	return s.crud.create(ctx, account)
}

func (s *accountService) List(ctx context.Context, page, pageSize int) ([]*model.Account, error) {
	return s.crud.list(ctx, page, pageSize)
}

func (s *accountService) Get(ctx context.Context, id string) (*model.Account, error) {
	return s.crud.get(ctx, id)
}

// Update keeps the stored hash when the supplied secret already matches it,
// so repeating an update leaves the document unchanged.
func (s *accountService) Update(ctx context.Context, id string, in AccountInput) (*model.Account, error) {
	return s.crud.update(ctx, id, func(a *model.Account) error {
		secret := a.Secret
		if s.hasher.Compare(a.Secret, in.Secret) != nil {
			hash, err := s.hasher.Hash(in.Secret)
			if err != nil {
				return fmt.Errorf("updating account: %w", err)
			}
			secret = hash
		}

		a.Apply(model.AccountUpdate{
			Name:   in.Name,
			Email:  in.Email,
			Secret: secret,
			Role:   in.Role,
			Phone:  in.Phone,
		})
		return nil
	})
}

func (s *accountService) Delete(ctx context.Context, id string) (bool, error) {
	return s.crud.remove(ctx, id)
}
