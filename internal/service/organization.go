package service

import (
	"context"
	"time"

	"github.com/LuizHNR/NebuloHub-Mongo/common/metrics"
	"github.com/LuizHNR/NebuloHub-Mongo/internal/model"
	"github.com/LuizHNR/NebuloHub-Mongo/internal/store"
)

// OrganizationInput carries the client-supplied organization fields. A zero
// FoundedOn means today on create and "keep the stored date" on update.
type OrganizationInput struct {
	TaxID       string
	Video       string
	Name        string
	Description string
	Website     string
	FoundedOn   time.Time
	Skills      []string
	OwnerID     string
}

type OrganizationService interface {
	Create(ctx context.Context, in OrganizationInput) (*model.Organization, error)
	List(ctx context.Context, page, pageSize int) ([]*model.Organization, error)
	Get(ctx context.Context, id string) (*model.Organization, error)
	Update(ctx context.Context, id string, in OrganizationInput) (*model.Organization, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type organizationService struct {
	crud crud[*model.Organization]
	now  func() time.Time
}

func NewOrganizationService(repo store.OrganizationStore, m *metrics.Metrics, opts ...Option) OrganizationService {
	o := buildOptions(opts)
	return &organizationService{
		crud: crud[*model.Organization]{repo: repo, kind: model.KindOrganization, metrics: m},
		now:  o.now,
	}
}

func (s *organizationService) Create(ctx context.Context, in OrganizationInput) (*model.Organization, error) {
	founded := in.FoundedOn
	if founded.IsZero() {
		founded = s.now()
	}

	org := model.NewOrganization(in.TaxID, in.Video, in.Name, in.Description, in.Website, founded, in.Skills, in.OwnerID)
	return s.crud.create(ctx, org)
}

func (s *organizationService) List(ctx context.Context, page, pageSize int) ([]*model.Organization, error) {
	return s.crud.list(ctx, page, pageSize)
}

func (s *organizationService) Get(ctx context.Context, id string) (*model.Organization, error) {
	return s.crud.get(ctx, id)
}

func (s *organizationService) Update(ctx context.Context, id string, in OrganizationInput) (*model.Organization, error) {
	return s.crud.update(ctx, id, func(o *model.Organization) error {
		founded := in.FoundedOn
		if founded.IsZero() {
			founded = o.FoundedOn
		}

		o.Apply(model.OrganizationUpdate{
			TaxID:       in.TaxID,
			Video:       in.Video,
			Name:        in.Name,
			Description: in.Description,
			Website:     in.Website,
			FoundedOn:   founded,
			Skills:      in.Skills,
			OwnerID:     in.OwnerID,
		})
		return nil
	})
}

func (s *organizationService) Delete(ctx context.Context, id string) (bool, error) {
	return s.crud.remove(ctx, id)
}
