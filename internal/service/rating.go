package service

import (
	"context"
	"time"

	"github.com/LuizHNR/NebuloHub-Mongo/common/metrics"
	"github.com/LuizHNR/NebuloHub-Mongo/internal/model"
	"github.com/LuizHNR/NebuloHub-Mongo/internal/store"
)

// RatingInput carries the client-supplied rating fields. A zero CreatedOn
// means today on create and "keep the stored date" on update.
type RatingInput struct {
	Score          int
	AccountID      string
	Comment        string
	CreatedOn      time.Time
	OrganizationID string
}

type RatingService interface {
	Create(ctx context.Context, in RatingInput) (*model.Rating, error)
	List(ctx context.Context, page, pageSize int) ([]*model.Rating, error)
	Get(ctx context.Context, id string) (*model.Rating, error)
	Update(ctx context.Context, id string, in RatingInput) (*model.Rating, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type ratingService struct {
	crud crud[*model.Rating]
	now  func() time.Time
}

func NewRatingService(repo store.RatingStore, m *metrics.Metrics, opts ...Option) RatingService {
	o := buildOptions(opts)
	return &ratingService{
		crud: crud[*model.Rating]{repo: repo, kind: model.KindRating, metrics: m},
		now:  o.now,
	}
}

func (s *ratingService) Create(ctx context.Context, in RatingInput) (*model.Rating, error) {
	created := in.CreatedOn
	if created.IsZero() {
		created = s.now()
	}

	rating := model.NewRating(in.Score, in.AccountID, in.Comment, created, in.OrganizationID)
	return s.crud.create(ctx, rating)
}

func (s *ratingService) List(ctx context.Context, page, pageSize int) ([]*model.Rating, error) {
	return s.crud.list(ctx, page, pageSize)
}

func (s *ratingService) Get(ctx context.Context, id string) (*model.Rating, error) {
	return s.crud.get(ctx, id)
}

func (s *ratingService) Update(ctx context.Context, id string, in RatingInput) (*model.Rating, error) {
	return s.crud.update(ctx, id, func(r *model.Rating) error {
		created := in.CreatedOn
		if created.IsZero() {
			created = r.CreatedOn
		}

		r.Apply(model.RatingUpdate{
			Score:          in.Score,
			AccountID:      in.AccountID,
			Comment:        in.Comment,
			CreatedOn:      created,
			OrganizationID: in.OrganizationID,
		})
		return nil
	})
}

func (s *ratingService) Delete(ctx context.Context, id string) (bool, error) {
	return s.crud.remove(ctx, id)
}
