package store

import (
	"context"
	"errors"

	"github.com/LuizHNR/NebuloHub-Mongo/internal/model"
)

// ErrNotFound is returned when a requested document does not exist, including
// when the identifier is malformed.
var ErrNotFound = errors.New("not found")

// Repository is the persistence contract shared by every entity kind.
//
// Replace and Delete operate atomically by id and never upsert. Both return
// ErrNotFound when nothing matched.
type Repository[E model.Entity] interface {
	GetByID(ctx context.Context, id string) (E, error)
	// GetAll returns every document in the backend's natural order.
	GetAll(ctx context.Context) ([]E, error)
	// Insert writes e and sets its identifier.
	Insert(ctx context.Context, e E) error
	Replace(ctx context.Context, id string, e E) error
	Delete(ctx context.Context, id string) error
}

type AccountStore = Repository[*model.Account]

type OrganizationStore = Repository[*model.Organization]

type RatingStore = Repository[*model.Rating]

// Backend is a connected document store that repositories are opened on.
type Backend interface {
	Name() string
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

// entityPtr lets generic code allocate a T and use it as an Entity.
type entityPtr[T any] interface {
	*T
	model.Entity
}
