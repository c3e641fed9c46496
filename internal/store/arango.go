package store

import (
	"context"
	"fmt"

	"github.com/arangodb/go-driver/v2/arangodb"
	"github.com/arangodb/go-driver/v2/arangodb/shared"

	"github.com/LuizHNR/NebuloHub-Mongo/common/id"
	arangoclient "github.com/LuizHNR/NebuloHub-Mongo/common/arangodb"
)

type ArangoBackend struct {
	client *arangoclient.Client
}

func NewArangoBackend(client *arangoclient.Client) *ArangoBackend {
	return &ArangoBackend{client: client}
}

func (b *ArangoBackend) Name() string { return "arango" }

func (b *ArangoBackend) Ping(ctx context.Context) error {
	return b.client.Ping(ctx)
}

func (b *ArangoBackend) Close(_ context.Context) error {
	return b.client.Close()
}

// EnsureSchema creates the database and every collection when missing.
func (b *ArangoBackend) EnsureSchema(ctx context.Context, cols Collections) error {
	if err := b.client.EnsureDatabase(ctx); err != nil {
		return err
	}
	return b.client.EnsureCollections(ctx, cols.Names()...)
}

// arangoDocument keeps the entity under "body" so its own fields never
// collide with Arango's system attributes.
type arangoDocument[T any] struct {
	Key  string `json:"_key"`
	Body T      `json:"body"`
}

type arangoRepository[T any, E entityPtr[T]] struct {
	db   arangodb.Database
	col  arangodb.Collection
	name string
}

func newArangoRepository[T any, E entityPtr[T]](ctx context.Context, database arangodb.Database, name string) (Repository[E], error) {
	if database == nil {
		return nil, fmt.Errorf("arangodb database not initialized")
	}

	col, err := database.GetCollection(ctx, name, nil)
	if err != nil {
		return nil, fmt.Errorf("get collection %s: %w", name, err)
	}
	return &arangoRepository[T, E]{db: database, col: col, name: name}, nil
}

func (r *arangoRepository[T, E]) GetByID(ctx context.Context, docID string) (E, error) {
	docID, ok := id.Canonical(docID)
	if !ok {
		return nil, ErrNotFound
	}

	var doc arangoDocument[T]
	if _, err := r.col.ReadDocument(ctx, docID, &doc); err != nil {
		if shared.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("read %s %s: %w", r.name, docID, err)
	}

	e := E(&doc.Body)
	if err := e.SetID(docID); err != nil {
		return nil, err
	}
	return e, nil
}

func (r *arangoRepository[T, E]) GetAll(ctx context.Context) ([]E, error) {
	cursor, err := r.db.Query(ctx, `FOR d IN @@collection SORT d._key RETURN d`, &arangodb.QueryOptions{
		BindVars: map[string]any{
			"@collection": r.name,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("execute query: %w", err)
	}
	defer cursor.Close()

	var out []E
	for cursor.HasMore() {
		var doc arangoDocument[T]
		if _, err := cursor.ReadDocument(ctx, &doc); err != nil {
			return nil, fmt.Errorf("read document: %w", err)
		}
		e := E(&doc.Body)
		if err := e.SetID(doc.Key); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

func (r *arangoRepository[T, E]) Insert(ctx context.Context, e E) error {
	docID := id.NewObjectID()
	if err := e.SetID(docID); err != nil {
		return err
	}

	if _, err := r.col.CreateDocument(ctx, arangoDocument[E]{Key: docID, Body: e}); err != nil {
		return fmt.Errorf("create %s document: %w", r.name, err)
	}
	return nil
}

func (r *arangoRepository[T, E]) Replace(ctx context.Context, docID string, e E) error {
	docID, ok := id.Canonical(docID)
	if !ok {
		return ErrNotFound
	}
	if err := e.SetID(docID); err != nil {
		return err
	}

	if _, err := r.col.ReplaceDocument(ctx, docID, arangoDocument[E]{Key: docID, Body: e}); err != nil {
		if shared.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("replace %s %s: %w", r.name, docID, err)
	}
	return nil
}

func (r *arangoRepository[T, E]) Delete(ctx context.Context, docID string) error {
	docID, ok := id.Canonical(docID)
	if !ok {
		return ErrNotFound
	}

	if _, err := r.col.DeleteDocument(ctx, docID); err != nil {
		if shared.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("delete %s %s: %w", r.name, docID, err)
	}
	return nil
}
