package store

import (
	"context"
	"fmt"
)

// Open returns the repository for E's kind on the given backend.
func Open[T any, E entityPtr[T]](ctx context.Context, backend Backend, cols Collections) (Repository[E], error) {
	kind := E(new(T)).Kind()
	name, err := cols.Resolve(kind)
	if err != nil {
		return nil, err
	}

	switch b := backend.(type) {
	case *MongoBackend:
		return newMongoRepository[T, E](b.database.Collection(name)), nil
	case *PostgresBackend:
		return newPostgresRepository[T, E](b.db.Pool(), name), nil
	case *ArangoBackend:
		return newArangoRepository[T, E](ctx, b.client.Database(), name)
	case *MemoryBackend:
		return newMemoryRepository[T, E](b.collection(name)), nil
	default:
		return nil, fmt.Errorf("unsupported backend %T", backend)
	}
}
