package store

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/LuizHNR/NebuloHub-Mongo/common/id"
)

// Cache holds the Redis settings shared by every cached repository.
type Cache struct {
	client redis.UniversalClient
	prefix string
	ttl    time.Duration
}

func NewCache(client redis.UniversalClient, prefix string, ttl time.Duration) *Cache {
	return &Cache{client: client, prefix: prefix, ttl: ttl}
}

type cachedRepository[T any, E entityPtr[T]] struct {
	next       Repository[E]
	cache      *Cache
	collection string
}

// Cached wraps next with a read-through cache for GetByID. Writes invalidate
// the cached document after the underlying call returns. Redis failures are
// logged and otherwise ignored.
func Cached[T any, E entityPtr[T]](next Repository[E], cache *Cache, collection string) Repository[E] {
	return &cachedRepository[T, E]{next: next, cache: cache, collection: collection}
}

// key expects a canonical id.
func (r *cachedRepository[T, E]) key(docID string) string {
	return r.cache.prefix + ":" + r.collection + ":" + docID
}

func (r *cachedRepository[T, E]) GetByID(ctx context.Context, rawID string) (E, error) {
	docID, ok := id.Canonical(rawID)
	if !ok {
		return r.next.GetByID(ctx, rawID)
	}

	key := r.key(docID)
	raw, err := r.cache.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var out T
		if err := json.Unmarshal(raw, &out); err == nil {
			e := E(&out)
			if err := e.SetID(docID); err == nil {
				return e, nil
			}
		}
		slog.WarnContext(ctx, "discarding undecodable cache entry", "key", key)
	case !errors.Is(err, redis.Nil):
		slog.WarnContext(ctx, "cache read failed", "key", key, "error", err)
	}

	e, err := r.next.GetByID(ctx, docID)
	if err != nil {
		return e, err
	}

	if data, err := json.Marshal(e); err != nil {
		slog.WarnContext(ctx, "cache encode failed", "key", key, "error", err)
	} else if err := r.cache.client.Set(ctx, key, data, r.cache.ttl).Err(); err != nil {
		slog.WarnContext(ctx, "cache write failed", "key", key, "error", err)
	}

	return e, nil
}

func (r *cachedRepository[T, E]) GetAll(ctx context.Context) ([]E, error) {
	return r.next.GetAll(ctx)
}

func (r *cachedRepository[T, E]) Insert(ctx context.Context, e E) error {
	if err := r.next.Insert(ctx, e); err != nil {
		return err
	}
	r.invalidate(ctx, e.GetID())
	return nil
}

func (r *cachedRepository[T, E]) Replace(ctx context.Context, docID string, e E) error {
	err := r.next.Replace(ctx, docID, e)
	r.invalidate(ctx, docID)
	return err
}

func (r *cachedRepository[T, E]) Delete(ctx context.Context, docID string) error {
	err := r.next.Delete(ctx, docID)
	r.invalidate(ctx, docID)
	return err
}

func (r *cachedRepository[T, E]) invalidate(ctx context.Context, docID string) {
	docID, ok := id.Canonical(docID)
	if !ok {
		return
	}
	key := r.key(docID)
	if err := r.cache.client.Del(ctx, key).Err(); err != nil {
		slog.WarnContext(ctx, "cache invalidation failed", "key", key, "error", err)
	}
}
