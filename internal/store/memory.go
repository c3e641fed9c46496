package store

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/LuizHNR/NebuloHub-Mongo/common/id"
)

// MemoryBackend is a process-local backend for tests and local development.
// Documents are held bson-encoded so callers never share state with the store.
type MemoryBackend struct {
	mu          sync.Mutex
	collections map[string]*memoryCollection
}

func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{collections: make(map[string]*memoryCollection)}
}

func (b *MemoryBackend) Name() string { return "memory" }

func (b *MemoryBackend) Ping(context.Context) error { return nil }

func (b *MemoryBackend) Close(context.Context) error { return nil }

func (b *MemoryBackend) collection(name string) *memoryCollection {
	b.mu.Lock()
	defer b.mu.Unlock()

	c, ok := b.collections[name]
	if !ok {
		c = &memoryCollection{docs: make(map[string][]byte)}
		b.collections[name] = c
	}
	return c
}

type memoryCollection struct {
	mu    sync.RWMutex
	docs  map[string][]byte
	order []string
}

type memoryRepository[T any, E entityPtr[T]] struct {
	c *memoryCollection
}

func newMemoryRepository[T any, E entityPtr[T]](c *memoryCollection) Repository[E] {
	return &memoryRepository[T, E]{c: c}
}

func (r *memoryRepository[T, E]) GetByID(_ context.Context, docID string) (E, error) {
	docID, ok := id.Canonical(docID)
	if !ok {
		return nil, ErrNotFound
	}

	r.c.mu.RLock()
	raw, ok := r.c.docs[docID]
	r.c.mu.RUnlock()
	if !ok {
		return nil, ErrNotFound
	}
	return decodeMemory[T, E](docID, raw)
}

func (r *memoryRepository[T, E]) GetAll(_ context.Context) ([]E, error) {
	r.c.mu.RLock()
	defer r.c.mu.RUnlock()

	out := make([]E, 0, len(r.c.order))
	for _, docID := range r.c.order {
		e, err := decodeMemory[T, E](docID, r.c.docs[docID])
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

func (r *memoryRepository[T, E]) Insert(_ context.Context, e E) error {
	docID := id.NewObjectID()
	if err := e.SetID(docID); err != nil {
		return err
	}
	raw, err := bson.Marshal(e)
	if err != nil {
		return fmt.Errorf("encoding document: %w", err)
	}

	r.c.mu.Lock()
	defer r.c.mu.Unlock()
	r.c.docs[docID] = raw
	r.c.order = append(r.c.order, docID)
	return nil
}

func (r *memoryRepository[T, E]) Replace(_ context.Context, docID string, e E) error {
	docID, ok := id.Canonical(docID)
	if !ok {
		return ErrNotFound
	}
	if err := e.SetID(docID); err != nil {
		return err
	}
	raw, err := bson.Marshal(e)
	if err != nil {
		return fmt.Errorf("encoding document: %w", err)
	}

	r.c.mu.Lock()
	defer r.c.mu.Unlock()
	if _, ok := r.c.docs[docID]; !ok {
		return ErrNotFound
	}
	r.c.docs[docID] = raw
	return nil
}

func (r *memoryRepository[T, E]) Delete(_ context.Context, docID string) error {
	docID, ok := id.Canonical(docID)
	if !ok {
		return ErrNotFound
	}

	r.c.mu.Lock()
	defer r.c.mu.Unlock()

	if _, ok := r.c.docs[docID]; !ok {
		return ErrNotFound
	}
	delete(r.c.docs, docID)
	r.c.order = slices.DeleteFunc(r.c.order, func(s string) bool { return s == docID })
	return nil
}

func decodeMemory[T any, E entityPtr[T]](docID string, raw []byte) (E, error) {
	var out T
	if err := bson.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("decoding document %s: %w", docID, err)
	}
	e := E(&out)
	if err := e.SetID(docID); err != nil {
		return nil, err
	}
	return e, nil
}
