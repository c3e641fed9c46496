package service_test

import (
	"context"

	"github.com/LuizHNR/NebuloHub-Mongo/internal/model"
	"github.com/LuizHNR/NebuloHub-Mongo/internal/store"
)

type mockRepository[E model.Entity] struct {
	getByIDFn func(ctx context.Context, id string) (E, error)
	getAllFn  func(ctx context.Context) ([]E, error)
	insertFn  func(ctx context.Context, e E) error
	replaceFn func(ctx context.Context, id string, e E) error
	deleteFn  func(ctx context.Context, id string) error
}

var _ store.AccountStore = (*mockRepository[*model.Account])(nil)

func (m *mockRepository[E]) GetByID(ctx context.Context, id string) (E, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	var zero E
	return zero, store.ErrNotFound
}

func (m *mockRepository[E]) GetAll(ctx context.Context) ([]E, error) {
	if m.getAllFn != nil {
		return m.getAllFn(ctx)
	}
	return nil, nil
}

func (m *mockRepository[E]) Insert(ctx context.Context, e E) error {
	if m.insertFn != nil {
		return m.insertFn(ctx, e)
	}
	return nil
}

func (m *mockRepository[E]) Replace(ctx context.Context, id string, e E) error {
	if m.replaceFn != nil {
		return m.replaceFn(ctx, id, e)
	}
	return nil
}

func (m *mockRepository[E]) Delete(ctx context.Context, id string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

type mockHasher struct {
	hashFn    func(secret string) (string, error)
	compareFn func(hash, secret string) error
}

func (m *mockHasher) Hash(secret string) (string, error) {
	if m.hashFn != nil {
		return m.hashFn(secret)
	}
	return "hashed:" + secret, nil
}

func (m *mockHasher) Compare(hash, secret string) error {
	if m.compareFn != nil {
		return m.compareFn(hash, secret)
	}
	if hash == "hashed:"+secret {
		return nil
	}
	return errMismatch
}
