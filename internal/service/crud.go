package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/LuizHNR/NebuloHub-Mongo/common/logger"
	"github.com/LuizHNR/NebuloHub-Mongo/common/metrics"
	"github.com/LuizHNR/NebuloHub-Mongo/internal/model"
	"github.com/LuizHNR/NebuloHub-Mongo/internal/store"
)

// crud holds the orchestration shared by every entity service.
type crud[E model.Entity] struct {
	repo    store.Repository[E]
	kind    model.Kind
	metrics *metrics.Metrics
}

func (c crud[E]) withFields(ctx context.Context, entityID string) context.Context {
	fields := logger.LogFields{
		EntityKind: logger.Ptr(string(c.kind)),
		Component:  "nebulo.service." + string(c.kind),
	}
	if entityID != "" {
		fields.EntityID = logger.Ptr(entityID)
	}
	return logger.WithLogFields(ctx, fields)
}

func (c crud[E]) create(ctx context.Context, e E) (E, error) {
	var zero E
	sc := logger.StartSpan(ctx, "service."+string(c.kind)+".create")
	defer sc.End()
	ctx = c.withFields(sc.Context(), "")

	if err := c.repo.Insert(ctx, e); err != nil {
		sc.RecordError(err)
		slog.ErrorContext(ctx, "failed to create "+string(c.kind), "error", err)
		return zero, fmt.Errorf("creating %s: %w", c.kind, err)
	}

	c.metrics.EntityCreated(string(c.kind))
	slog.InfoContext(ctx, string(c.kind)+" created", "id", e.GetID())
	return e, nil
}

func (c crud[E]) list(ctx context.Context, page, pageSize int) ([]E, error) {
	ctx = c.withFields(ctx, "")

	all, err := c.repo.GetAll(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "failed to list "+string(c.kind), "error", err)
		return nil, fmt.Errorf("listing %s: %w", c.kind, err)
	}
	return Paginate(all, page, pageSize), nil
}

func (c crud[E]) get(ctx context.Context, id string) (E, error) {
	var zero E
	ctx = c.withFields(ctx, id)

	e, err := c.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return zero, ErrNotFound
		}
		slog.ErrorContext(ctx, "failed to get "+string(c.kind), "error", err)
		return zero, fmt.Errorf("getting %s: %w", c.kind, err)
	}
	return e, nil
}

// update fetches the document, lets apply mutate it and replaces it by id.
// A document deleted between fetch and replace is reported as not found.
func (c crud[E]) update(ctx context.Context, id string, apply func(e E) error) (E, error) {
	var zero E
	sc := logger.StartSpan(ctx, "service."+string(c.kind)+".update")
	defer sc.End()
	ctx = c.withFields(sc.Context(), id)

	e, err := c.get(ctx, id)
	if err != nil {
		return zero, err
	}

	if err := apply(e); err != nil {
		sc.RecordError(err)
		return zero, err
	}

	if err := c.repo.Replace(ctx, id, e); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return zero, ErrNotFound
		}
		sc.RecordError(err)
		slog.ErrorContext(ctx, "failed to update "+string(c.kind), "error", err)
		return zero, fmt.Errorf("updating %s: %w", c.kind, err)
	}

	slog.InfoContext(ctx, string(c.kind)+" updated")
	return e, nil
}

// remove deletes by id and reports whether a document existed.
func (c crud[E]) remove(ctx context.Context, id string) (bool, error) {
	ctx = c.withFields(ctx, id)

	if err := c.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return false, nil
		}
		slog.ErrorContext(ctx, "failed to delete "+string(c.kind), "error", err)
		return false, fmt.Errorf("deleting %s: %w", c.kind, err)
	}

	c.metrics.EntityDeleted(string(c.kind))
	slog.InfoContext(ctx, string(c.kind)+" deleted")
	return true, nil
}
