package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/LuizHNR/NebuloHub-Mongo/common/id"
	"github.com/LuizHNR/NebuloHub-Mongo/core/db"
)

// PostgresBackend keeps each collection as a JSONB document table.
type PostgresBackend struct {
	db *db.DB
}

func NewPostgresBackend(database *db.DB) *PostgresBackend {
	return &PostgresBackend{db: database}
}

func (b *PostgresBackend) Name() string { return "postgres" }

func (b *PostgresBackend) Ping(ctx context.Context) error {
	return b.db.Ping(ctx)
}

func (b *PostgresBackend) Close(_ context.Context) error {
	b.db.Close()
	return nil
}

// EnsureSchema creates the document table of every collection.
func (b *PostgresBackend) EnsureSchema(ctx context.Context, cols Collections) error {
	return b.db.WithTx(ctx, func(tx pgx.Tx) error {
		for _, name := range cols.Names() {
			stmt := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
				id         text PRIMARY KEY,
				doc        jsonb NOT NULL,
				created_at timestamptz NOT NULL DEFAULT now()
			)`, tableName(name))
			if _, err := tx.Exec(ctx, stmt); err != nil {
				return fmt.Errorf("creating table %s: %w", name, err)
			}
		}
		return nil
	})
}

func tableName(collection string) string {
	return pgx.Identifier{collection}.Sanitize()
}

type postgresRepository[T any, E entityPtr[T]] struct {
	pool  *pgxpool.Pool
	name  string
	table string
}

func newPostgresRepository[T any, E entityPtr[T]](pool *pgxpool.Pool, collection string) Repository[E] {
	return &postgresRepository[T, E]{pool: pool, name: collection, table: tableName(collection)}
}

func (r *postgresRepository[T, E]) GetByID(ctx context.Context, docID string) (E, error) {
	docID, ok := id.Canonical(docID)
	if !ok {
		return nil, ErrNotFound
	}

	var out T
	err := r.pool.QueryRow(ctx, `SELECT doc FROM `+r.table+` WHERE id = $1`, docID).Scan(&out)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("finding %s %s: %w", r.name, docID, err)
	}

	e := E(&out)
	if err := e.SetID(docID); err != nil {
		return nil, err
	}
	return e, nil
}

func (r *postgresRepository[T, E]) GetAll(ctx context.Context) ([]E, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, doc FROM `+r.table+` ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", r.name, err)
	}
	defer rows.Close()

	var out []E
	for rows.Next() {
		var (
			docID string
			doc   T
		)
		if err := rows.Scan(&docID, &doc); err != nil {
			return nil, fmt.Errorf("scanning %s: %w", r.name, err)
		}
		e := E(&doc)
		if err := e.SetID(docID); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listing %s: %w", r.name, err)
	}
	return out, nil
}

func (r *postgresRepository[T, E]) Insert(ctx context.Context, e E) error {
	docID := id.NewObjectID()
	if err := e.SetID(docID); err != nil {
		return err
	}

	if _, err := r.pool.Exec(ctx, `INSERT INTO `+r.table+` (id, doc) VALUES ($1, $2)`, docID, e); err != nil {
		return fmt.Errorf("inserting into %s: %w", r.name, err)
	}
	return nil
}

func (r *postgresRepository[T, E]) Replace(ctx context.Context, docID string, e E) error {
	docID, ok := id.Canonical(docID)
	if !ok {
		return ErrNotFound
	}
	if err := e.SetID(docID); err != nil {
		return err
	}

	tag, err := r.pool.Exec(ctx, `UPDATE `+r.table+` SET doc = $2 WHERE id = $1`, docID, e)
	if err != nil {
		return fmt.Errorf("replacing %s %s: %w", r.name, docID, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *postgresRepository[T, E]) Delete(ctx context.Context, docID string) error {
	docID, ok := id.Canonical(docID)
	if !ok {
		return ErrNotFound
	}

	tag, err := r.pool.Exec(ctx, `DELETE FROM `+r.table+` WHERE id = $1`, docID)
	if err != nil {
		return fmt.Errorf("deleting %s %s: %w", r.name, docID, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
