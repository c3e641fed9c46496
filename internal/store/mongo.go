package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/LuizHNR/NebuloHub-Mongo/common/id"
	"github.com/LuizHNR/NebuloHub-Mongo/core/db"
)

type MongoBackend struct {
	conn     *db.Mongo
	database *mongo.Database
}

func NewMongoBackend(conn *db.Mongo) *MongoBackend {
	return &MongoBackend{conn: conn, database: conn.Database()}
}

func (b *MongoBackend) Name() string { return "mongo" }

func (b *MongoBackend) Ping(ctx context.Context) error {
	return b.conn.Ping(ctx)
}

func (b *MongoBackend) Close(ctx context.Context) error {
	return b.conn.Close(ctx)
}

type mongoRepository[T any, E entityPtr[T]] struct {
	col *mongo.Collection
}

func newMongoRepository[T any, E entityPtr[T]](col *mongo.Collection) Repository[E] {
	return &mongoRepository[T, E]{col: col}
}

func (r *mongoRepository[T, E]) GetByID(ctx context.Context, docID string) (E, error) {
	oid, ok := id.Parse(docID)
	if !ok {
		return nil, ErrNotFound
	}

	var out T
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&out); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("finding %s %s: %w", r.col.Name(), docID, err)
	}
	return E(&out), nil
}

func (r *mongoRepository[T, E]) GetAll(ctx context.Context) ([]E, error) {
	cursor, err := r.col.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", r.col.Name(), err)
	}

	var docs []T
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", r.col.Name(), err)
	}

	out := make([]E, len(docs))
	for i := range docs {
		out[i] = E(&docs[i])
	}
	return out, nil
}

func (r *mongoRepository[T, E]) Insert(ctx context.Context, e E) error {
	res, err := r.col.InsertOne(ctx, e)
	if err != nil {
		return fmt.Errorf("inserting into %s: %w", r.col.Name(), err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return fmt.Errorf("inserting into %s: unexpected id type %T", r.col.Name(), res.InsertedID)
	}
	return e.SetID(oid.Hex())
}

func (r *mongoRepository[T, E]) Replace(ctx context.Context, docID string, e E) error {
	oid, ok := id.Parse(docID)
	if !ok {
		return ErrNotFound
	}
	if err := e.SetID(oid.Hex()); err != nil {
		return err
	}

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": oid}, e)
	if err != nil {
		return fmt.Errorf("replacing %s %s: %w", r.col.Name(), docID, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *mongoRepository[T, E]) Delete(ctx context.Context, docID string) error {
	oid, ok := id.Parse(docID)
	if !ok {
		return ErrNotFound
	}

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("deleting %s %s: %w", r.col.Name(), docID, err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
