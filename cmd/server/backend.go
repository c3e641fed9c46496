package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/LuizHNR/NebuloHub-Mongo/common/arangodb"
	"github.com/LuizHNR/NebuloHub-Mongo/core/config"
	"github.com/LuizHNR/NebuloHub-Mongo/core/db"
	"github.com/LuizHNR/NebuloHub-Mongo/internal/store"
)

func openBackend(ctx context.Context, cfg config.Config, cols store.Collections) (store.Backend, error) {
	switch cfg.Store.Driver {
	case config.DriverMongo:
		conn, err := db.NewMongo(ctx, cfg.Store.Mongo)
		if err != nil {
			return nil, err
		}
		return store.NewMongoBackend(conn), nil

	case config.DriverPostgres:
		database, err := db.New(ctx, cfg.Store.Postgres)
		if err != nil {
			return nil, err
		}
		backend := store.NewPostgresBackend(database)
		if err := backend.EnsureSchema(ctx, cols); err != nil {
			database.Close()
			return nil, err
		}
		return backend, nil

	case config.DriverArango:
		client, err := arangodb.New(ctx, arangodb.Config{
			URL:      cfg.Store.Arango.URL,
			Username: cfg.Store.Arango.Username,
			Password: cfg.Store.Arango.Password,
			Database: cfg.Store.Arango.Database,
		})
		if err != nil {
			return nil, err
		}
		backend := store.NewArangoBackend(client)
		if err := backend.EnsureSchema(ctx, cols); err != nil {
			_ = client.Close()
			return nil, err
		}
		return backend, nil

	case config.DriverMemory:
		slog.WarnContext(ctx, "using in-memory store, data is lost on restart")
		return store.NewMemoryBackend(), nil
	}

	return nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
}

// openCache returns a nil cache when REDIS_URL is unset.
func openCache(ctx context.Context, cfg config.RedisConfig) (*store.Cache, func(), error) {
	if !cfg.Enabled() {
		return nil, func() {}, nil
	}

	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, nil, fmt.Errorf("parsing redis url: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, nil, fmt.Errorf("pinging redis: %w", err)
	}
	slog.InfoContext(ctx, "redis connected", "prefix", cfg.KeyPrefix, "ttl", cfg.TTL)

	return store.NewCache(client, cfg.KeyPrefix, cfg.TTL), func() { _ = client.Close() }, nil
}
