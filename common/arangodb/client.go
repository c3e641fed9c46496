package arangodb

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/arangodb/go-driver/v2/arangodb"
	"github.com/arangodb/go-driver/v2/connection"
)

type Config struct {
	URL      string
	Username string
	Password string
	Database string
}

func (c Config) Validate() error {
	if c.URL == "" {
		return fmt.Errorf("arangodb URL is required")
	}
	if c.Username == "" {
		return fmt.Errorf("arangodb username is required")
	}
	if c.Database == "" {
		return fmt.Errorf("arangodb database name is required")
	}
	return nil
}

// Client owns the connection to one ArangoDB database. EnsureDatabase must be
// called before Database or EnsureCollections.
type Client struct {
	arangoClient arangodb.Client
	db           arangodb.Database
	cfg          Config
}

func New(ctx context.Context, cfg Config) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("arangodb config: %w", err)
	}

	endpoint := connection.NewRoundRobinEndpoints([]string{cfg.URL})
	conn := connection.NewHttp2Connection(connection.DefaultHTTP2ConfigurationWrapper(endpoint, true))

	auth := connection.NewBasicAuth(cfg.Username, cfg.Password)
	if err := conn.SetAuthentication(auth); err != nil {
		return nil, fmt.Errorf("arangodb auth: %w", err)
	}

	return &Client{
		arangoClient: arangodb.NewClient(conn),
		cfg:          cfg,
	}, nil
}

func (c *Client) Close() error {
	return nil
}

// Database returns the handle resolved by EnsureDatabase, or nil.
func (c *Client) Database() arangodb.Database {
	return c.db
}

// Ping checks server reachability.
func (c *Client) Ping(ctx context.Context) error {
	if _, err := c.arangoClient.Version(ctx); err != nil {
		return fmt.Errorf("arangodb version: %w", err)
	}
	return nil
}

func (c *Client) EnsureDatabase(ctx context.Context) error {
	start := time.Now()

	exists, err := c.arangoClient.DatabaseExists(ctx, c.cfg.Database)
	if err != nil {
		return fmt.Errorf("check database exists: %w", err)
	}

	if !exists {
		_, err = c.arangoClient.CreateDatabase(ctx, c.cfg.Database, nil)
		if err != nil {
			return fmt.Errorf("create database: %w", err)
		}
		slog.InfoContext(ctx, "arangodb database created",
			"database", c.cfg.Database,
			"duration_ms", time.Since(start).Milliseconds())
	}

	db, err := c.arangoClient.GetDatabase(ctx, c.cfg.Database, nil)
	if err != nil {
		return fmt.Errorf("get database: %w", err)
	}
	c.db = db

	return nil
}

// EnsureCollections creates any missing document collections.
func (c *Client) EnsureCollections(ctx context.Context, names ...string) error {
	if c.db == nil {
		return fmt.Errorf("database not initialized, call EnsureDatabase first")
	}

	for _, name := range names {
		if err := c.ensureCollection(ctx, name); err != nil {
			return err
		}
	}
	return nil
}

func (c *Client) ensureCollection(ctx context.Context, name string) error {
	exists, err := c.db.CollectionExists(ctx, name)
	if err != nil {
		return fmt.Errorf("check collection %s exists: %w", name, err)
	}
	if exists {
		return nil
	}

	colType := arangodb.CollectionTypeDocument
	_, err = c.db.CreateCollectionV2(ctx, name, &arangodb.CreateCollectionPropertiesV2{
		Type: &colType,
	})
	if err != nil {
		return fmt.Errorf("create collection %s: %w", name, err)
	}
	slog.InfoContext(ctx, "arangodb collection created", "collection", name)

	return nil
}
