// Package docstore owns the site's single long-lived handle to the document
// database. Data-access code reuses the handle; it never opens its own.
package docstore

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
	"go.mongodb.org/mongo-driver/v2/x/mongo/driver/connstring"

	"techexpo.dev/landing/internal/logging"
)

const (
	msgConnectionError = "connection error:"
	msgConnectionOpen  = "connection successful to database"
)

// ErrNotConnected is returned by operations on a Client that holds no handle.
var ErrNotConnected = errors.New("docstore: not connected")

// Client is the shared database handle.
type Client struct {
	config Config
	name   string
	Client *mongo.Client
	DB     *mongo.Database
}

type connectFunc func(ctx context.Context, cfg Config, database string) (*Client, error)

// Open makes exactly one connection attempt and logs its outcome: an error
// record on failure or an info record once the connection is open. There is
// no retry; reconnection after a successful open is left to the driver.
func Open(ctx context.Context, cfg Config, logger *slog.Logger) (*Client, error) {
	return open(ctx, cfg, logger, connectMongo)
}

func open(ctx context.Context, cfg Config, logger *slog.Logger, connect connectFunc) (*Client, error) {
	cfg = NewConfig(cfg.URI, cfg.ConnectTimeout)

	client, err := dial(ctx, cfg, connect)
	if err != nil {
		logging.LogError(logger, msgConnectionError, err,
			slog.String("component", "docstore"))
		return nil, err
	}

	logging.LogOperation(logger, msgConnectionOpen,
		slog.String("database", client.Name()),
		slog.String("component", "docstore"))
	return client, nil
}

func dial(ctx context.Context, cfg Config, connect connectFunc) (*Client, error) {
	database, err := DatabaseName(cfg.URI)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	return connect(ctx, cfg, database)
}

func connectMongo(ctx context.Context, cfg Config, database string) (*Client, error) {
	opts := options.Client().
		ApplyURI(cfg.URI).
		SetConnectTimeout(cfg.ConnectTimeout).
		SetServerSelectionTimeout(cfg.ConnectTimeout)

	mc, err := mongo.Connect(opts)
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}

	if err := mc.Ping(ctx, readpref.Primary()); err != nil {
		// The driver may already hold background monitors; release them.
		_ = mc.Disconnect(context.Background())
		return nil, fmt.Errorf("ping: %w", err)
	}

	return &Client{
		config: cfg,
		name:   database,
		Client: mc,
		DB:     mc.Database(database),
	}, nil
}

// DatabaseName returns the database named in the connection string path, or
// DefaultDatabase when the path is empty.
func DatabaseName(uri string) (string, error) {
	cs, err := connstring.ParseAndValidate(uri)
	if err != nil {
		return "", fmt.Errorf("parse connection string: %w", err)
	}
	if cs.Database == "" {
		return DefaultDatabase, nil
	}
	return cs.Database, nil
}

// Name reports the database the handle points at.
func (c *Client) Name() string {
	if c == nil {
		return ""
	}
	return c.name
}

// Ping reports whether the primary is currently reachable.
func (c *Client) Ping(ctx context.Context) error {
	if c == nil || c.Client == nil {
		return ErrNotConnected
	}
	return c.Client.Ping(ctx, readpref.Primary())
}

// Collection returns a handle to the named collection.
func (c *Client) Collection(name string) *mongo.Collection {
	if c == nil || c.DB == nil {
		return nil
	}
	return c.DB.Collection(name)
}

// Close disconnects the handle. It is safe to call on a nil Client.
func (c *Client) Close(ctx context.Context) error {
	if c == nil || c.Client == nil {
		return nil
	}
	return c.Client.Disconnect(ctx)
}
