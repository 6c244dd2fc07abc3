package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const defaultTimeout = 10 * time.Second

// defaultDatabase is the portal's record store database, holding the users,
// applications, and counters collections.
const defaultDatabase = "bewerbungsportal"

// Config captures the settings for reaching the record store.
type Config struct {
	URI      string
	Database string
	Timeout  time.Duration
}

// Connect opens the record store and verifies it with a ping before any
// repository is built on top of it. An empty database name falls back to the
// portal default; the timeout bounds both dialing and the ping.
func Connect(ctx context.Context, cfg Config) (*mongo.Client, *mongo.Database, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	database := cfg.Database
	if database == "" {
		database = defaultDatabase
	}

	connectCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, nil, fmt.Errorf("record store connect: %w", err)
	}

	if err := client.Ping(connectCtx, nil); err != nil {
		_ = client.Disconnect(connectCtx)
		return nil, nil, fmt.Errorf("record store ping: %w", err)
	}

	return client, client.Database(database), nil
}
