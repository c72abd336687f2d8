package db

import (
	"context"
	"os"
	"strconv"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"posts-api/models"
)

const defaultMaxPoolSize uint64 = 20

type Config struct {
	MongoURI       string
	Database       string
	PostCollection string
	MaxPoolSize    uint64
}

// LoadDBConfig retrieves the MongoDB settings from environment variables.
func LoadDBConfig() (*Config, error) {
	cfg := &Config{
		MongoURI:       os.Getenv("MONGODB_URI"),
		Database:       os.Getenv("MONGO_INITDB_DATABASE"),
		PostCollection: os.Getenv("MONGODB_POST_COLLECTION"),
		MaxPoolSize:    defaultMaxPoolSize,
	}

	if cfg.MongoURI == "" {
		return nil, errors.New("MongoDB URI (MONGODB_URI) environment variable is not set")
	}
	if cfg.Database == "" {
		return nil, errors.New("database name (MONGO_INITDB_DATABASE) environment variable is not set")
	}
	if cfg.PostCollection == "" {
		return nil, errors.New("post collection (MONGODB_POST_COLLECTION) environment variable is not set")
	}

	if raw := os.Getenv("MONGODB_MAX_POOL_SIZE"); raw != "" {
		n, err := strconv.ParseUint(raw, 10, 64)
		if err != nil || n == 0 {
			return nil, errors.Errorf("invalid MONGODB_MAX_POOL_SIZE %q", raw)
		}
		cfg.MaxPoolSize = n
	}

	return cfg, nil
}

// Connect opens a MongoDB client and verifies the deployment is reachable.
// The returned client is safe for concurrent use and owns its connection pool.
func Connect(ctx context.Context, cfg *Config, logger zerolog.Logger) (*mongo.Client, error) {
	opts := options.Client().
		ApplyURI(cfg.MongoURI).
		SetMaxPoolSize(cfg.MaxPoolSize)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, models.DatabaseError(err, "failed to open database connection")
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, models.DatabaseError(err, "failed to ping database")
	}

	logger.Info().
		Str("database", cfg.Database).
		Str("collection", cfg.PostCollection).
		Msg("database connection initialized successfully")
	return client, nil
}

// PostCollection returns the configured posts collection of client.
func PostCollection(client *mongo.Client, cfg *Config) *mongo.Collection {
	return client.Database(cfg.Database).Collection(cfg.PostCollection)
}
