package database

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"job-portal/internal/config"
)

// Connect opens and pings the document store. A failure here is fatal at
// startup: the server must not begin listening without its database.
func Connect(ctx context.Context, cfg config.MongoConfig, logger *zap.SugaredLogger) (*mongo.Database, *mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, nil, err
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, err
	}

	if logger != nil {
		logger.Infow("mongodb connected", "database", cfg.Database)
	}
	return client.Database(cfg.Database), client, nil
}
