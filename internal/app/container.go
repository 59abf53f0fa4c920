package app

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"job-portal/internal/config"
	"job-portal/internal/database"
	"job-portal/internal/domain/application"
	"job-portal/internal/domain/job"
	"job-portal/internal/domain/user"
	"job-portal/internal/infrastructure/cache"
	"job-portal/internal/infrastructure/media"
	"job-portal/internal/infrastructure/persistence/mongodb"
)

// Container wires the long-lived resources: one database client, one
// cache client and one media client, shared by every request.
type Container struct {
	Config config.Config
	Logger *zap.SugaredLogger

	mongoClient *mongo.Client

	Users        user.Repository
	Jobs         job.Repository
	Applications application.Repository

	Cache *cache.Redis
	Media media.Store
}

func NewContainer(cfg config.Config, logger *zap.SugaredLogger) (*Container, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()

	db, client, err := database.Connect(ctx, cfg.Mongo, logger)
	if err != nil {
		return nil, err
	}

	users, err := mongodb.NewUserRepository(ctx, db)
	if err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}
	jobs, err := mongodb.NewJobRepository(ctx, db)
	if err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}
	apps, err := mongodb.NewApplicationRepository(ctx, db)
	if err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}

	store, err := media.NewCloudinaryStore(cfg.Cloudinary)
	if err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}

	return &Container{
		Config:       cfg,
		Logger:       logger,
		mongoClient:  client,
		Users:        users,
		Jobs:         jobs,
		Applications: apps,
		Cache:        cache.NewRedis(cfg.Redis, logger),
		Media:        store,
	}, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}

	var firstErr error
	if c.Cache != nil {
		if err := c.Cache.Close(); err != nil {
			firstErr = err
		}
	}
	if c.mongoClient != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := c.mongoClient.Disconnect(ctx); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
