package main

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"kuesioner/config"
	"kuesioner/controllers"
	"kuesioner/db"
	"kuesioner/metrics"
	"kuesioner/store"
	"kuesioner/survey"
	"kuesioner/tools"
)

// openStorage builds the configured storage backend. closeFn releases
// whatever connection it opened.
func openStorage(ctx context.Context, c config.Configuration, logger *zap.Logger) (s store.Storage, closeFn func(), err error) {
	switch c.Storage.Backend {
	case config.StorageMemory:
		return store.NewMemoryStorage(), func() {}, nil
	case config.StorageDatabase:
		database, err := db.Connect(c, logger)
		if err != nil {
			return nil, nil, err
		}
		return db.NewGormStorage(database), func() { database.Close() }, nil
	case config.StorageRedis:
		client, err := db.NewRedis(ctx, c.RedisURL)
		if err != nil {
			return nil, nil, err
		}
		return store.NewRedisStorage(client, ""), func() { client.Close() }, nil
	case config.StorageFile, "":
		fs, err := store.NewFileStorage(c.Storage.Path)
		if err != nil {
			return nil, nil, err
		}
		return fs, func() {}, nil
	}
	return nil, nil, fmt.Errorf("unknown storage backend %q", c.Storage.Backend)
}

// newEnv assembles the collaborators shared by the HTTP API and the CLI.
func newEnv(records *store.RecordStore, c config.Configuration, logger *zap.Logger, m *metrics.Metrics) *controllers.Env {
	transport := tools.HTTPTransport{EndpointURL: c.EndpointURL}
	return &controllers.Env{
		Form:      survey.DefaultForm(),
		Records:   records,
		Submitter: tools.NewSubmitter(transport, logger, m),
		Metrics:   m,
		Logger:    logger,
	}
}
