// Package storage selects the contact repository backend from configuration.
package storage

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"phonebook-service/internal/adapters/secondary/filestore"
	"phonebook-service/internal/adapters/secondary/postgres"
	"phonebook-service/internal/config"
	"phonebook-service/internal/core/ports/output"
)

// Open builds the configured backend. The returned func releases it.
// With Storage.Watch set, the snapshot file is watched until ctx is done.
func Open(ctx context.Context, cfg config.Config) (ports.ContactRepository, func(), error) {
	switch cfg.Storage.Backend {
	case config.StorageBackendPostgres:
		pool, err := postgres.Connect(ctx, cfg.Database)
		if err != nil {
			return nil, nil, err
		}
		if err := postgres.EnsureSchema(ctx, pool); err != nil {
			pool.Close()
			return nil, nil, err
		}
		return postgres.NewContactRepository(pool), pool.Close, nil

	case config.StorageBackendFile:
		repo, err := filestore.NewContactRepository(cfg.Storage.File)
		if err != nil {
			return nil, nil, err
		}
		log.WithField("path", repo.Path()).Debug("using snapshot file storage")

		if cfg.Storage.Watch {
			go func() {
				if err := filestore.Watch(ctx, repo); err != nil {
					log.WithError(err).Error("snapshot watcher stopped")
				}
			}()
		}
		return repo, func() {}, nil

	default:
		return nil, nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
}
