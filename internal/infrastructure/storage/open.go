// Package storage elige el almacén de instantáneas según STORE_DRIVER.
package storage

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/OnKodr-dev/inventory-app/internal/application/snapshot"
	"github.com/OnKodr-dev/inventory-app/internal/domain/repository"
	"github.com/OnKodr-dev/inventory-app/internal/infrastructure/filestore"
	"github.com/OnKodr-dev/inventory-app/internal/infrastructure/memory"
	"github.com/OnKodr-dev/inventory-app/internal/infrastructure/postgres"
	"github.com/OnKodr-dev/inventory-app/internal/infrastructure/redis"
	"github.com/OnKodr-dev/inventory-app/internal/infrastructure/sqlite"
	"github.com/OnKodr-dev/inventory-app/pkg/config"
)

// Store almacén abierto y su función de cierre.
type Store struct {
	repository.SnapshotStore
	Driver string
	close  func() error
}

// Close libera conexiones; no hace nada para file y memory.
func (s *Store) Close() error {
	if s.close == nil {
		return nil
	}
	return s.close()
}

// Open abre el almacén configurado. Un fallo aquí es fatal para el arranque; una vez
// abierto, los fallos de lectura/escritura los absorbe snapshot.Persister.
func Open(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*Store, error) {
	driver := cfg.Store.Driver
	switch driver {
	case config.DriverMemory:
		return &Store{SnapshotStore: memory.NewSnapshotStore(), Driver: driver}, nil

	case config.DriverFile:
		s, err := filestore.NewOS(cfg.Store.Dir)
		if err != nil {
			return nil, err
		}
		log.Info().Str("dir", cfg.Store.Dir).Msg("instantáneas en archivos")
		return &Store{SnapshotStore: s, Driver: driver}, nil

	case config.DriverSQLite:
		db, err := sqlite.Open(cfg.Store.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("abrir sqlite: %w", err)
		}
		s, err := sqlite.NewStore(db)
		if err != nil {
			_ = sqlite.CloseDB(db)
			return nil, err
		}
		log.Info().Str("path", cfg.Store.SQLitePath).Msg("instantáneas en sqlite")
		return &Store{SnapshotStore: s, Driver: driver, close: s.Close}, nil

	case config.DriverPostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, fmt.Errorf("conectar postgres: %w", err)
		}
		repo := postgres.NewSnapshotRepository(pool)
		if err := repo.EnsureSchema(ctx); err != nil {
			pool.Close()
			return nil, err
		}
		for _, key := range []string{snapshot.CatalogKey, snapshot.LedgerKey} {
			if kb, err := repo.Size(ctx, key); err == nil {
				log.Debug().Str("key", key).Str("size_kb", kb.String()).Msg("instantánea existente")
			}
		}
		log.Info().Msg("instantáneas en postgres")
		return &Store{SnapshotStore: repo, Driver: driver, close: func() error { pool.Close(); return nil }}, nil

	case config.DriverRedis:
		s, err := redis.NewStore(redis.Config{
			Addr:      cfg.Redis.Addr,
			Password:  cfg.Redis.Password,
			DB:        cfg.Redis.DB,
			KeyPrefix: cfg.Redis.KeyPrefix,
		})
		if err != nil {
			return nil, err
		}
		log.Info().Str("addr", cfg.Redis.Addr).Msg("instantáneas en redis")
		return &Store{SnapshotStore: s, Driver: driver, close: s.Close}, nil
	}
	return nil, fmt.Errorf("STORE_DRIVER desconocido: %q", driver)
}
