package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-delivery-board/internal/config"
	"github.com/MKhiriev/go-delivery-board/internal/logger"
)

// Storages bundles the repositories of one database connection.
type Storages struct {
	DeliveryRepository DeliveryRepository
	ProfileRepository  ProfileRepository

	db *DB
}

// NewStorages connects to the configured database, makes sure the schema
// exists and builds the repositories on top of it.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnect(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	storages := NewStoragesFromDB(db, log)
	if err := storages.DeliveryRepository.CreateSchemaIfAbsent(ctx); err != nil {
		db.Close()
		return nil, err
	}
	log.Info().Str("dialect", db.Dialect()).Msg("storage ready")

	return storages, nil
}

// NewStoragesFromDB builds the repositories on an already opened database.
func NewStoragesFromDB(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		DeliveryRepository: NewDeliveryRepository(db, log),
		ProfileRepository:  NewProfileRepository(db, log),
		db:                 db,
	}
}

// Close releases the database connection pool.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
