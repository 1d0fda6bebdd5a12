package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-delivery-board/internal/logger"
	"github.com/MKhiriev/go-delivery-board/models"
)

// profileRepository is the SQL implementation of [ProfileRepository] working
// on the "perfis" table.
type profileRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewProfileRepository constructs a [ProfileRepository] backed by the
// provided database connection and logger.
func NewProfileRepository(db *DB, logger *logger.Logger) ProfileRepository {
	logger.Debug().Msg("creating profile repository")
	return &profileRepository{
		db:     db,
		logger: logger,
	}
}

// GetPasswordHash returns the stored digest of profile.
//
// Error handling:
//   - no row → [ErrCredentialNotFound].
//   - any other driver-level error → wrapped [ErrExecutingQuery].
func (r *profileRepository) GetPasswordHash(ctx context.Context, profile models.Profile) (string, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.buildGetPasswordHashQuery(string(profile))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var hash string
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&hash)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return "", ErrCredentialNotFound
	case err != nil:
		log.Err(err).Str("func", "profileRepository.GetPasswordHash").Str("profile", string(profile)).Msg("failed to read password hash")
		return "", fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return hash, nil
}

// UpsertPasswordHash stores hash for profile, replacing any previous value.
func (r *profileRepository) UpsertPasswordHash(ctx context.Context, profile models.Profile, hash string) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.buildUpsertPasswordHashQuery(string(profile), hash)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.db.withRetry(ctx, func() error {
		_, execErr := r.db.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		log.Err(err).Str("func", "profileRepository.UpsertPasswordHash").Str("profile", string(profile)).Msg("failed to store password hash")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	log.Info().Str("func", "profileRepository.UpsertPasswordHash").Str("profile", string(profile)).Msg("password hash stored")
	return nil
}
