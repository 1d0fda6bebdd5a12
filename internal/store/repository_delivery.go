// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-delivery-board/internal/logger"
	"github.com/MKhiriev/go-delivery-board/models"
)

// deliveryRepository is the SQL implementation of [DeliveryRepository]
// working on the "entregas" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type deliveryRepository struct {
	*DB
	logger *logger.Logger
}

// NewDeliveryRepository constructs a [DeliveryRepository] backed by the
// provided database connection and logger.
func NewDeliveryRepository(db *DB, logger *logger.Logger) DeliveryRepository {
	logger.Debug().Msg("creating delivery repository")
	return &deliveryRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *deliveryRepository) CreateSchemaIfAbsent(ctx context.Context) error {
	if err := r.DB.Migrate(); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "deliveryRepository.CreateSchemaIfAbsent").
			Str("dialect", r.dialect).
			Msg("failed to create schema")
		return err
	}
	return nil
}

// AppendRecords inserts records inside one transaction using a single
// prepared statement. Either every record is stored or none is.
func (r *deliveryRepository) AppendRecords(ctx context.Context, records ...models.DeliveryRecord) error {
	if len(records) == 0 {
		return nil
	}

	log := logger.FromContext(ctx)

	query, err := r.buildInsertDeliveryQuery()
	if err != nil {
		log.Err(err).Str("func", "deliveryRepository.AppendRecords").Msg("failed to build insert query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.withRetry(ctx, func() error {
		return r.appendInTx(ctx, query, records)
	})
}

func (r *deliveryRepository) appendInTx(ctx context.Context, query string, records []models.DeliveryRecord) error {
	log := logger.FromContext(ctx)

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "deliveryRepository.AppendRecords").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		log.Err(err).Str("func", "deliveryRepository.AppendRecords").Msg("failed to prepare insert statement")
		return fmt.Errorf("%w: %w", ErrPreparingStatement, err)
	}
	defer stmt.Close()

	for i, rec := range records {
		_, err = stmt.ExecContext(ctx,
			rec.Collaborator,
			rec.Task,
			string(rec.Status),
			string(rec.Department),
			rec.ReferenceMonth,
			rec.DeliveryDate,
			rec.UploadedAt.UTC(),
		)
		if err != nil {
			log.Err(err).
				Str("func", "deliveryRepository.AppendRecords").
				Int("index", i).
				Str("reference_month", rec.ReferenceMonth).
				Msg("failed to insert delivery record")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "deliveryRepository.AppendRecords").Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	log.Debug().Str("func", "deliveryRepository.AppendRecords").Int("count", len(records)).Msg("delivery records appended")
	return nil
}

func (r *deliveryRepository) DeleteByMonth(ctx context.Context, month string) (int64, error) {
	query, args, err := r.buildDeleteByMonthQuery(month)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	deleted, err := r.execDelete(ctx, "deliveryRepository.DeleteByMonth", query, args...)
	if err != nil {
		return 0, err
	}

	logger.FromContext(ctx).Info().
		Str("func", "deliveryRepository.DeleteByMonth").
		Str("reference_month", month).
		Int64("deleted", deleted).
		Msg("month deleted")
	return deleted, nil
}

func (r *deliveryRepository) DeleteAll(ctx context.Context) (int64, error) {
	query, args, err := r.buildDeleteAllQuery()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	deleted, err := r.execDelete(ctx, "deliveryRepository.DeleteAll", query, args...)
	if err != nil {
		return 0, err
	}

	logger.FromContext(ctx).Info().
		Str("func", "deliveryRepository.DeleteAll").
		Int64("deleted", deleted).
		Msg("all deliveries deleted")
	return deleted, nil
}

func (r *deliveryRepository) execDelete(ctx context.Context, funcName, query string, args ...any) (int64, error) {
	var deleted int64
	err := r.withRetry(ctx, func() error {
		res, err := r.DB.ExecContext(ctx, query, args...)
		if err != nil {
			return err
		}
		deleted, err = res.RowsAffected()
		return err
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", funcName).Msg("failed to execute delete")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return deleted, nil
}

func (r *deliveryRepository) DistinctMonths(ctx context.Context) ([]string, error) {
	query, args, err := r.buildDistinctMonthsQuery()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return r.queryStrings(ctx, "deliveryRepository.DistinctMonths", query, args...)
}

func (r *deliveryRepository) DistinctCollaborators(ctx context.Context, ignored string) ([]string, error) {
	query, args, err := r.buildDistinctCollaboratorsQuery(ignored)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return r.queryStrings(ctx, "deliveryRepository.DistinctCollaborators", query, args...)
}

func (r *deliveryRepository) queryStrings(ctx context.Context, funcName, query string, args ...any) ([]string, error) {
	log := logger.FromContext(ctx)

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	values := make([]string, 0, 16)
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			log.Err(err).Str("func", funcName).Msg("failed to scan row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		values = append(values, v)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", funcName).Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return values, nil
}

func (r *deliveryRepository) QueryByMonths(ctx context.Context, months ...string) ([]models.DeliveryRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.buildQueryByMonths(months)
	if err != nil {
		log.Err(err).Str("func", "deliveryRepository.QueryByMonths").Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "deliveryRepository.QueryByMonths").
			Strs("months", months).
			Msg("failed to execute query for deliveries")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	records := make([]models.DeliveryRecord, 0, 128)
	for rows.Next() {
		var (
			rec        models.DeliveryRecord
			status     string
			department string
		)

		scanErr := rows.Scan(
			&rec.ID,
			&rec.Collaborator,
			&rec.Task,
			&status,
			&department,
			&rec.ReferenceMonth,
			&rec.DeliveryDate,
			&rec.UploadedAt,
		)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "deliveryRepository.QueryByMonths").Msg("failed to scan delivery row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		rec.Status = models.Status(status)
		rec.Department = models.Department(department)
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "deliveryRepository.QueryByMonths").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return records, nil
}
