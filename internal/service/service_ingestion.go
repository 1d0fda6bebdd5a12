// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/MKhiriev/go-delivery-board/internal/classifier"
	"github.com/MKhiriev/go-delivery-board/internal/config"
	"github.com/MKhiriev/go-delivery-board/internal/logger"
	"github.com/MKhiriev/go-delivery-board/internal/metrics"
	"github.com/MKhiriev/go-delivery-board/internal/spreadsheet"
	"github.com/MKhiriev/go-delivery-board/internal/store"
	"github.com/MKhiriev/go-delivery-board/internal/textnorm"
	"github.com/MKhiriev/go-delivery-board/internal/utils"
	"github.com/MKhiriev/go-delivery-board/models"
)

type idGenerator interface {
	Generate() string
}

// ingestionService validates, classifies and stores uploaded tables.
type ingestionService struct {
	deliveryRepository store.DeliveryRepository

	columns             models.ColumnSet
	replaceScope        models.ReplaceScope
	ignoredCollaborator string
	defaultCollaborator string
	defaultTask         string

	ids     idGenerator
	now     func() time.Time
	metrics *metrics.Metrics
	logger  *logger.Logger
}

// NewIngestionService constructs an IngestionService writing to
// deliveryRepository with the column aliases and defaults from cfg.
func NewIngestionService(deliveryRepository store.DeliveryRepository, cfg config.Ingest, m *metrics.Metrics, logger *logger.Logger) IngestionService {
	return &ingestionService{
		deliveryRepository:  deliveryRepository,
		columns:             cfg.ColumnSet(),
		replaceScope:        models.ReplaceScope(cfg.ReplaceScope),
		ignoredCollaborator: cfg.IgnoredCollaborator,
		defaultCollaborator: cfg.DefaultCollaborator,
		defaultTask:         cfg.DefaultTask,
		ids:                 utils.NewUUIDGenerator(),
		now:                 time.Now,
		metrics:             m,
		logger:              logger,
	}
}

// Ingest runs the upload pipeline:
//  1. Admin gate.
//  2. Header matching against the configured column set.
//  3. Day-first date parsing; rows with unparseable dates are dropped.
//  4. Replace-mode deletion of the affected months.
//  5. Classification, default fill and a single append of every row.
//
// A *SchemaError or ErrNoValidRows leaves the store untouched.
func (s *ingestionService) Ingest(ctx context.Context, state models.SessionState, req models.IngestRequest) (models.IngestResult, error) {
	log := logger.FromContext(ctx)

	if err := RequireAdmin(state); err != nil {
		s.metrics.RecordUpload(metrics.ResultRejected)
		return models.IngestResult{}, err
	}

	scope := s.replaceScope
	if !scope.IsValid() {
		scope = models.ReplaceBatchMonths
	}
	if req.Replace && scope == models.ReplaceSelectedMonth && !spreadsheet.ValidMonth(req.Month) {
		s.metrics.RecordUpload(metrics.ResultError)
		return models.IngestResult{}, fmt.Errorf("%w: %q", ErrMonthRequired, req.Month)
	}

	index, err := s.matchColumns(req.Table.Headers)
	if err != nil {
		log.Warn().Err(err).Str("file", req.FileName).Msg("upload rejected")
		s.metrics.RecordUpload(metrics.ResultSchemaError)
		return models.IngestResult{}, err
	}

	result := models.IngestResult{BatchID: s.ids.Generate()}
	uploadedAt := s.now().UTC()

	records := make([]models.DeliveryRecord, 0, len(req.Table.Rows))
	months := make(map[string]struct{})
	for i, row := range req.Table.Rows {
		deliveryDate, err := spreadsheet.ParseDate(cell(row, index, models.ColumnDate), req.Table.SerialDates)
		if err != nil {
			// header is row 1
			log.Debug().Err(err).Int("row", i+2).Str("file", req.FileName).Msg("dropping row with invalid date")
			result.DroppedInvalidDate++
			continue
		}

		rec := s.buildRecord(row, index, deliveryDate, uploadedAt, &result)
		months[rec.ReferenceMonth] = struct{}{}
		records = append(records, rec)
	}

	if len(records) == 0 {
		s.metrics.RecordIngest(result)
		s.metrics.RecordUpload(metrics.ResultNoValidRows)
		return result, ErrNoValidRows
	}

	for m := range months {
		result.Months = append(result.Months, m)
	}
	slices.Sort(result.Months)

	if req.Replace {
		toReplace := result.Months
		if scope == models.ReplaceSelectedMonth {
			toReplace = []string{req.Month}
		}
		for _, m := range toReplace {
			deleted, err := s.deliveryRepository.DeleteByMonth(ctx, m)
			if err != nil {
				log.Err(err).Str("func", "ingestionService.Ingest").Str("month", m).Msg("error replacing month")
				s.metrics.RecordUpload(metrics.ResultError)
				return models.IngestResult{}, fmt.Errorf("error replacing month %s: %w", m, err)
			}
			log.Info().Str("month", m).Int64("deleted", deleted).Msg("month replaced")
		}
		result.ReplacedMonths = toReplace
	}

	if err := s.deliveryRepository.AppendRecords(ctx, records...); err != nil {
		log.Err(err).Str("func", "ingestionService.Ingest").Msg("error storing records")
		s.metrics.RecordUpload(metrics.ResultError)
		return models.IngestResult{}, fmt.Errorf("error storing records: %w", err)
	}
	result.Written = len(records)

	log.Info().
		Str("batch_id", result.BatchID).
		Str("file", req.FileName).
		Int("written", result.Written).
		Int("dropped_invalid_date", result.DroppedInvalidDate).
		Int("fallback_classified", result.FallbackClassified).
		Strs("months", result.Months).
		Msg("upload ingested")

	s.metrics.RecordIngest(result)
	s.metrics.RecordUpload(metrics.ResultOK)
	return result, nil
}

func (s *ingestionService) buildRecord(row []string, index map[string]int, deliveryDate, uploadedAt time.Time, result *models.IngestResult) models.DeliveryRecord {
	collaborator := cell(row, index, models.ColumnCollaborator)
	if collaborator == "" {
		collaborator = s.defaultCollaborator
	}
	task := cell(row, index, models.ColumnTask)
	if task == "" {
		task = s.defaultTask
	}

	classified := classifier.ClassifyDepartment(task, cell(row, index, models.ColumnDepartment))
	if classified.Rule == classifier.RuleFallback {
		result.FallbackClassified++
	}
	if s.ignoredCollaborator != "" && collaborator == s.ignoredCollaborator {
		result.IgnoredCollaborator++
	}

	return models.DeliveryRecord{
		Collaborator:   collaborator,
		Task:           task,
		Status:         classifier.Status(cell(row, index, models.ColumnStatus)),
		Department:     classified.Department,
		ReferenceMonth: spreadsheet.MonthKey(deliveryDate),
		DeliveryDate:   spreadsheet.FormatDate(deliveryDate),
		UploadedAt:     uploadedAt,
	}
}

// matchColumns maps every logical column to the index of the first header
// whose normalized text equals one of its accepted spellings.
func (s *ingestionService) matchColumns(headers []string) (map[string]int, error) {
	normalized := make([]string, len(headers))
	for i, h := range headers {
		normalized[i] = textnorm.String(h)
	}

	index := make(map[string]int, len(s.columns))
	for logical, aliases := range s.columns {
		if i := findHeader(normalized, aliases); i >= 0 {
			index[logical] = i
		}
	}

	var missing []string
	for _, logical := range models.RequiredColumns {
		if _, ok := index[logical]; !ok {
			missing = append(missing, s.headerName(logical))
		}
	}
	if len(missing) > 0 {
		return nil, &SchemaError{Missing: missing, Detected: normalized}
	}

	return index, nil
}

// headerName returns the normalized header expected for a logical column.
func (s *ingestionService) headerName(logical string) string {
	if aliases := s.columns[logical]; len(aliases) > 0 {
		return textnorm.String(aliases[0])
	}
	return logical
}

func findHeader(normalized, aliases []string) int {
	for _, alias := range aliases {
		for i, h := range normalized {
			if textnorm.Equal(h, alias) {
				return i
			}
		}
	}
	return -1
}

// cell returns the trimmed value of the logical column in row, or "" when
// the column is absent.
func cell(row []string, index map[string]int, logical string) string {
	i, ok := index[logical]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// IsSchemaError reports whether err carries a *SchemaError and returns it.
func IsSchemaError(err error) (*SchemaError, bool) {
	var schemaErr *SchemaError
	if errors.As(err, &schemaErr) {
		return schemaErr, true
	}
	return nil, false
}
