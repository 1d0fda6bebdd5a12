// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package metrics holds the Prometheus collectors of the delivery board.
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/MKhiriev/go-delivery-board/models"
)

// Row outcomes reported by ingestion.
const (
	OutcomeWritten             = "written"
	OutcomeDroppedInvalidDate  = "dropped_invalid_date"
	OutcomeIgnoredCollaborator = "ignored_collaborator"
	OutcomeFallbackClassified  = "fallback_classified"
)

// Upload and login results.
const (
	ResultOK            = "ok"
	ResultSchemaError   = "schema_error"
	ResultNoValidRows   = "no_valid_rows"
	ResultError         = "error"
	ResultWrongPassword = "wrong_password"
	ResultBootstrap     = "bootstrap_required"
	ResultRejected      = "rejected"
)

var (
	globalMetrics *Metrics
	metricsOnce   sync.Once
)

// Metrics holds the counters for ingestion and login activity.
type Metrics struct {
	IngestRowsTotal    *prometheus.CounterVec
	IngestUploadsTotal *prometheus.CounterVec
	LoginAttemptsTotal *prometheus.CounterVec
}

// New creates and registers the collectors on the default registry.
//
// Registration happens once per process; later calls return the same value.
//
// Metrics:
//   - delivery_ingest_rows_total{outcome}
//   - delivery_ingest_uploads_total{result}
//   - delivery_login_attempts_total{profile,result}
func New() *Metrics {
	metricsOnce.Do(func() {
		globalMetrics = &Metrics{
			IngestRowsTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "delivery_ingest_rows_total",
					Help: "Total number of uploaded rows by ingestion outcome",
				},
				[]string{"outcome"},
			),

			IngestUploadsTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "delivery_ingest_uploads_total",
					Help: "Total number of upload attempts by result",
				},
				[]string{"result"},
			),

			LoginAttemptsTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "delivery_login_attempts_total",
					Help: "Total number of login attempts by profile and result",
				},
				[]string{"profile", "result"},
			),
		}
	})

	return globalMetrics
}

// RecordIngest adds the row counts of a finished ingestion.
func (m *Metrics) RecordIngest(res models.IngestResult) {
	if m == nil {
		return
	}
	m.IngestRowsTotal.WithLabelValues(OutcomeWritten).Add(float64(res.Written))
	m.IngestRowsTotal.WithLabelValues(OutcomeDroppedInvalidDate).Add(float64(res.DroppedInvalidDate))
	m.IngestRowsTotal.WithLabelValues(OutcomeIgnoredCollaborator).Add(float64(res.IgnoredCollaborator))
	m.IngestRowsTotal.WithLabelValues(OutcomeFallbackClassified).Add(float64(res.FallbackClassified))
}

// RecordUpload counts one upload attempt.
func (m *Metrics) RecordUpload(result string) {
	if m == nil {
		return
	}
	m.IngestUploadsTotal.WithLabelValues(result).Inc()
}

// RecordLogin counts one login attempt.
func (m *Metrics) RecordLogin(profile models.Profile, result string) {
	if m == nil {
		return
	}
	m.LoginAttemptsTotal.WithLabelValues(profile.DisplayName(), result).Inc()
}
