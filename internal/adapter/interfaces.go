// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client-side transport to the delivery board
// server.
//
// The primary abstraction is [ServerAdapter], which decouples the command-line
// client from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]).
//
// Non-2xx responses are returned as [*ResponseError], which unwraps to the
// sentinel values in errors.go so callers can use [errors.Is] (e.g.
// [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-delivery-board/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the delivery
// board server. Implementations are responsible for serialisation, session
// token management, and mapping transport-level errors.
type ServerAdapter interface {
	// SetToken stores the session token attached to every subsequent request.
	SetToken(token string)

	// Token returns the current session token. The server rotates the token
	// on login and logout, so callers should persist it after those calls.
	Token() string

	// Version returns the server build metadata.
	Version(ctx context.Context) (models.BuildInfoView, error)

	// Session describes the session carried by the current token.
	Session(ctx context.Context) (models.SessionView, error)

	// Login authenticates profile (a key or an alias such as "admin").
	Login(ctx context.Context, profile, password string) (models.SessionView, error)

	// Logout clears the active profile.
	Logout(ctx context.Context) (models.SessionView, error)

	// ProfileStatus reports whether profile has a configured password.
	ProfileStatus(ctx context.Context, profile string) (models.ProfileStatus, error)

	// SetPassword stores a new password for profile.
	SetPassword(ctx context.Context, profile, password string) error

	// Upload sends a spreadsheet for ingestion.
	Upload(ctx context.Context, req UploadRequest) (models.IngestResult, error)

	// Deliveries lists the records visible to the session.
	Deliveries(ctx context.Context, filter models.DeliveryFilter) ([]models.DeliveryRecord, error)

	// Summary returns the aggregated report for filter.
	Summary(ctx context.Context, filter models.DeliveryFilter) (models.ReportSummary, error)

	// Filters lists the available filter values.
	Filters(ctx context.Context) (models.FilterOptions, error)

	// DeleteMonth removes one reference month.
	DeleteMonth(ctx context.Context, month string) (models.DeleteResult, error)

	// DeleteAll removes every record.
	DeleteAll(ctx context.Context) (models.DeleteResult, error)
}

// UploadRequest is a spreadsheet file to send to the server.
type UploadRequest struct {
	FileName string
	Content  []byte
	Replace  bool
	Month    string
}
