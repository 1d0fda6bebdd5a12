// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"slices"

	"github.com/MKhiriev/go-delivery-board/models"
)

var supportedDrivers = []string{"sqlite", "postgres"}

var knownColumns = []string{
	models.ColumnDate,
	models.ColumnCollaborator,
	models.ColumnTask,
	models.ColumnStatus,
	models.ColumnDepartment,
}

// validate checks that the merged [StructuredConfig] satisfies the server
// invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" {
		return fmt.Errorf("%w: token sign key is required", ErrInvalidAppConfigs)
	}
	if cfg.App.TokenDuration < 0 {
		return fmt.Errorf("%w: negative token duration", ErrInvalidAppConfigs)
	}

	if !slices.Contains(supportedDrivers, cfg.Storage.DB.Driver) {
		return fmt.Errorf("%w: unsupported driver %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver)
	}
	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: empty DSN", ErrInvalidStorageConfigs)
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 || cfg.Server.MaxUploadSize <= 0 {
		return ErrInvalidServerConfigs
	}

	if !models.ReplaceScope(cfg.Ingest.ReplaceScope).IsValid() {
		return fmt.Errorf("%w: unknown replace scope %q", ErrInvalidIngestConfigs, cfg.Ingest.ReplaceScope)
	}
	for column := range cfg.Ingest.ColumnAliases {
		if !slices.Contains(knownColumns, column) {
			return fmt.Errorf("%w: unknown column %q", ErrInvalidIngestConfigs, column)
		}
	}

	if cfg.Report.TopTasks <= 0 {
		return ErrInvalidReportConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Adapter.TokenFile == "" {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
