// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Logical column keys used by the ingestion pipeline.
const (
	ColumnDate         = "delivery_date"
	ColumnCollaborator = "collaborator"
	ColumnTask         = "task"
	ColumnStatus       = "status"
	ColumnDepartment   = "department"
)

// RequiredColumns lists the logical columns every upload must contain.
var RequiredColumns = []string{ColumnDate, ColumnCollaborator, ColumnTask, ColumnStatus}

// Table is a header-plus-rows view of an uploaded spreadsheet. All cells are
// kept as text; rows may be shorter than the header.
type Table struct {
	Headers []string
	Rows    [][]string

	// SerialDates is set for workbooks, whose raw date cells are Excel
	// serial day numbers. Plain numbers in text files are never dates.
	SerialDates bool
}

// ColumnSet maps each logical column to the accepted header spellings.
// Header spellings are compared after text normalization.
type ColumnSet map[string][]string

// DefaultColumnSet returns the header names used by the delivery exports.
func DefaultColumnSet() ColumnSet {
	return ColumnSet{
		ColumnDate:         {"DATA DA ENTREGA"},
		ColumnCollaborator: {"RESPONSAVEL ENTREGA"},
		ColumnTask:         {"OBRIGACAO / TAREFA"},
		ColumnStatus:       {"STATUS"},
		ColumnDepartment:   {"DEPARTAMENTO"},
	}
}

// ReplaceScope selects which stored months a replace-mode upload deletes.
type ReplaceScope string

const (
	// ReplaceBatchMonths deletes every month present in the uploaded batch.
	ReplaceBatchMonths ReplaceScope = "batch_months"

	// ReplaceSelectedMonth deletes only the month chosen by the operator.
	ReplaceSelectedMonth ReplaceScope = "selected_month"
)

// IsValid reports whether s is a known replace scope.
func (s ReplaceScope) IsValid() bool {
	return s == ReplaceBatchMonths || s == ReplaceSelectedMonth
}

// IngestRequest is a parsed upload waiting to be ingested.
type IngestRequest struct {
	// FileName is the original upload name, used for logging only.
	FileName string

	// Table holds the parsed spreadsheet.
	Table Table

	// Replace enables replace mode.
	Replace bool

	// Month is the operator-selected month, used only with
	// [ReplaceSelectedMonth].
	Month string
}

// IngestResult reports the outcome of an ingestion call.
type IngestResult struct {
	BatchID             string   `json:"batch_id"`
	Written             int      `json:"written"`
	DroppedInvalidDate  int      `json:"dropped_invalid_date"`
	IgnoredCollaborator int      `json:"ignored_collaborator"`
	FallbackClassified  int      `json:"fallback_classified"`
	Months              []string `json:"months"`
	ReplacedMonths      []string `json:"replaced_months,omitempty"`
}
