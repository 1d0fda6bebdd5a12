// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Status is the canonical delivery status of a task. The string values are
// the labels persisted in the "entregas.status" column.
type Status string

const (
	// OnTime marks a task delivered within its deadline. It is also the
	// fallback for any status value that matches no other rule.
	OnTime Status = "No prazo"

	// Late marks a task delivered after its deadline.
	Late Status = "Atrasada"

	// Justified marks a late delivery with an accepted justification.
	Justified Status = "Justificada"
)

// Statuses lists every canonical status in reporting order.
var Statuses = []Status{OnTime, Late, Justified}

// Department is the business area a delivery belongs to. The string values
// are the labels persisted in the "entregas.departamento" column.
type Department string

const (
	// Fiscal is the tax department. It is the fallback department for tasks
	// that match no classification rule.
	Fiscal Department = "Fiscal"

	// Personnel is the payroll / HR-operations department ("DP").
	Personnel Department = "Pessoal (DP)"
)

// Departments lists every department in reporting order.
var Departments = []Department{Fiscal, Personnel}

// IsValid reports whether d is one of the known departments.
func (d Department) IsValid() bool {
	return d == Fiscal || d == Personnel
}

// DeliveryRecord is a single persisted task delivery.
//
// Records are created only by the ingestion pipeline and are never updated
// in place; they disappear only through month deletion or a full wipe.
type DeliveryRecord struct {
	// ID is the storage-assigned identifier.
	ID int64 `json:"id"`

	// Collaborator is the person responsible for the delivery.
	Collaborator string `json:"collaborator"`

	// Task is the obligation / task description as written in the upload.
	Task string `json:"task"`

	// Status is the canonical status derived from the raw status column.
	Status Status `json:"status"`

	// Department is derived from the task text or the explicit department
	// column, never entered directly.
	Department Department `json:"department"`

	// ReferenceMonth is the "YYYY-MM" key of DeliveryDate.
	ReferenceMonth string `json:"reference_month"`

	// DeliveryDate is the delivery date rendered as "DD/MM/YYYY".
	DeliveryDate string `json:"delivery_date"`

	// UploadedAt is the moment the batch containing this record was ingested.
	UploadedAt time.Time `json:"uploaded_at"`
}

// DeliveryFilter narrows a delivery query. Empty slices mean "no
// restriction" for that dimension.
type DeliveryFilter struct {
	Months        []string     `json:"months,omitempty"`
	Departments   []Department `json:"departments,omitempty"`
	Collaborators []string     `json:"collaborators,omitempty"`
}
