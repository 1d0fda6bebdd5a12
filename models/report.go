// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// TaskCount is one entry of the task frequency table.
type TaskCount struct {
	Task  string `json:"task"`
	Total int    `json:"total"`
}

// CollaboratorSummary is one row of the collaborator × status table.
type CollaboratorSummary struct {
	Collaborator string         `json:"collaborator"`
	ByStatus     map[Status]int `json:"by_status"`
	Total        int            `json:"total"`
}

// ReportSummary aggregates a filtered record set.
type ReportSummary struct {
	Total          int                   `json:"total"`
	ByStatus       map[Status]int        `json:"by_status"`
	TopTasks       []TaskCount           `json:"top_tasks"`
	ByCollaborator []CollaboratorSummary `json:"by_collaborator"`
}

// FilterOptions lists the values the dashboard can filter on.
type FilterOptions struct {
	Months        []string     `json:"months"`
	Collaborators []string     `json:"collaborators"`
	Departments   []Department `json:"departments"`
}

// DeleteResult reports how many records a deletion removed.
type DeleteResult struct {
	Month   string `json:"month,omitempty"`
	Deleted int64  `json:"deleted"`
}
