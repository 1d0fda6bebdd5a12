// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package classifier derives the department and the canonical status of a
// delivery from the free text of an upload row.
//
// Both rules are pure: the same input always yields the same output, so a
// stored department can be recomputed from the stored task text at any time.
package classifier

import (
	"strings"

	"github.com/MKhiriev/go-delivery-board/internal/textnorm"
	"github.com/MKhiriev/go-delivery-board/models"
)

// Rule identifies which department rule produced a classification.
type Rule string

const (
	// RuleExplicitTag means the row carried a non-empty department column.
	RuleExplicitTag Rule = "explicit_tag"

	// RuleKeyword means a personnel keyword was found in the task text.
	RuleKeyword Rule = "keyword"

	// RuleFallback means nothing matched and the row defaulted to Fiscal.
	RuleFallback Rule = "fallback"
)

// Result is the outcome of [ClassifyDepartment].
type Result struct {
	Department models.Department
	Rule       Rule
}

// fiscalTags are the department column spellings known to mean Fiscal,
// already in normalized form.
var fiscalTags = map[string]struct{}{
	"FISCAL":                       {},
	"SETOR FISCAL - REGULARIZACAO": {},
	"FISCAL-CONTABIL":              {},
	"FISCAL - CONTABIL":            {},
	"FISCAL - REGULARIZACAO":       {},
}

// personnelKeywords are matched as substrings of the normalized task text.
var personnelKeywords = []string{
	"PESSOAL",
	"ADMISSAO",
	"FERIAS",
	"FOLHA",
	"FOLHA COMPLEMENTAR",
	"RECALCULO DP",
	"REGULARIZACAO - DP",
	"RESCISAO",
	"ANALITICO DA RESCISAO",
	"GFD RESCISORIA",
	"SOLICITACAO DE AVISO",
	"RESCISAO DE ESTAGIARIO",
	"SIMULACAO DE RESCISAO",
}

// ClassifyDepartment maps a task description and an optional department tag
// to a department.
//
// A non-empty tag always wins: a known fiscal spelling or any tag containing
// "FISCAL" gives Fiscal, everything else Personnel. Without a tag the task
// text is searched for personnel keywords. When nothing matches the result
// is Fiscal with [RuleFallback].
func ClassifyDepartment(task, tag string) Result {
	if normTag := textnorm.String(tag); normTag != "" {
		if _, ok := fiscalTags[normTag]; ok || strings.Contains(normTag, "FISCAL") {
			return Result{Department: models.Fiscal, Rule: RuleExplicitTag}
		}
		return Result{Department: models.Personnel, Rule: RuleExplicitTag}
	}

	normTask := textnorm.String(task)
	for _, keyword := range personnelKeywords {
		if strings.Contains(normTask, keyword) {
			return Result{Department: models.Personnel, Rule: RuleKeyword}
		}
	}

	return Result{Department: models.Fiscal, Rule: RuleFallback}
}

// Department is [ClassifyDepartment] without the rule.
func Department(task, tag string) models.Department {
	return ClassifyDepartment(task, tag).Department
}

// Status maps a raw status value to a canonical status. "ATRAS" anywhere in
// the normalized text means Late, otherwise "JUST" means Justified, and
// anything else (empty included) is OnTime.
func Status(raw string) models.Status {
	s := textnorm.String(raw)
	switch {
	case strings.Contains(s, "ATRAS"):
		return models.Late
	case strings.Contains(s, "JUST"):
		return models.Justified
	default:
		return models.OnTime
	}
}
