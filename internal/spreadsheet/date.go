// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package spreadsheet

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

// Layouts for rendered dates and month keys.
const (
	DateLayout  = "02/01/2006"
	MonthLayout = "2006-01"
)

// dayFirstLayouts are tried in order. Single-digit layout elements also
// accept two digits.
var dayFirstLayouts = []string{
	"2/1/2006",
	"2/1/2006 15:04",
	"2/1/2006 15:04:05",
	"2-1-2006",
	"2-1-2006 15:04:05",
	"2.1.2006",
	"2/1/06",
	"2-1-06",
	"2.1.06",
	"2006-01-02",
	"2006-01-02 15:04",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	time.RFC3339,
	"2006/01/02",
}

// Excel serial day numbers accepted as dates: 1900-01-01 through 9999-12-31.
const (
	minExcelSerial = 1
	maxExcelSerial = 2958465
)

// ParseDate parses a spreadsheet date cell, reading ambiguous numeric dates
// day first. With serial set, plain numbers in the Excel serial range are
// converted with the 1900 date system; otherwise they are rejected. The
// time of day is discarded.
func ParseDate(raw string, serial bool) (time.Time, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return time.Time{}, fmt.Errorf("%w: empty value", ErrInvalidDate)
	}

	for _, layout := range dayFirstLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return truncateDay(t), nil
		}
	}

	if !serial {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}

	if days, err := strconv.ParseFloat(s, 64); err == nil && days >= minExcelSerial && days <= maxExcelSerial {
		t, err := excelize.ExcelDateToTime(days, false)
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: %q: %w", ErrInvalidDate, s, err)
		}
		return truncateDay(t), nil
	}

	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
}

// MonthKey returns the "YYYY-MM" reference month of t.
func MonthKey(t time.Time) string {
	return t.Format(MonthLayout)
}

// FormatDate renders t as "DD/MM/YYYY".
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ValidMonth reports whether s is a well-formed "YYYY-MM" key.
func ValidMonth(s string) bool {
	t, err := time.Parse(MonthLayout, s)
	return err == nil && t.Format(MonthLayout) == s
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
