// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package textnorm builds canonical comparison keys for free text taken from
// spreadsheet uploads: headers, department tags, task names and statuses.
package textnorm

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalize returns the comparison key of v.
//
// The text is decomposed (NFKD), combining marks are removed, edge
// whitespace is trimmed and the result is upper-cased. Non-string values are
// rendered with fmt first; nil yields the empty string. Normalize is
// idempotent.
func Normalize(v any) string {
	var s string
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		s = t
	case fmt.Stringer:
		s = t.String()
	case []byte:
		s = string(t)
	default:
		s = fmt.Sprint(t)
	}
	return String(s)
}

// String is the string-only form of [Normalize].
func String(s string) string {
	if s == "" {
		return ""
	}
	// upper-casing can yield runes with their own decomposition, so the
	// fold runs twice
	return strings.TrimSpace(fold(fold(s)))
}

func fold(s string) string {
	// transformers carry state and are not safe for concurrent use
	t := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)))
	stripped, _, err := transform.String(t, s)
	if err != nil {
		stripped = s
	}
	return strings.ToUpper(stripped)
}

// Equal reports whether a and b normalize to the same key.
func Equal(a, b string) bool {
	return String(a) == String(b)
}
