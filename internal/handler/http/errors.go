// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the session middleware when parsing the
// "Authorization" HTTP header. Callers can match against them with [errors.Is].
var (
	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is present but cannot be split into at least two space-separated
	// parts (i.e. the token value is missing entirely).
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrEmptyToken is returned when the "Authorization" header contains the
	// expected scheme prefix but the token value itself is an empty string.
	ErrEmptyToken = errors.New("empty token in `Authorization` header")
)

var (
	// ErrMissingUploadFile is returned when a multipart upload has no "file"
	// part.
	ErrMissingUploadFile = errors.New("multipart form has no `file` part")

	// ErrInvalidReplaceFlag is returned when the "replace" form value is not
	// a boolean.
	ErrInvalidReplaceFlag = errors.New("invalid `replace` value")
)
