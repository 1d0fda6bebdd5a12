// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// delivery board HTTP handlers and the command-line client.
//
// All Msg* constants are human-readable message strings written into HTTP
// error bodies. Keeping them in one place keeps the wording consistent
// between the server and the client.
package app

const (
	// MsgInvalidDataProvided is returned when the request body or query
	// cannot be decoded or fails validation.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidProfile is returned for a profile name that is not one of
	// Fiscal, Pessoal, RH or Administrador.
	MsgInvalidProfile = "unknown profile"

	// MsgWrongPassword is returned when the submitted password does not
	// match the stored digest.
	MsgWrongPassword = "wrong password"

	// MsgBootstrapRequired is returned when a profile without a stored
	// password is used to log in.
	MsgBootstrapRequired = "password not configured for this profile"

	// MsgSessionActive is returned when logging into a profile while another
	// one is active.
	MsgSessionActive = "another profile is active, log out first"

	// MsgNotAuthenticated is returned when a read requires a logged-in
	// profile and the session has none.
	MsgNotAuthenticated = "not authenticated"

	// MsgTokenIsExpiredOrInvalid is returned when the session token cannot
	// be verified.
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgAccessDenied is returned for administrative actions attempted
	// without an authenticated Administrador session.
	MsgAccessDenied = "access denied"

	// MsgSchemaMismatch is returned when an upload misses required columns.
	MsgSchemaMismatch = "uploaded file is missing required columns"

	// MsgNoValidRows is returned when no uploaded row has a valid date.
	MsgNoValidRows = "no row with a valid delivery date"

	// MsgUnsupportedFile is returned for uploads that are neither CSV nor
	// XLSX.
	MsgUnsupportedFile = "unsupported file type, expected .csv or .xlsx"

	// MsgUnreadableFile is returned when the uploaded file cannot be parsed.
	MsgUnreadableFile = "uploaded file could not be read"

	// MsgIntegrityCheckFailed is returned when the upload checksum header
	// does not match the body.
	MsgIntegrityCheckFailed = "integrity check failed"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"
)
