package service

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	ErrForbidden         = errors.New("operation requires an authenticated Administrador session")
	ErrInvalidProfile    = errors.New("unknown profile")
	ErrBootstrapRequired = errors.New("profile has no password yet, set an initial password first")
	ErrSessionActive     = errors.New("another profile is active in this session, log out first")
	ErrWrongPassword     = errors.New("wrong password")
	ErrNotAuthenticated  = errors.New("no authenticated profile in session")
	ErrInvalidPassword   = errors.New("password must not be empty")
	ErrMonthRequired     = errors.New("replace mode needs a reference month")

	ErrNoValidRows = errors.New("no row with a valid delivery date")

	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)

// SchemaError reports an upload whose header row lacks required columns.
// Nothing is persisted when it is returned.
type SchemaError struct {
	// Missing lists the expected headers, normalized, that no upload
	// header matched.
	Missing []string `json:"missing"`

	// Detected lists the normalized headers of the upload.
	Detected []string `json:"detected"`
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("missing required columns: %s (detected: %s)",
		strings.Join(e.Missing, ", "), strings.Join(e.Detected, ", "))
}
