package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-delivery-board/internal/app"
	"github.com/MKhiriev/go-delivery-board/internal/logger"
	"github.com/MKhiriev/go-delivery-board/internal/service"
	"github.com/MKhiriev/go-delivery-board/internal/spreadsheet"
	"github.com/MKhiriev/go-delivery-board/internal/store"
	"github.com/MKhiriev/go-delivery-board/internal/utils"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:   http.StatusBadRequest,
	service.ErrInvalidProfile:        http.StatusBadRequest,
	service.ErrInvalidPassword:       http.StatusBadRequest,
	service.ErrMonthRequired:         http.StatusBadRequest,
	service.ErrVersionIsNotSpecified: http.StatusBadRequest,

	service.ErrWrongPassword:           http.StatusUnauthorized,
	service.ErrNotAuthenticated:        http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,

	service.ErrForbidden: http.StatusForbidden,

	service.ErrBootstrapRequired: http.StatusConflict,
	service.ErrSessionActive:     http.StatusConflict,

	service.ErrNoValidRows: http.StatusUnprocessableEntity,

	spreadsheet.ErrUnsupportedFormat: http.StatusUnsupportedMediaType,
	spreadsheet.ErrEmptyFile:         http.StatusBadRequest,
	spreadsheet.ErrNoSheets:          http.StatusBadRequest,
	spreadsheet.ErrReadingFile:       http.StatusBadRequest,

	ErrMissingUploadFile:  http.StatusBadRequest,
	ErrInvalidReplaceFlag: http.StatusBadRequest,
}

// statusFromError resolves the response status of err. Storage failures
// always map to 500, even when wrapped by a domain error.
func statusFromError(err error) int {
	if store.IsStorageError(err) {
		return http.StatusInternalServerError
	}
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeServiceError maps err to a status code and writes the JSON error
// body. Server-side failures never leak their message to the client.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	if schemaErr, ok := service.IsSchemaError(err); ok {
		log.Warn().Err(err).Msg("schema mismatch")
		utils.WriteError(w, http.StatusUnprocessableEntity, app.MsgSchemaMismatch, schemaErr)
		return
	}

	status := statusFromError(err)
	if status >= http.StatusInternalServerError {
		log.Err(err).Msg("request failed")
		utils.WriteError(w, status, app.MsgInternalServerError, nil)
		return
	}

	log.Warn().Err(err).Int("status", status).Msg("request rejected")
	utils.WriteError(w, status, err.Error(), nil)
}
