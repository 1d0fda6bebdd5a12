package http

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-delivery-board/internal/app"
	"github.com/MKhiriev/go-delivery-board/internal/logger"
	"github.com/MKhiriev/go-delivery-board/internal/service"
	"github.com/MKhiriev/go-delivery-board/internal/spreadsheet"
	"github.com/MKhiriev/go-delivery-board/internal/utils"
	"github.com/MKhiriev/go-delivery-board/models"
)

// upload ingests a multipart spreadsheet upload.
//
// Form fields:
//   - file: the .csv or .xlsx export
//   - replace: optional boolean enabling replace mode
//   - month: the "YYYY-MM" month replaced when the server runs with the
//     selected_month scope
func (h *Handler) upload(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	ctx := r.Context()

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize())
	if err := r.ParseMultipartForm(h.maxUploadSize()); err != nil {
		log.Err(err).Str("func", "*Handler.upload").Msg("error parsing multipart form")
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			utils.WriteError(w, http.StatusRequestEntityTooLarge, http.StatusText(http.StatusRequestEntityTooLarge), nil)
			return
		}
		utils.WriteError(w, http.StatusBadRequest, app.MsgInvalidDataProvided, nil)
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("file")
	if err != nil {
		log.Err(err).Str("func", "*Handler.upload").Msg("no file in upload")
		writeServiceError(w, r, ErrMissingUploadFile)
		return
	}
	defer file.Close()

	replace := false
	if raw := r.FormValue("replace"); raw != "" {
		replace, err = strconv.ParseBool(raw)
		if err != nil {
			writeServiceError(w, r, ErrInvalidReplaceFlag)
			return
		}
	}

	if !spreadsheet.Supported(header.Filename) {
		utils.WriteError(w, http.StatusUnsupportedMediaType, app.MsgUnsupportedFile, nil)
		return
	}

	table, err := spreadsheet.Read(header.Filename, file)
	if err != nil {
		log.Err(err).Str("func", "*Handler.upload").Str("file", header.Filename).Msg("error reading upload")
		utils.WriteError(w, statusFromError(err), app.MsgUnreadableFile, err.Error())
		return
	}

	result, err := h.services.IngestionService.Ingest(ctx, utils.GetSessionFromContext(ctx), models.IngestRequest{
		FileName: header.Filename,
		Table:    table,
		Replace:  replace,
		Month:    strings.TrimSpace(r.FormValue("month")),
	})
	if errors.Is(err, service.ErrNoValidRows) {
		utils.WriteError(w, http.StatusUnprocessableEntity, app.MsgNoValidRows, result)
		return
	}
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, result, http.StatusCreated)
}

func (h *Handler) listDeliveries(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	records, err := h.services.ReportService.Query(ctx, utils.GetSessionFromContext(ctx), filterFromQuery(r))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	if records == nil {
		records = []models.DeliveryRecord{}
	}

	utils.WriteJSON(w, records, http.StatusOK)
}

func (h *Handler) getSummary(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	summary, err := h.services.ReportService.Summary(ctx, utils.GetSessionFromContext(ctx), filterFromQuery(r))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, summary, http.StatusOK)
}

func (h *Handler) getFilters(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	options, err := h.services.ReportService.Filters(ctx, utils.GetSessionFromContext(ctx))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, options, http.StatusOK)
}

func (h *Handler) deleteMonth(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	month := chi.URLParam(r, "month")

	deleted, err := h.services.ReportService.DeleteMonth(ctx, utils.GetSessionFromContext(ctx), month)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Str("month", month).Int64("deleted", deleted).Msg("month deleted")
	utils.WriteJSON(w, models.DeleteResult{Month: month, Deleted: deleted}, http.StatusOK)
}

func (h *Handler) deleteAll(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	deleted, err := h.services.ReportService.DeleteAll(ctx, utils.GetSessionFromContext(ctx))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	logger.FromRequest(r).Warn().Int64("deleted", deleted).Msg("all deliveries deleted")
	utils.WriteJSON(w, models.DeleteResult{Deleted: deleted}, http.StatusOK)
}

// filterFromQuery reads the months, departments and collaborators query
// parameters. Each may be repeated or comma separated.
func filterFromQuery(r *http.Request) models.DeliveryFilter {
	q := r.URL.Query()

	var filter models.DeliveryFilter
	filter.Months = splitValues(q["months"])
	for _, d := range splitValues(q["departments"]) {
		filter.Departments = append(filter.Departments, models.Department(d))
	}
	filter.Collaborators = splitValues(q["collaborators"])
	return filter
}

func splitValues(values []string) []string {
	var out []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
