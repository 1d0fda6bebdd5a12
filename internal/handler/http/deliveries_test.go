package http

import (
	"bytes"
	"compress/gzip"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"mime/multipart"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-delivery-board/internal/service"
	"github.com/MKhiriev/go-delivery-board/internal/store"
	"github.com/MKhiriev/go-delivery-board/internal/utils"
	"github.com/MKhiriev/go-delivery-board/models"
)

const uploadCSV = "DATA DA ENTREGA;RESPONSAVEL ENTREGA;OBRIGACAO / TAREFA;STATUS\n" +
	"05/01/2024;Ana;DCTF;No prazo\n"

// multipartUpload builds a multipart body with an optional file part and the
// given form values.
func multipartUpload(t *testing.T, fileName, content string, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	if fileName != "" {
		fw, err := mw.CreateFormFile("file", fileName)
		require.NoError(t, err)
		_, err = fw.Write([]byte(content))
		require.NoError(t, err)
	}
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	require.NoError(t, mw.Close())

	return body, mw.FormDataContentType()
}

func TestUpload_Success(t *testing.T) {
	env := newTestEnv(t)
	env.ingest.result = models.IngestResult{BatchID: "batch-1", Written: 1, Months: []string{"2024-01"}}

	body, contentType := multipartUpload(t, "entregas.csv", uploadCSV, map[string]string{"replace": "true", "month": " 2024-01 "})
	rr := env.do(t, http.MethodPost, "/api/deliveries/upload", body, map[string]string{
		"Content-Type":  contentType,
		"Authorization": env.tokenFor(t, models.ProfileAdmin),
	})

	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	assert.Equal(t, env.ingest.result, decodeBody[models.IngestResult](t, rr))

	require.Equal(t, 1, env.ingest.calls)
	assert.Equal(t, "entregas.csv", env.ingest.gotReq.FileName)
	assert.True(t, env.ingest.gotReq.Replace)
	assert.Equal(t, "2024-01", env.ingest.gotReq.Month)
	assert.Equal(t, []string{"DATA DA ENTREGA", "RESPONSAVEL ENTREGA", "OBRIGACAO / TAREFA", "STATUS"}, env.ingest.gotReq.Table.Headers)
	assert.Equal(t, [][]string{{"05/01/2024", "Ana", "DCTF", "No prazo"}}, env.ingest.gotReq.Table.Rows)

	active, ok := env.ingest.gotState.Active()
	require.True(t, ok)
	assert.Equal(t, models.ProfileAdmin, active)
}

func TestUpload_Rejections(t *testing.T) {
	tests := []struct {
		name       string
		fileName   string
		content    string
		fields     map[string]string
		ingestErr  error
		wantStatus int
		wantCalls  int
	}{
		{
			name:       "no file part",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "unsupported extension",
			fileName:   "entregas.txt",
			content:    uploadCSV,
			wantStatus: http.StatusUnsupportedMediaType,
		},
		{
			name:       "invalid replace flag",
			fileName:   "entregas.csv",
			content:    uploadCSV,
			fields:     map[string]string{"replace": "maybe"},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "empty file",
			fileName:   "entregas.csv",
			content:    "",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "non admin session",
			fileName:   "entregas.csv",
			content:    uploadCSV,
			ingestErr:  service.ErrForbidden,
			wantStatus: http.StatusForbidden,
			wantCalls:  1,
		},
		{
			name:       "selected month missing",
			fileName:   "entregas.csv",
			content:    uploadCSV,
			ingestErr:  service.ErrMonthRequired,
			wantStatus: http.StatusBadRequest,
			wantCalls:  1,
		},
		{
			name:       "storage failure",
			fileName:   "entregas.csv",
			content:    uploadCSV,
			ingestErr:  errors.Join(store.ErrCommitingTransaction, errors.New("database is locked")),
			wantStatus: http.StatusInternalServerError,
			wantCalls:  1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			env.ingest.err = tt.ingestErr

			body, contentType := multipartUpload(t, tt.fileName, tt.content, tt.fields)
			rr := env.do(t, http.MethodPost, "/api/deliveries/upload", body, map[string]string{"Content-Type": contentType})

			assert.Equal(t, tt.wantStatus, rr.Code, rr.Body.String())
			assert.Equal(t, tt.wantCalls, env.ingest.calls)
		})
	}
}

func TestUpload_SchemaError(t *testing.T) {
	env := newTestEnv(t)
	env.ingest.err = &service.SchemaError{
		Missing:  []string{"STATUS"},
		Detected: []string{"DATA DA ENTREGA", "RESPONSAVEL ENTREGA", "OBRIGACAO / TAREFA"},
	}

	body, contentType := multipartUpload(t, "entregas.csv", uploadCSV, nil)
	rr := env.do(t, http.MethodPost, "/api/deliveries/upload", body, map[string]string{"Content-Type": contentType})

	require.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	assert.JSONEq(t, `{
		"error": "uploaded file is missing required columns",
		"details": {
			"missing": ["STATUS"],
			"detected": ["DATA DA ENTREGA", "RESPONSAVEL ENTREGA", "OBRIGACAO / TAREFA"]
		}
	}`, rr.Body.String())
}

func TestUpload_NoValidRowsReportsCounts(t *testing.T) {
	env := newTestEnv(t)
	env.ingest.result = models.IngestResult{BatchID: "b", DroppedInvalidDate: 3}
	env.ingest.err = service.ErrNoValidRows

	body, contentType := multipartUpload(t, "entregas.csv", uploadCSV, nil)
	rr := env.do(t, http.MethodPost, "/api/deliveries/upload", body, map[string]string{"Content-Type": contentType})

	require.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	resp := decodeBody[struct {
		Error   string              `json:"error"`
		Details models.IngestResult `json:"details"`
	}](t, rr)
	assert.Equal(t, 3, resp.Details.DroppedInvalidDate)
}

func TestUpload_IntegrityHeader(t *testing.T) {
	sha := func(body []byte) string {
		sum := sha256.Sum256(body)
		return hex.EncodeToString(sum[:])
	}

	tests := []struct {
		name       string
		gzip       bool
		hash       func(raw, sent []byte) string
		wantStatus int
	}{
		{
			name:       "matching hash",
			hash:       func(_, sent []byte) string { return sha(sent) },
			wantStatus: http.StatusCreated,
		},
		{
			name:       "mismatching hash",
			hash:       func([]byte, []byte) string { return hex.EncodeToString(make([]byte, sha256.Size)) },
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "gzip body hashed as sent",
			gzip:       true,
			hash:       func(_, sent []byte) string { return sha(sent) },
			wantStatus: http.StatusCreated,
		},
		{
			name:       "gzip body hashed after inflation",
			gzip:       true,
			hash:       func(raw, _ []byte) string { return sha(raw) },
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)

			body, contentType := multipartUpload(t, "entregas.csv", uploadCSV, nil)
			raw := body.Bytes()
			sent := raw
			headers := map[string]string{"Content-Type": contentType}
			if tt.gzip {
				var compressed bytes.Buffer
				zw := gzip.NewWriter(&compressed)
				_, err := zw.Write(raw)
				require.NoError(t, err)
				require.NoError(t, zw.Close())
				sent = compressed.Bytes()
				headers["Content-Encoding"] = "gzip"
			}
			headers[contentHashHeader] = tt.hash(raw, sent)

			rr := env.do(t, http.MethodPost, "/api/deliveries/upload", bytes.NewReader(sent), headers)

			assert.Equal(t, tt.wantStatus, rr.Code, rr.Body.String())
		})
	}
}

func TestListDeliveries_ParsesFilter(t *testing.T) {
	env := newTestEnv(t)
	env.report.records = []models.DeliveryRecord{{ID: 1, Collaborator: "Ana", Task: "DCTF", Status: models.OnTime, Department: models.Fiscal, ReferenceMonth: "2024-01", DeliveryDate: "05/01/2024"}}

	rr := env.do(t, http.MethodGet, "/api/deliveries?months=2024-01,2024-02&months=2024-03&departments=Fiscal&collaborators=Ana&collaborators=", nil, map[string]string{
		"Authorization": env.tokenFor(t, models.ProfileHR),
	})

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, models.DeliveryFilter{
		Months:        []string{"2024-01", "2024-02", "2024-03"},
		Departments:   []models.Department{models.Fiscal},
		Collaborators: []string{"Ana"},
	}, env.report.gotFilter)

	records := decodeBody[[]models.DeliveryRecord](t, rr)
	require.Len(t, records, 1)
	assert.Equal(t, "Ana", records[0].Collaborator)
}

func TestListDeliveries_EmptyIsArray(t *testing.T) {
	env := newTestEnv(t)

	rr := env.do(t, http.MethodGet, "/api/deliveries", nil, map[string]string{
		"Authorization": env.tokenFor(t, models.ProfileFiscal),
	})

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[]`, rr.Body.String())
}

func TestReadEndpoints_Errors(t *testing.T) {
	paths := []string{"/api/deliveries", "/api/deliveries/summary", "/api/filters"}

	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "not authenticated", err: service.ErrNotAuthenticated, wantStatus: http.StatusUnauthorized},
		{name: "invalid filter", err: errors.Join(service.ErrInvalidDataProvided, errors.New("bad month")), wantStatus: http.StatusBadRequest},
		{name: "storage failure", err: store.ErrScanningRows, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		for _, path := range paths {
			t.Run(tt.name+" "+path, func(t *testing.T) {
				env := newTestEnv(t)
				env.report.err = tt.err

				rr := env.do(t, http.MethodGet, path, nil, nil)

				assert.Equal(t, tt.wantStatus, rr.Code)
				assert.NotEmpty(t, decodeBody[utils.ErrorResponse](t, rr).Error)
			})
		}
	}
}

func TestGetSummary(t *testing.T) {
	env := newTestEnv(t)
	env.report.summary = models.ReportSummary{
		Total:    2,
		ByStatus: map[models.Status]int{models.OnTime: 1, models.Late: 1, models.Justified: 0},
		TopTasks: []models.TaskCount{{Task: "DCTF", Total: 2}},
		ByCollaborator: []models.CollaboratorSummary{
			{Collaborator: "Ana", ByStatus: map[models.Status]int{models.OnTime: 1, models.Late: 1, models.Justified: 0}, Total: 2},
		},
	}

	rr := env.do(t, http.MethodGet, "/api/deliveries/summary?months=2024-01", nil, map[string]string{
		"Authorization": env.tokenFor(t, models.ProfileAdmin),
	})

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, env.report.summary, decodeBody[models.ReportSummary](t, rr))
	assert.Equal(t, []string{"2024-01"}, env.report.gotFilter.Months)
}

func TestGetFilters(t *testing.T) {
	env := newTestEnv(t)
	env.report.filters = models.FilterOptions{
		Months:        []string{"2024-02", "2024-01"},
		Collaborators: []string{"Ana", "Bruno"},
		Departments:   []models.Department{models.Personnel},
	}

	rr := env.do(t, http.MethodGet, "/api/filters", nil, map[string]string{
		"Authorization": env.tokenFor(t, models.ProfilePersonnel),
	})

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, env.report.filters, decodeBody[models.FilterOptions](t, rr))
}

func TestDeleteMonth(t *testing.T) {
	env := newTestEnv(t)
	env.report.deleted = 12

	rr := env.do(t, http.MethodDelete, "/api/deliveries/months/2024-01", nil, map[string]string{
		"Authorization": env.tokenFor(t, models.ProfileAdmin),
	})

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "2024-01", env.report.gotMonth)
	assert.Equal(t, models.DeleteResult{Month: "2024-01", Deleted: 12}, decodeBody[models.DeleteResult](t, rr))
}

func TestDeleteAll(t *testing.T) {
	env := newTestEnv(t)
	env.report.deleted = 40

	rr := env.do(t, http.MethodDelete, "/api/deliveries", nil, map[string]string{
		"Authorization": env.tokenFor(t, models.ProfileAdmin),
	})

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, models.DeleteResult{Deleted: 40}, decodeBody[models.DeleteResult](t, rr))
}

func TestDeleteAll_Forbidden(t *testing.T) {
	env := newTestEnv(t)
	env.report.err = service.ErrForbidden

	rr := env.do(t, http.MethodDelete, "/api/deliveries", nil, map[string]string{
		"Authorization": env.tokenFor(t, models.ProfileHR),
	})

	assert.Equal(t, http.StatusForbidden, rr.Code)
}
