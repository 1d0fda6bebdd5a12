package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-delivery-board/models"
)

func TestWriteJSON(t *testing.T) {
	tests := []struct {
		name     string
		data     any
		status   int
		wantBody string
	}{
		{
			name:     "delete result",
			data:     models.DeleteResult{Month: "2024-01", Deleted: 3},
			status:   http.StatusOK,
			wantBody: `{"month":"2024-01","deleted":3}`,
		},
		{
			name:     "created ingest result",
			data:     models.IngestResult{BatchID: "b", Written: 1, Months: []string{"2024-01"}},
			status:   http.StatusCreated,
			wantBody: `{"batch_id":"b","written":1,"dropped_invalid_date":0,"ignored_collaborator":0,"fallback_classified":0,"months":["2024-01"]}`,
		},
		{
			name:     "empty record list",
			data:     []models.DeliveryRecord{},
			status:   http.StatusOK,
			wantBody: `[]`,
		},
		{
			name:     "nil",
			data:     nil,
			status:   http.StatusOK,
			wantBody: `null`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()

			n, err := WriteJSON(w, tt.data, tt.status)

			require.NoError(t, err)
			assert.Equal(t, len(tt.wantBody), n)
			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
			assert.JSONEq(t, tt.wantBody, w.Body.String())
		})
	}
}

func TestWriteJSON_Unmarshalable(t *testing.T) {
	w := httptest.NewRecorder()

	_, err := WriteJSON(w, make(chan int), http.StatusOK)

	assert.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestWriteError(t *testing.T) {
	t.Run("with details", func(t *testing.T) {
		w := httptest.NewRecorder()

		WriteError(w, http.StatusUnprocessableEntity, "uploaded file is missing required columns",
			map[string][]string{"missing": {"status"}})

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.JSONEq(t, `{"error":"uploaded file is missing required columns","details":{"missing":["status"]}}`, w.Body.String())
	})

	t.Run("details omitted", func(t *testing.T) {
		w := httptest.NewRecorder()

		WriteError(w, http.StatusForbidden, "access denied", nil)

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.JSONEq(t, `{"error":"access denied"}`, w.Body.String())
	})
}
