package http

import (
	"compress/gzip"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-delivery-board/internal/config"
	"github.com/MKhiriev/go-delivery-board/internal/logger"
	"github.com/MKhiriev/go-delivery-board/internal/mock"
	"github.com/MKhiriev/go-delivery-board/internal/service"
	"github.com/MKhiriev/go-delivery-board/models"
)

// ─────────────────────────────────────────────
// Fakes
// ─────────────────────────────────────────────

type fakeIngestionService struct {
	result models.IngestResult
	err    error

	calls    int
	gotState models.SessionState
	gotReq   models.IngestRequest
}

func (f *fakeIngestionService) Ingest(_ context.Context, state models.SessionState, req models.IngestRequest) (models.IngestResult, error) {
	f.calls++
	f.gotState = state
	f.gotReq = req
	return f.result, f.err
}

type fakeReportService struct {
	records []models.DeliveryRecord
	summary models.ReportSummary
	filters models.FilterOptions
	deleted int64
	err     error

	gotState  models.SessionState
	gotFilter models.DeliveryFilter
	gotMonth  string
}

func (f *fakeReportService) Query(_ context.Context, state models.SessionState, filter models.DeliveryFilter) ([]models.DeliveryRecord, error) {
	f.gotState, f.gotFilter = state, filter
	return f.records, f.err
}

func (f *fakeReportService) Summary(_ context.Context, state models.SessionState, filter models.DeliveryFilter) (models.ReportSummary, error) {
	f.gotState, f.gotFilter = state, filter
	return f.summary, f.err
}

func (f *fakeReportService) Filters(_ context.Context, state models.SessionState) (models.FilterOptions, error) {
	f.gotState = state
	return f.filters, f.err
}

func (f *fakeReportService) DeleteMonth(_ context.Context, state models.SessionState, month string) (int64, error) {
	f.gotState, f.gotMonth = state, month
	return f.deleted, f.err
}

func (f *fakeReportService) DeleteAll(_ context.Context, state models.SessionState) (int64, error) {
	f.gotState = state
	return f.deleted, f.err
}

type fakeAppInfoService struct {
	info models.BuildInfoView
}

func (f *fakeAppInfoService) GetAppVersion(_ context.Context) string {
	return f.info.Version
}

func (f *fakeAppInfoService) GetBuildInfo(_ context.Context) models.BuildInfoView {
	return f.info
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

type testEnv struct {
	handler  *Handler
	router   http.Handler
	profiles *mock.MockProfileRepository
	ingest   *fakeIngestionService
	report   *fakeReportService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	ctrl := gomock.NewController(t)
	profiles := mock.NewMockProfileRepository(ctrl)

	appCfg := config.App{
		TokenSignKey:  "test-sign-key",
		TokenIssuer:   "go-delivery-board-test",
		TokenDuration: time.Hour,
	}

	env := &testEnv{
		profiles: profiles,
		ingest:   &fakeIngestionService{},
		report:   &fakeReportService{},
	}
	env.handler = NewHandler(&service.Services{
		AppInfoService:   &fakeAppInfoService{info: models.BuildInfoView{Version: "v1.2.3", Date: "2026-01-02", Commit: "abc123"}},
		AccessService:    service.NewAccessValidationService().Wrap(service.NewAccessService(profiles, appCfg, nil, logger.Nop())),
		IngestionService: env.ingest,
		ReportService:    env.report,
	}, config.Server{MaxUploadSize: 1 << 20}, logger.Nop())
	env.router = env.handler.Init()

	return env
}

// tokenFor signs a token for a session where each given profile is
// authenticated and the first one is active.
func (e *testEnv) tokenFor(t *testing.T, profiles ...models.Profile) string {
	t.Helper()

	state := models.NewSessionState()
	for _, p := range profiles {
		state.Authenticated[p] = true
	}
	if len(profiles) > 0 {
		state.ActiveProfile = profiles[0]
	}

	token, err := e.handler.services.AccessService.CreateToken(context.Background(), state)
	require.NoError(t, err)
	return "Bearer " + token.String()
}

func (e *testEnv) do(t *testing.T, method, path string, body io.Reader, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, body)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rr := httptest.NewRecorder()
	e.router.ServeHTTP(rr, req)
	return rr
}

func decodeBody[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &v), rr.Body.String())
	return v
}

// ─────────────────────────────────────────────
// NewHandler / Init
// ─────────────────────────────────────────────

func TestNewHandler_StoresDependencies(t *testing.T) {
	svc := &service.Services{}
	cfg := config.Server{HTTPAddress: ":8080"}
	log := logger.Nop()

	h := NewHandler(svc, cfg, log)

	require.NotNil(t, h)
	assert.Equal(t, svc, h.services)
	assert.Equal(t, cfg, h.cfg)
	assert.Equal(t, log, h.logger)
}

func TestHandler_MaxUploadSizeDefault(t *testing.T) {
	h := NewHandler(&service.Services{}, config.Server{}, logger.Nop())
	assert.Equal(t, defaultMaxUploadSize, h.maxUploadSize())

	h = NewHandler(&service.Services{}, config.Server{MaxUploadSize: 10}, logger.Nop())
	assert.Equal(t, int64(10), h.maxUploadSize())
}

func TestInit_UnknownRouteReturns404(t *testing.T) {
	env := newTestEnv(t)

	rr := env.do(t, http.MethodGet, "/api/unknown", nil, nil)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestInit_WrongMethodReturns404(t *testing.T) {
	env := newTestEnv(t)

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/session/login"},
		{http.MethodPut, "/api/deliveries/upload"},
		{http.MethodPost, "/api/filters"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rr := env.do(t, tt.method, tt.path, nil, nil)
			assert.Equal(t, http.StatusNotFound, rr.Code)
		})
	}
}

func TestInit_TraceIDHeader(t *testing.T) {
	env := newTestEnv(t)

	rr := env.do(t, http.MethodGet, "/api/version", nil, map[string]string{traceIDHeader: "0192b7a4-6f2e-7c3d-9a1b-2c3d4e5f6a7b"})
	assert.Equal(t, "0192b7a4-6f2e-7c3d-9a1b-2c3d4e5f6a7b", rr.Header().Get(traceIDHeader))

	rr = env.do(t, http.MethodGet, "/api/version", nil, nil)
	assert.NotEmpty(t, rr.Header().Get(traceIDHeader))
}

func TestInit_MetricsEndpoint(t *testing.T) {
	env := newTestEnv(t)

	rr := env.do(t, http.MethodGet, "/metrics", nil, nil)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "go_goroutines")
}

// ─────────────────────────────────────────────
// Version
// ─────────────────────────────────────────────

func TestGetServerVersion_JSON(t *testing.T) {
	env := newTestEnv(t)

	rr := env.do(t, http.MethodGet, "/api/version", nil, nil)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	info := decodeBody[models.BuildInfoView](t, rr)
	assert.Equal(t, models.BuildInfoView{Version: "v1.2.3", Date: "2026-01-02", Commit: "abc123"}, info)
}

func TestGetServerVersion_Text(t *testing.T) {
	env := newTestEnv(t)

	rr := env.do(t, http.MethodGet, "/api/version?format=text", nil, nil)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "text/plain", rr.Header().Get("Content-Type"))
	assert.Equal(t, "v1.2.3", rr.Body.String())
}

func TestInit_CompressesJSONResponses(t *testing.T) {
	env := newTestEnv(t)

	rr := env.do(t, http.MethodGet, "/api/version", nil, map[string]string{"Accept-Encoding": "gzip"})

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "gzip", rr.Header().Get("Content-Encoding"))

	zr, err := gzip.NewReader(rr.Body)
	require.NoError(t, err)
	var info models.BuildInfoView
	require.NoError(t, json.NewDecoder(zr).Decode(&info))
	assert.Equal(t, "v1.2.3", info.Version)
}
