package adapter

import (
	"bytes"
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"mime/multipart"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-delivery-board/internal/config"
	"github.com/MKhiriev/go-delivery-board/internal/logger"
	"github.com/MKhiriev/go-delivery-board/internal/utils"
	"github.com/MKhiriev/go-delivery-board/models"
)

const contentHashHeader = "X-Content-SHA256"

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter] for the server at adapterCfg.HTTPAddress.
//
// Every request carries the current session token, and every response that
// returns a rotated token in its "Authorization" header updates it.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	if strings.TrimSpace(adapterCfg.HTTPAddress) == "" {
		return nil, errors.New("invalid adapter http address: empty address")
	}

	a := &httpServerAdapter{
		client: utils.NewHTTPClient(adapterCfg.HTTPAddress, adapterCfg.RequestTimeout),
		logger: logger,
	}
	a.client.
		OnBeforeRequest(a.attachToken).
		OnAfterResponse(a.captureToken)

	return a, nil
}

// SetToken implements [ServerAdapter].
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter].
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpServerAdapter) attachToken(_ *resty.Client, req *resty.Request) error {
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return nil
}

func (h *httpServerAdapter) captureToken(_ *resty.Client, resp *resty.Response) error {
	header := resp.Header().Get("Authorization")
	if header == "" {
		return nil
	}

	token, err := utils.ParseBearerToken(header)
	if err != nil {
		h.logger.Warn().Err(err).Msg("server returned malformed session token")
		return nil
	}
	h.SetToken(token)
	return nil
}

// Version implements [ServerAdapter]. GET /api/version.
func (h *httpServerAdapter) Version(ctx context.Context) (models.BuildInfoView, error) {
	var info models.BuildInfoView
	err := h.get(ctx, "/api/version", nil, &info)
	return info, err
}

// Session implements [ServerAdapter]. GET /api/session.
func (h *httpServerAdapter) Session(ctx context.Context) (models.SessionView, error) {
	var view models.SessionView
	err := h.get(ctx, "/api/session", nil, &view)
	return view, err
}

// Login implements [ServerAdapter]. POST /api/session/login.
func (h *httpServerAdapter) Login(ctx context.Context, profile, password string) (models.SessionView, error) {
	var view models.SessionView

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(models.LoginRequest{Profile: profile, Password: password}).
		SetResult(&view).
		Post("/api/session/login")
	if err != nil {
		return view, fmt.Errorf("login request: %w", err)
	}

	return view, mapHTTPError(resp)
}

// Logout implements [ServerAdapter]. POST /api/session/logout.
func (h *httpServerAdapter) Logout(ctx context.Context) (models.SessionView, error) {
	var view models.SessionView

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&view).
		Post("/api/session/logout")
	if err != nil {
		return view, fmt.Errorf("logout request: %w", err)
	}

	return view, mapHTTPError(resp)
}

// ProfileStatus implements [ServerAdapter]. GET /api/profiles/{profile}.
func (h *httpServerAdapter) ProfileStatus(ctx context.Context, profile string) (models.ProfileStatus, error) {
	var status models.ProfileStatus
	err := h.get(ctx, "/api/profiles/"+url.PathEscape(profile), nil, &status)
	return status, err
}

// SetPassword implements [ServerAdapter]. PUT /api/profiles/{profile}/password.
func (h *httpServerAdapter) SetPassword(ctx context.Context, profile, password string) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(models.PasswordRequest{Password: password}).
		Put("/api/profiles/" + url.PathEscape(profile) + "/password")
	if err != nil {
		return fmt.Errorf("set password request: %w", err)
	}

	return mapHTTPError(resp)
}

// Upload implements [ServerAdapter]. It encodes req as a multipart form,
// signs the encoded body with an X-Content-SHA256 header and POSTs it to
// /api/deliveries/upload.
func (h *httpServerAdapter) Upload(ctx context.Context, req UploadRequest) (models.IngestResult, error) {
	var result models.IngestResult

	body, contentType, err := encodeUpload(req)
	if err != nil {
		return result, fmt.Errorf("encode upload: %w", err)
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", contentType).
		SetHeader(contentHashHeader, hex.EncodeToString(utils.Hash(body))).
		SetBody(body).
		SetResult(&result).
		Post("/api/deliveries/upload")
	if err != nil {
		return result, fmt.Errorf("upload request: %w", err)
	}

	return result, mapHTTPError(resp)
}

// Deliveries implements [ServerAdapter]. GET /api/deliveries.
func (h *httpServerAdapter) Deliveries(ctx context.Context, filter models.DeliveryFilter) ([]models.DeliveryRecord, error) {
	var records []models.DeliveryRecord
	err := h.get(ctx, "/api/deliveries", filterQuery(filter), &records)
	return records, err
}

// Summary implements [ServerAdapter]. GET /api/deliveries/summary.
func (h *httpServerAdapter) Summary(ctx context.Context, filter models.DeliveryFilter) (models.ReportSummary, error) {
	var summary models.ReportSummary
	err := h.get(ctx, "/api/deliveries/summary", filterQuery(filter), &summary)
	return summary, err
}

// Filters implements [ServerAdapter]. GET /api/filters.
func (h *httpServerAdapter) Filters(ctx context.Context) (models.FilterOptions, error) {
	var options models.FilterOptions
	err := h.get(ctx, "/api/filters", nil, &options)
	return options, err
}

// DeleteMonth implements [ServerAdapter]. DELETE /api/deliveries/months/{month}.
func (h *httpServerAdapter) DeleteMonth(ctx context.Context, month string) (models.DeleteResult, error) {
	return h.delete(ctx, "/api/deliveries/months/"+url.PathEscape(month))
}

// DeleteAll implements [ServerAdapter]. DELETE /api/deliveries.
func (h *httpServerAdapter) DeleteAll(ctx context.Context) (models.DeleteResult, error) {
	return h.delete(ctx, "/api/deliveries")
}

func (h *httpServerAdapter) get(ctx context.Context, path string, query url.Values, result any) error {
	req := h.client.R().SetContext(ctx).SetResult(result)
	if len(query) > 0 {
		req.SetQueryParamsFromValues(query)
	}

	resp, err := req.Get(path)
	if err != nil {
		return fmt.Errorf("GET %s: %w", path, err)
	}
	return mapHTTPError(resp)
}

func (h *httpServerAdapter) delete(ctx context.Context, path string) (models.DeleteResult, error) {
	var result models.DeleteResult

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&result).
		Delete(path)
	if err != nil {
		return result, fmt.Errorf("DELETE %s: %w", path, err)
	}

	return result, mapHTTPError(resp)
}

func encodeUpload(req UploadRequest) ([]byte, string, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	fw, err := mw.CreateFormFile("file", req.FileName)
	if err != nil {
		return nil, "", err
	}
	if _, err = fw.Write(req.Content); err != nil {
		return nil, "", err
	}
	if err = mw.WriteField("replace", strconv.FormatBool(req.Replace)); err != nil {
		return nil, "", err
	}
	if req.Month != "" {
		if err = mw.WriteField("month", req.Month); err != nil {
			return nil, "", err
		}
	}
	if err = mw.Close(); err != nil {
		return nil, "", err
	}

	return buf.Bytes(), mw.FormDataContentType(), nil
}

func filterQuery(filter models.DeliveryFilter) url.Values {
	query := url.Values{}
	for _, m := range filter.Months {
		query.Add("months", m)
	}
	for _, d := range filter.Departments {
		query.Add("departments", string(d))
	}
	for _, c := range filter.Collaborators {
		query.Add("collaborators", c)
	}
	return query
}
