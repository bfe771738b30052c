package requests

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"leadhub-backend/internal/cache"
	"leadhub-backend/internal/validation"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Success   bool            `json:"success"`
	Message   string          `json:"message"`
	Timestamp string          `json:"timestamp"`
	Data      json.RawMessage `json:"data"`
	Errors    []struct {
		Path string `json:"path"`
		Msg  string `json:"msg"`
	} `json:"errors"`
}

func passthrough(next http.Handler) http.Handler { return next }

func newTestRouter(t *testing.T, repo Repository[BrandingRequest]) chi.Router {
	t.Helper()
	svc := NewService[BrandingPayload, BrandingRequest](brandingDef(), repo, cache.NewNoop(), time.UTC, 30*time.Second)
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := NewHandler(svc, validation.New(Vocabularies()), log, nil)

	r := chi.NewRouter()
	h.Routes(r, passthrough, passthrough)
	return r
}

func doJSON(t *testing.T, r chi.Router, method, path string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return rec, env
}

func TestSubmitBrandingRequest(t *testing.T) {
	repo := &fakeRepo{}
	r := newTestRouter(t, repo)

	rec, env := doJSON(t, r, http.MethodPost, "/branding-requests/", validBrandingPayload())
	require.Equal(t, http.StatusCreated, rec.Code)
	require.True(t, env.Success)
	require.Equal(t, "Branding request submitted successfully", env.Message)
	require.NotEmpty(t, env.Timestamp)

	var doc BrandingRequest
	require.NoError(t, json.Unmarshal(env.Data, &doc))
	require.Len(t, doc.ID, 24)
	require.Equal(t, StatusPending, doc.Status)
	require.True(t, doc.IsHighValueProject)
	require.Len(t, repo.docs, 1)
}

func TestSubmitRejectsEmptyMultiSelect(t *testing.T) {
	r := newTestRouter(t, &fakeRepo{})

	payload := validBrandingPayload()
	payload.DesignType = nil

	rec, env := doJSON(t, r, http.MethodPost, "/branding-requests/", payload)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.False(t, env.Success)
	require.NotEmpty(t, env.Errors)

	paths := make([]string, 0, len(env.Errors))
	for _, fe := range env.Errors {
		paths = append(paths, fe.Path)
	}
	require.Contains(t, paths, "designType")
}

func TestSubmitRejectsUnknownEnumValue(t *testing.T) {
	r := newTestRouter(t, &fakeRepo{})

	payload := validBrandingPayload()
	payload.BrandStyle = "Brutalist"

	rec, env := doJSON(t, r, http.MethodPost, "/branding-requests/", payload)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.False(t, env.Success)
	require.NotEmpty(t, env.Errors)
	require.Equal(t, "brandStyle", env.Errors[0].Path)
}

func TestGetByIDMalformedID(t *testing.T) {
	r := newTestRouter(t, &fakeRepo{})

	rec, env := doJSON(t, r, http.MethodGet, "/branding-requests/abc", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.False(t, env.Success)
	require.Equal(t, ErrInvalidID.Error(), env.Message)
}

func TestGetByIDNotFoundResponse(t *testing.T) {
	r := newTestRouter(t, &fakeRepo{})

	rec, env := doJSON(t, r, http.MethodGet, "/branding-requests/64b2f0c8e4b0a1d2c3e4f5a6", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, ErrNotFound.Error(), env.Message)
}

func TestUpdateStatusEnumeratesValidValues(t *testing.T) {
	repo := &fakeRepo{}
	r := newTestRouter(t, repo)

	_, created := doJSON(t, r, http.MethodPost, "/branding-requests/", validBrandingPayload())
	var doc BrandingRequest
	require.NoError(t, json.Unmarshal(created.Data, &doc))

	rec, env := doJSON(t, r, http.MethodPatch, "/branding-requests/"+doc.ID+"/status", map[string]string{"status": "archived"})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "invalid status: must be one of pending, reviewed, in-progress, completed", env.Message)

	rec, env = doJSON(t, r, http.MethodPatch, "/branding-requests/"+doc.ID+"/status", map[string]string{"status": "reviewed"})
	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, env.Success)
}

func TestDeleteReturnsIDThenNotFound(t *testing.T) {
	repo := &fakeRepo{}
	r := newTestRouter(t, repo)

	_, created := doJSON(t, r, http.MethodPost, "/branding-requests/", validBrandingPayload())
	var doc BrandingRequest
	require.NoError(t, json.Unmarshal(created.Data, &doc))

	rec, env := doJSON(t, r, http.MethodDelete, "/branding-requests/"+doc.ID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, env.Success)
	require.JSONEq(t, `{"id":"`+doc.ID+`"}`, string(env.Data))

	rec, _ = doJSON(t, r, http.MethodDelete, "/branding-requests/"+doc.ID, nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListEnvelopeShape(t *testing.T) {
	repo := &fakeRepo{}
	r := newTestRouter(t, repo)
	for i := 0; i < 3; i++ {
		doJSON(t, r, http.MethodPost, "/branding-requests/", validBrandingPayload())
	}

	rec, env := doJSON(t, r, http.MethodGet, "/branding-requests/?page=1&limit=2", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var data struct {
		Requests   []BrandingRequest `json:"requests"`
		Pagination Pagination        `json:"pagination"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	require.Len(t, data.Requests, 2)
	require.Equal(t, int64(2), data.Pagination.TotalPages)
	require.Equal(t, int64(3), data.Pagination.TotalRequests)
	require.True(t, data.Pagination.HasNextPage)
}
