package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"socialid/src/app/middleware"
	"socialid/src/core/domain"
	"socialid/src/infra/config"
	"socialid/src/infra/logger"
	"socialid/src/infra/metrics"
	"socialid/src/infra/repo"
)

func newTestServer(t *testing.T, withMetrics bool) *Server {
	t.Helper()
	cfg, err := config.Load()
	require.NoError(t, err)
	cfg.Database.Enabled = false

	var m *metrics.Metrics
	if withMetrics {
		m = metrics.New()
	}
	log := logger.Discard()
	return New(cfg, log, domain.DefaultEncoder(), repo.NewMemoryRepository(log), m)
}

func TestServer_Routes(t *testing.T) {
	s := newTestServer(t, true)

	tests := []struct {
		method, path, body string
		code               int
	}{
		{http.MethodGet, "/health", "", http.StatusOK},
		{http.MethodGet, "/health/detailed", "", http.StatusOK},
		{http.MethodPost, "/v1/ids/encode", `{"value":"a b"}`, http.StatusOK},
		{http.MethodPost, "/v1/ids/decode", `{"value":"a_20b"}`, http.StatusOK},
		{http.MethodGet, "/v1/ids/x.org:y", "", http.StatusOK},
		{http.MethodPost, "/v1/ids/compose", `{"domain":"x.org","local_id":"y"}`, http.StatusOK},
		{http.MethodPost, "/v1/ids/group", `{"ids":["x.org:y"]}`, http.StatusOK},
		{http.MethodPost, "/v1/providers", `{"domain":"x.org"}`, http.StatusCreated},
		{http.MethodPost, "/v1/providers/batch", `{"providers":[{"domain":"y.org"}]}`, http.StatusCreated},
		{http.MethodGet, "/v1/providers", "", http.StatusOK},
		{http.MethodGet, "/v1/providers/x.org", "", http.StatusOK},
		{http.MethodDelete, "/v1/providers/x.org", "", http.StatusNoContent},
		{http.MethodGet, "/nope", "", http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()
			s.Router().ServeHTTP(rec, req)

			assert.Equal(t, tt.code, rec.Code, rec.Body.String())
			assert.NotEmpty(t, rec.Header().Get(middleware.RequestIDHeader))
		})
	}

	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `socialid_codec_operations_total{operation="encode"} 1`)
	assert.Contains(t, rec.Body.String(), `route="/v1/ids/:id"`)
}

func TestServer_NoMetrics(t *testing.T) {
	s := newTestServer(t, false)

	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
