package server_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/contactmansi/Recipe-Box/config"
	"github.com/contactmansi/Recipe-Box/internal/server"
	"github.com/contactmansi/Recipe-Box/internal/testhelpers"
)

func newServer(t *testing.T) *server.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)
	return server.New(server.Options{
		DB: testhelpers.SetupTestDatabase(t),
		Config: &config.Config{
			JWTSecret: "test-secret",
			UploadDir: t.TempDir(),
		},
	})
}

func TestHealthEndpoint(t *testing.T) {
	srv := newServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ok")
}

func TestMetricsEndpoint(t *testing.T) {
	srv := newServer(t)

	// Drive one request through the metrics middleware first.
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	srv.Router().ServeHTTP(httptest.NewRecorder(), req)

	req = httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.Contains(w.Body.String(), "recipebox_http_requests_total"), "scrape output missing request counter")
}

func TestUnknownRouteIs404(t *testing.T) {
	srv := newServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/nope", nil)
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
