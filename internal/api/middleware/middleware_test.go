package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"maturity-tracker-backend/internal/api/middleware"
	"maturity-tracker-backend/internal/config"
	"maturity-tracker-backend/internal/logger"
	"maturity-tracker-backend/internal/metrics"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouter(handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(handlers...)
	return router
}

func serve(router *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func TestRequestID(t *testing.T) {
	router := newRouter(middleware.RequestID())
	var seen string
	router.GET("/ping", func(c *gin.Context) {
		seen = c.GetString(logger.RequestIDKey)
		c.Status(http.StatusOK)
	})

	t.Run("generates an id", func(t *testing.T) {
		resp := serve(router, httptest.NewRequest(http.MethodGet, "/ping", nil))
		assert.NotEmpty(t, seen)
		assert.Equal(t, seen, resp.Header().Get(middleware.RequestIDHeader))
	})

	t.Run("propagates the caller id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(middleware.RequestIDHeader, "abc-123")
		resp := serve(router, req)
		assert.Equal(t, "abc-123", seen)
		assert.Equal(t, "abc-123", resp.Header().Get(middleware.RequestIDHeader))
	})
}

func TestRecovery(t *testing.T) {
	router := newRouter(middleware.Recovery())
	router.GET("/boom", func(c *gin.Context) {
		panic("exploded")
	})

	resp := serve(router, httptest.NewRequest(http.MethodGet, "/boom", nil))
	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	assert.JSONEq(t, `{"error":"internal server error"}`, resp.Body.String())
}

func TestCORS(t *testing.T) {
	cfg := &config.Config{AllowedOrigins: []string{"http://localhost:3000"}}
	router := newRouter(middleware.CORS(cfg))
	router.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	t.Run("allowed origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		resp := serve(router, req)
		assert.Equal(t, http.StatusOK, resp.Code)
		assert.Equal(t, "http://localhost:3000", resp.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("unknown origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("Origin", "http://evil.example.com")
		resp := serve(router, req)
		assert.Empty(t, resp.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("preflight", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/ping", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		resp := serve(router, req)
		assert.Equal(t, http.StatusNoContent, resp.Code)
	})
}

func TestMetrics(t *testing.T) {
	m := metrics.New()
	router := newRouter(middleware.Metrics(m))
	router.GET("/campaigns/:id", func(c *gin.Context) { c.Status(http.StatusOK) })

	serve(router, httptest.NewRequest(http.MethodGet, "/campaigns/1", nil))
	serve(router, httptest.NewRequest(http.MethodGet, "/campaigns/2", nil))
	serve(router, httptest.NewRequest(http.MethodGet, "/nowhere", nil))

	count, err := testutil.GatherAndCount(m.Registry(), "maturity_http_requests_total")
	require.NoError(t, err)
	// one series for the route template, one for unmatched paths
	assert.Equal(t, 2, count)
}

func TestLogger(t *testing.T) {
	router := newRouter(middleware.RequestID(), middleware.Logger())
	router.GET("/ping", func(c *gin.Context) { c.Status(http.StatusTeapot) })

	resp := serve(router, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, http.StatusTeapot, resp.Code)
}
