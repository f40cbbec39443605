package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storecatalog/internal/core/apperror"
	appctx "storecatalog/internal/core/context"
	"storecatalog/internal/infrastructure/http/v1/dto"
)

func newEngine(handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Recovery(), Trace(), ErrorHandler())
	r.GET("/items/:id", handlers...)
	return r
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()
	var body dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestErrorHandler_AppError(t *testing.T) {
	r := newEngine(func(c *gin.Context) {
		_ = c.Error(apperror.NewNotFound("store", c.Param("id")))
		c.Abort()
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/items/42", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	body := decodeError(t, w)
	assert.Equal(t, apperror.CodeNotFound, body.Code)
	assert.Equal(t, "store not found", body.Message)
}

func TestErrorHandler_PlainErrorHidden(t *testing.T) {
	r := newEngine(func(c *gin.Context) {
		_ = c.Error(errors.New("pq: relation does not exist"))
		c.Abort()
	})

	req := httptest.NewRequest(http.MethodGet, "/items/1", nil)
	req.Header.Set(HeaderRequestID, "req-7")
	req.Header.Set(HeaderTraceID, "trace-7")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "relation")
	body := decodeError(t, w)
	assert.Equal(t, apperror.CodeInternal, body.Code)
	assert.Equal(t, "req-7", body.Details["request_id"])
	assert.Equal(t, "trace-7", body.Details["trace_id"])
}

func TestRecovery_RendersInternalError(t *testing.T) {
	r := newEngine(func(c *gin.Context) {
		panic("boom")
	})

	req := httptest.NewRequest(http.MethodGet, "/items/1", nil)
	req.Header.Set(HeaderRequestID, "req-9")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "boom")
	assert.Equal(t, "req-9", decodeError(t, w).Details["request_id"])
}

func TestTrace_PropagatesHeaders(t *testing.T) {
	var seen *appctx.TraceContext
	r := newEngine(func(c *gin.Context) {
		seen = appctx.GetTrace(c.Request.Context())
		c.Status(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/items/1", nil)
	req.Header.Set(HeaderRequestID, "req-1")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.NotNil(t, seen)
	assert.Equal(t, "req-1", seen.RequestID)
	assert.Equal(t, "req-1", seen.TraceID)
	assert.Equal(t, "/items/:id", seen.Route)
	assert.Equal(t, "req-1", w.Header().Get(HeaderRequestID))
}

func TestMetrics_CountsByRoute(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := NewMetrics("test")
	r := gin.New()
	r.Use(m.Middleware())
	r.GET("/stores/:id", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/metrics", gin.WrapH(m.Handler()))

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/stores/1", nil))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/stores/2", nil))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var line string
	for _, l := range strings.Split(w.Body.String(), "\n") {
		if strings.HasPrefix(l, "test_http_requests_total{") && strings.Contains(l, `route="/stores/:id"`) {
			line = l
		}
	}
	assert.True(t, strings.HasSuffix(line, " 2"), "got %q", line)
}
