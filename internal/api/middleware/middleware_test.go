package middleware

import (
	"ExerciseTracker/internal/pkg/logger"
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEngine(mw ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(mw...)
	return r
}

func TestTraceMiddleware(t *testing.T) {
	r := newEngine(TraceMiddleware())
	r.GET("/api/trace", func(c *gin.Context) {
		c.String(http.StatusOK, logger.TraceID(c.Request.Context()))
	})

	t.Run("reuses incoming id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/trace", nil)
		req.Header.Set(TraceHeader, "abc-123")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, "abc-123", w.Body.String())
		assert.Equal(t, "abc-123", w.Header().Get(TraceHeader))
	})

	t.Run("generates id when missing", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/trace", nil))

		assert.Len(t, w.Body.String(), 36)
		assert.Equal(t, w.Body.String(), w.Header().Get(TraceHeader))
	})

	t.Run("regenerates oversized id", func(t *testing.T) {
		long := strings.Repeat("a", maxTraceIDBytes+1)
		req := httptest.NewRequest(http.MethodGet, "/api/trace", nil)
		req.Header.Set(TraceHeader, long)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.NotEqual(t, long, w.Body.String())
		assert.Len(t, w.Body.String(), 36)
	})

	t.Run("keeps id at the size limit", func(t *testing.T) {
		edge := strings.Repeat("b", maxTraceIDBytes)
		req := httptest.NewRequest(http.MethodGet, "/api/trace", nil)
		req.Header.Set(TraceHeader, edge)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, edge, w.Body.String())
	})
}

func TestCORSMiddleware(t *testing.T) {
	r := newEngine(CORSMiddleware())
	called := false
	r.Any("/api/users", func(c *gin.Context) {
		called = true
		c.Status(http.StatusOK)
	})

	t.Run("preflight", func(t *testing.T) {
		called = false
		req := httptest.NewRequest(http.MethodOptions, "/api/users", nil)
		req.Header.Set("Origin", "https://example.com")
		req.Header.Set("Access-Control-Request-Headers", "content-type, x-trace-id")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "content-type, x-trace-id", w.Header().Get("Access-Control-Allow-Headers"))
		assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "POST")
		assert.False(t, called)
	})

	t.Run("simple request", func(t *testing.T) {
		called = false
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/users", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
		assert.Empty(t, w.Header().Get("Access-Control-Allow-Headers"))
		assert.True(t, called)
	})
}

func TestAuditWriter_CapsCapturedBody(t *testing.T) {
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	w := &auditWriter{ResponseWriter: c.Writer, body: &bytes.Buffer{}}

	first := bytes.Repeat([]byte("a"), maxAuditBodyBytes-10)
	second := bytes.Repeat([]byte("b"), 4<<10)

	n, err := w.Write(first)
	require.NoError(t, err)
	assert.Equal(t, len(first), n)
	n, err = w.Write(second)
	require.NoError(t, err)
	assert.Equal(t, len(second), n)

	// 客户端收到完整响应，审计只保留前 16KiB
	assert.Equal(t, len(first)+len(second), rec.Body.Len())
	assert.Equal(t, maxAuditBodyBytes, w.body.Len())
	assert.True(t, bytes.HasSuffix(w.body.Bytes(), bytes.Repeat([]byte("b"), 10)))

	_, _ = w.Write([]byte("c"))
	assert.Equal(t, maxAuditBodyBytes, w.body.Len())
}

func TestAuditMiddleware_KeepsRequestBodyForHandler(t *testing.T) {
	r := newEngine(AuditMiddleware())
	var got string
	r.POST("/api/users", func(c *gin.Context) {
		b, _ := io.ReadAll(c.Request.Body)
		got = string(b)
		c.String(http.StatusOK, strings.Repeat("x", maxAuditBodyBytes*2))
	})

	req := httptest.NewRequest(http.MethodPost, "/api/users", strings.NewReader("username=fcc_test"))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "username=fcc_test", got)
	assert.Equal(t, maxAuditBodyBytes*2, w.Body.Len())
}
