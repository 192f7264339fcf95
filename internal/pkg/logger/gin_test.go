package logger

import (
	"ExerciseTracker/internal/api/config"
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessLogFormatter_EscapesPath(t *testing.T) {
	format := AccessLogFormatter(config.LogstashConfig{Index: "idx", Token: "tok"})

	line := format(gin.LogFormatterParams{
		TimeStamp:  time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		Method:     "GET",
		Path:       `/api/users/"quoted"\logs`,
		StatusCode: 404,
		Latency:    1500 * time.Microsecond,
		Keys:       map[any]any{TraceIDKey: "trace-1"},
	})
	require.True(t, strings.HasSuffix(line, "\n"))

	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(line), &got))
	assert.Equal(t, `/api/users/"quoted"\logs`, got["path"])
	assert.Equal(t, "trace-1", got[TraceIDKey])
	assert.Equal(t, "tok", got["log_token"])
	assert.Equal(t, "idx", got["target_index"])
	assert.EqualValues(t, 404, got["status"])
	assert.Equal(t, "1.5ms", got["latency"])
}

func TestAccessLogFormatter_TraceIDFromRequestContext(t *testing.T) {
	format := AccessLogFormatter(config.LogstashConfig{})
	req := httptest.NewRequest("GET", "/api/ping", nil)
	req = req.WithContext(context.WithValue(req.Context(), TraceIDKey, "ctx-trace"))

	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(format(gin.LogFormatterParams{Request: req, Path: "/api/ping"})), &got))
	assert.Equal(t, "ctx-trace", got[TraceIDKey])
}
