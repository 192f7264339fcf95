package logger

import (
	"ExerciseTracker/internal/api/config"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
)

type accessLog struct {
	Time        string `json:"time"`
	Level       string `json:"level"`
	Msg         string `json:"msg"`
	TraceID     string `json:"trace_id"`
	LogToken    string `json:"log_token"`
	TargetIndex string `json:"target_index"`
	Method      string `json:"method"`
	Path        string `json:"path"`
	Status      int    `json:"status"`
	Latency     string `json:"latency"`
}

// SetupGin 挂载访问日志与 panic 恢复
func SetupGin(r *gin.Engine, cfg config.LogstashConfig) {
	r.Use(gin.LoggerWithConfig(gin.LoggerConfig{
		Output:    LogWriter,
		Formatter: AccessLogFormatter(cfg),
	}))

	r.Use(gin.Recovery())
}

// AccessLogFormatter 每次请求输出一行 JSON，字段经过转义
func AccessLogFormatter(cfg config.LogstashConfig) gin.LogFormatter {
	return func(p gin.LogFormatterParams) string {
		var traceID string
		if p.Keys != nil {
			if id, ok := p.Keys[TraceIDKey].(string); ok {
				traceID = id
			}
		}
		if traceID == "" && p.Request != nil {
			traceID = TraceID(p.Request.Context())
		}

		line, err := json.Marshal(&accessLog{
			Time:        p.TimeStamp.Format(time.RFC3339),
			Level:       "INFO",
			Msg:         "GIN_ACCESS",
			TraceID:     traceID,
			LogToken:    cfg.Token,
			TargetIndex: cfg.Index,
			Method:      p.Method,
			Path:        p.Path,
			Status:      p.StatusCode,
			Latency:     p.Latency.String(),
		})
		if err != nil {
			return ""
		}
		return string(line) + "\n"
	}
}
