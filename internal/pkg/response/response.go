package response

import (
	"ExerciseTracker/internal/api/dto"
	"ExerciseTracker/internal/service"
	"errors"
	log "log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	Ok                  = 200
	BadRequest          = 400
	NotFound            = 404
	InternalServerError = 500
)

// Success 直接返回数据本身，不包外层信封
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Fail 以 HTTP 状态码返回 {"error": message}
func Fail(c *gin.Context, status int, message string) {
	c.JSON(status, dto.ErrorDTO{Error: message})
}

// Error 已知错误按 ErrorMap 返回，其余记录日志后以 fallback 文案返回 500
func Error(c *gin.Context, err error, fallback error) {
	for known, status := range service.ErrorMap {
		if errors.Is(err, known) {
			Fail(c, status, known.Error())
			return
		}
	}

	log.ErrorContext(c.Request.Context(), "Error",
		"method", c.Request.Method,
		"path", c.FullPath(),
		"err", err,
	)
	Fail(c, InternalServerError, fallback.Error())
}
