package middleware

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	domainerr "github.com/notarydesk/priorities/internal/domain/error"
	"github.com/notarydesk/priorities/internal/metrics"
	"go.uber.org/zap"
)

const RequestIDHeader = "X-Request-ID"

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// StatusOf maps a business code to its HTTP status.
func StatusOf(code string) int {
	switch code {
	case domainerr.CodeValidation, domainerr.CodeCorruptBackup:
		return http.StatusBadRequest
	case domainerr.CodeDuplicateAssignment:
		return http.StatusConflict
	case domainerr.CodeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// ErrorHandlingMiddleware renders the last error attached to the context and
// turns panics into INTERNAL_ERROR responses.
func ErrorHandlingMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.Error("panic recovered",
					zap.Any("error", err),
					zap.String("path", c.Request.URL.Path),
					zap.String("method", c.Request.Method))

				c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{
					Code:    domainerr.CodeInternal,
					Message: "Ocorreu um erro interno.",
				})
			}
		}()

		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors.Last().Err

		var de domainerr.DomainError
		if !errors.As(err, &de) {
			logger.Error("request error",
				zap.Error(err),
				zap.String("path", c.Request.URL.Path),
				zap.String("method", c.Request.Method))
			c.JSON(http.StatusInternalServerError, ErrorResponse{
				Code:    domainerr.CodeInternal,
				Message: "Ocorreu um erro interno.",
				Details: err.Error(),
			})
			return
		}

		logger.Info("request rejected",
			zap.String("code", de.Code()),
			zap.Error(err),
			zap.String("path", c.Request.URL.Path),
			zap.String("method", c.Request.Method))
		resp := ErrorResponse{Code: de.Code(), Message: de.Message()}
		if cause := errors.Unwrap(de); cause != nil {
			resp.Details = cause.Error()
		}
		c.JSON(StatusOf(de.Code()), resp)
	}
}

// RequestID propagates or assigns the X-Request-ID header.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(RequestIDHeader, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

// RequestLogger logs one line per request.
func RequestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Debug("request",
			zap.String("request_id", c.GetString(RequestIDHeader)),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)))
	}
}

// Metrics counts requests per route and outcome. Unmatched routes are not
// counted.
func Metrics(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		route := c.FullPath()
		if route == "" {
			return
		}
		status := c.Writer.Status()
		outcome := metrics.OutcomeOK
		switch {
		case status >= 500:
			outcome = metrics.OutcomeFailed
		case status >= 400:
			outcome = metrics.OutcomeRejected
		}
		m.Observe(c.Request.Method+" "+route, outcome)
	}
}

func Cors() gin.HandlerFunc {
	config := cors.DefaultConfig()
	config.AllowAllOrigins = true
	config.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", RequestIDHeader}
	config.ExposeHeaders = []string{RequestIDHeader, "Content-Disposition"}
	return cors.New(config)
}
