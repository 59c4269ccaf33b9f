package middleware

import (
	"errors"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"users-api/internal/interface/api/rest/validator"
)

// Sentinels attached via c.Error by any handler, translated to HTTP below.
var (
	ErrNotFound   = errors.New("resource not found")
	ErrBadRequest = errors.New("bad request")
)

// FaultTranslator is the single policy mapping uncaught conditions to an
// HTTP response. Handlers short-circuit their explicit business checks
// before anything reaches this point.
//
//	field validation failure -> 400, field -> message map
//	not-found escaping a store call -> 404 {"error": "Resource not found"}
//	unparseable body / bad path or query param -> 400 {"error": "Bad request"}
//	panic or anything else -> 500 {"error": "Internal server error"}
func FaultTranslator(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				logger.Error("panic recovered",
					zap.Any("panic", rec),
					zap.String("url", c.Request.URL.Path),
					zap.ByteString("stack", debug.Stack()),
				)
				c.AbortWithStatusJSON(
					http.StatusInternalServerError,
					gin.H{"error": "Internal server error"},
				)
			}
		}()

		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		var fieldErrs validator.Errors
		switch {
		case errors.As(err, &fieldErrs):
			c.JSON(http.StatusBadRequest, fieldErrs)
		case errors.Is(err, ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Resource not found"})
		case errors.Is(err, ErrBadRequest):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Bad request"})
		default:
			logger.Error("unhandled error",
				zap.Error(err),
				zap.String("url", c.Request.URL.Path),
			)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
	}
}
