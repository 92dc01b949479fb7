package middleware

import (
	"errors"
	"net/http"

	"go-quote-backend/internal/delivery/http/response"
	"go-quote-backend/pkg/apperror"
	"go-quote-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

// ErrorHandler is the single place failures become client responses. An
// AppError surfaces its short message; anything else is logged with its full
// detail and answered with a generic string so internals never leak.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) > 0 {
			err := c.Errors.Last().Err
			var appErr *apperror.AppError
			if errors.As(err, &appErr) {
				if appErr.Err != nil {
					logger.Log.Error("request failed",
						"kind", string(appErr.Kind),
						"path", c.FullPath(),
						"error", appErr.Err.Error(),
					)
				}
				response.Error(c, appErr.Code, appErr.Message)
			} else {
				logger.Log.Error("unhandled error", "path", c.FullPath(), "error", err.Error())
				response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.")
			}
		}
	}
}
