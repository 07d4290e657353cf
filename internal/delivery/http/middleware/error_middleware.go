package middleware

import (
	"errors"
	"net/http"

	"github.com/PhatNguyen203/DevConnecting/internal/delivery/http/response"
	"github.com/PhatNguyen203/DevConnecting/pkg/apperror"
	"github.com/PhatNguyen203/DevConnecting/pkg/logger"

	"github.com/gin-gonic/gin"
)

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		// Check if there are errors appended to the context
		if len(c.Errors) > 0 {
			err := c.Errors.Last().Err
			var appErr *apperror.AppError
			if errors.As(err, &appErr) {
				if appErr.Code == http.StatusInternalServerError && appErr.Err != nil {
					logger.Log.Error("internal error", "error", appErr.Err, "path", c.FullPath())
				}
				var detail interface{}
				if len(appErr.Fields) > 0 {
					detail = appErr.Fields
				}
				response.Error(c, appErr.Code, appErr.Message, detail)
				return
			}

			// Never expose internal error details to clients. Log server-side
			// and send a generic message.
			logger.Log.Error("unhandled error", "error", err, "path", c.FullPath())
			response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", nil)
		}
	}
}
