// Package middleware provides HTTP middleware components.
package middleware

import (
	"fmt"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"storecatalog/internal/core/apperror"
	appctx "storecatalog/internal/core/context"
	"storecatalog/internal/infrastructure/http/v1/dto"
	"storecatalog/pkg/logger"
)

// Recovery middleware recovers from panics and returns 500 error.
// It runs outside ErrorHandler, so it renders the body itself.
// The stack goes to the log only.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				logger.Error(c.Request.Context(), "panic recovered",
					"error", rec,
					"stack", string(debug.Stack()),
				)

				appErr := apperror.NewInternal(fmt.Errorf("panic: %v", rec)).
					WithDetail("request_id", appctx.GetRequestID(c.Request.Context()))
				_ = c.Error(appErr)

				if c.Writer.Written() {
					c.Abort()
					return
				}
				c.AbortWithStatusJSON(appErr.HTTPStatus, dto.ErrorResponse{
					Code:    appErr.Code,
					Message: appErr.Message,
					Details: appErr.Details,
				})
			}
		}()
		c.Next()
	}
}
