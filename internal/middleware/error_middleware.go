package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"gin-i18n/internal/apperrors"
	"gin-i18n/pkg/i18n"
	"gin-i18n/response"
)

// GlobalErrorMiddleware 全局错误中间件，错误消息按请求语言翻译
func GlobalErrorMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		translate := i18n.FromContext(c.Request.Context()).T
		for _, err := range c.Errors {
			var appErr *apperrors.AppError
			if errors.As(err.Err, &appErr) {
				c.AbortWithStatusJSON(appErr.Code, response.ErrorFromAppError(appErr, translate))
				return
			}
		}

		// 默认处理未定义的错误
		c.AbortWithStatusJSON(http.StatusInternalServerError, response.ErrorFromAppError(apperrors.SystemErrorDefault(), translate))
	}
}
