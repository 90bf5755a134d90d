package middleware

import (
	"github.com/gin-gonic/gin"
)

// I18nHeadersMiddleware 标记响应随 Accept-Language 变化，避免缓存把一种语言的页面返回给其他语言的用户
func I18nHeadersMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Add("Vary", "Accept-Language")
		c.Next()
	}
}
