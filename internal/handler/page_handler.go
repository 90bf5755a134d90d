package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gin-i18n/pkg/i18n"
	"gin-i18n/response"
)

// IndexHandler 首页（GET /），渲染 <lang>/index.html
func IndexHandler(p *i18n.Plugin) gin.HandlerFunc {
	return i18n.View("index.html", gin.H{"Title": "Welcome"}, func(c *gin.Context) (gin.H, error) {
		return gin.H{
			"Locales": p.Locales(),
			"Default": p.Default(),
		}, nil
	})
}

// AboutHandler 关于页（GET /about）
func AboutHandler(c *gin.Context) {
	i18n.HTML(c, http.StatusOK, "about.html", gin.H{"Title": "About us"})
}

// HelloHandler 问候（GET /hello/:name）
func HelloHandler(c *gin.Context) {
	name := c.Param("name")
	c.JSON(http.StatusOK, response.OK(gin.H{
		"lang":     i18n.Lang(c),
		"greeting": i18n.T(c, "Hello %s", name),
	}, i18n.T(c, "success")))
}

// SubHelloHandler 子应用首页（GET /sub/）
func SubHelloHandler(c *gin.Context) {
	c.String(http.StatusOK, i18n.T(c, "Hello from the sub application"))
}
