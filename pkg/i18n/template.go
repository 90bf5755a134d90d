package i18n

import (
	"maps"
	"net/http"
	"path"

	"github.com/gin-gonic/gin"
)

// Template data keys set by Defaults.
const (
	TranslateKey = "T"
	LangKey      = "Lang"
)

// Defaults returns the template values every localized page gets: T, the
// request translate function ({{call .T "Hello %s" .Name}}), and Lang, the
// request locale code.
func Defaults(c *gin.Context) gin.H {
	tr := FromContext(c.Request.Context())
	return gin.H{
		TranslateKey: tr.T,
		LangKey:      tr.Lang(),
	}
}

// TemplatePath prefixes a template name with the request locale: "index.html"
// becomes "de/index.html".
func TemplatePath(c *gin.Context, name string) string {
	lang := Lang(c)
	if lang == "" {
		return name
	}
	return path.Join(lang, name)
}

// HTML renders the localized variant of a template with Defaults merged under data.
func HTML(c *gin.Context, code int, name string, data gin.H) {
	vars := Defaults(c)
	maps.Copy(vars, data)
	c.HTML(code, TemplatePath(c, name), vars)
}

// View adapts fn into a handler rendering the localized variant of name.
// The data returned by fn is merged over defaults. An error is handed to
// c.Error; a nil result from a handler that already responded renders nothing.
func View(name string, defaults gin.H, fn func(c *gin.Context) (gin.H, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		data, err := fn(c)
		if err != nil {
			_ = c.Error(err)
			return
		}
		if data == nil && c.Writer.Written() {
			return
		}

		vars := make(gin.H, len(defaults)+len(data))
		maps.Copy(vars, defaults)
		maps.Copy(vars, data)
		HTML(c, http.StatusOK, name, vars)
	}
}
