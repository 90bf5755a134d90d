package i18n

import (
	"errors"
	"html/template"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const pageTemplates = `
{{define "de/page.html"}}[de] {{call .T "About us"}} {{.Lang}} {{.Title}}{{end}}
{{define "en/page.html"}}[en] {{call .T "About us"}} {{.Lang}} {{.Title}}{{end}}
`

func templateEngine(t *testing.T, p *Plugin) *gin.Engine {
	t.Helper()
	r := gin.New()
	p.Install(r)
	r.SetHTMLTemplate(template.Must(template.New("pages").Parse(pageTemplates)))
	return r
}

func TestTemplatePath(t *testing.T) {
	p := newTestPlugin(t)
	r := gin.New()
	r.GET("/raw", func(c *gin.Context) {
		c.String(http.StatusOK, TemplatePath(c, "page.html"))
	})
	p.Install(r)
	r.GET("/localized", func(c *gin.Context) {
		c.String(http.StatusOK, TemplatePath(c, "page.html"))
	})

	w := doRequest(r, http.MethodGet, "/raw", acceptLanguage("de"))
	assert.Equal(t, "page.html", w.Body.String())

	w = doRequest(r, http.MethodGet, "/localized", acceptLanguage("de"))
	assert.Equal(t, "de/page.html", w.Body.String())
}

func TestDefaults(t *testing.T) {
	p := newTestPlugin(t)
	r := gin.New()
	p.Install(r)
	r.GET("/", func(c *gin.Context) {
		vars := Defaults(c)
		translate, ok := vars[TranslateKey].(func(string, ...any) string)
		require.True(t, ok)
		c.String(http.StatusOK, vars[LangKey].(string)+" "+translate("hello %s", "Ana"))
	})

	w := doRequest(r, http.MethodGet, "/", acceptLanguage("fr"))
	assert.Equal(t, "fr bonjour Ana", w.Body.String())
}

func TestHTML(t *testing.T) {
	p := newTestPlugin(t)
	r := templateEngine(t, p)
	r.GET("/about", func(c *gin.Context) {
		HTML(c, http.StatusOK, "page.html", gin.H{"Title": "t1"})
	})

	w := doRequest(r, http.MethodGet, "/about", acceptLanguage("de"))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[de] Über uns de t1", w.Body.String())

	w = doRequest(r, http.MethodGet, "/about", nil)
	assert.Equal(t, "[en] About us en t1", w.Body.String())
}

func TestView(t *testing.T) {
	p := newTestPlugin(t)
	r := templateEngine(t, p)

	r.GET("/data", View("page.html", gin.H{"Title": "default"}, func(c *gin.Context) (gin.H, error) {
		return gin.H{"Title": "from handler"}, nil
	}))
	r.GET("/nil", View("page.html", gin.H{"Title": "default"}, func(c *gin.Context) (gin.H, error) {
		return nil, nil
	}))
	r.GET("/written", View("page.html", nil, func(c *gin.Context) (gin.H, error) {
		c.String(http.StatusAccepted, "custom")
		return nil, nil
	}))

	var handlerErr = errors.New("boom")
	var collected []*gin.Error
	r.GET("/fail", func(c *gin.Context) {
		c.Next()
		collected = c.Errors
		c.String(http.StatusInternalServerError, "failed")
	}, View("page.html", nil, func(c *gin.Context) (gin.H, error) {
		return nil, handlerErr
	}))

	w := doRequest(r, http.MethodGet, "/data", acceptLanguage("de"))
	assert.Equal(t, "[de] Über uns de from handler", w.Body.String())

	w = doRequest(r, http.MethodGet, "/nil", acceptLanguage("de"))
	assert.Equal(t, "[de] Über uns de default", w.Body.String())

	w = doRequest(r, http.MethodGet, "/written", acceptLanguage("de"))
	assert.Equal(t, http.StatusAccepted, w.Code)
	assert.Equal(t, "custom", w.Body.String())

	w = doRequest(r, http.MethodGet, "/fail", acceptLanguage("de"))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	require.Len(t, collected, 1)
	assert.ErrorIs(t, collected[0], handlerErr)
}
