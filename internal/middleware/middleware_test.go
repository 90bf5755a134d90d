package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"gin-i18n/internal/apperrors"
	"gin-i18n/pkg/i18n"
)

func init() {
	gin.SetMode(gin.TestMode)
}

const dePO = `msgid ""
msgstr ""
"Language: de\n"

msgid "Missing translation %d not found"
msgstr "Fehlende Übersetzung %d nicht gefunden"

msgid "System error"
msgstr "Systemfehler"
`

func newPlugin(t *testing.T) *i18n.Plugin {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "de", "LC_MESSAGES", "messages.po")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(dePO), 0o644))

	p, err := i18n.New("messages", dir)
	require.NoError(t, err)
	return p
}

func get(h http.Handler, target, lang string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	if lang != "" {
		req.Header.Set("Accept-Language", lang)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestGlobalErrorMiddleware(t *testing.T) {
	r := gin.New()
	r.Use(GlobalErrorMiddleware())
	newPlugin(t).Install(r)
	r.GET("/missing", func(c *gin.Context) {
		_ = c.Error(apperrors.NotFoundError("Missing translation %d not found", 3))
	})
	r.GET("/plain", func(c *gin.Context) {
		_ = c.Error(errors.New("boom"))
	})
	r.GET("/ok", func(c *gin.Context) {
		c.String(http.StatusOK, "fine")
	})

	w := get(r, "/missing", "de")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), `"message":"Fehlende Übersetzung 3 nicht gefunden"`)
	assert.Contains(t, w.Body.String(), `"success":false`)

	w = get(r, "/missing", "en")
	assert.Contains(t, w.Body.String(), `"message":"Missing translation 3 not found"`)

	w = get(r, "/plain", "de")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), `"message":"Systemfehler"`)

	w = get(r, "/ok", "de")
	assert.Equal(t, "fine", w.Body.String())
}

func TestZapGinLogger(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	r := gin.New()
	r.Use(ZapGinLogger(zap.New(core)))
	newPlugin(t).Install(r)
	r.GET("/hello", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	get(r, "/hello", "de-AT")

	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.Equal(t, "/hello", fields["path"])
	assert.Equal(t, int64(http.StatusNoContent), fields["status"])
	assert.Equal(t, "de", fields["lang"])
}

func TestCorsMiddleware(t *testing.T) {
	r := gin.New()
	r.Use(CorsMiddleware())
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Headers"), "Accept-Language")
	assert.Equal(t, "Content-Language", w.Header().Get("Access-Control-Expose-Headers"))
}

func TestI18nHeadersMiddleware(t *testing.T) {
	r := gin.New()
	r.Use(I18nHeadersMiddleware())
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := get(r, "/", "")
	assert.Equal(t, "Accept-Language", w.Header().Get("Vary"))
}
