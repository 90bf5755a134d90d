package i18n

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

const dePO = `msgid ""
msgstr ""
"Language: de\n"
"Content-Type: text/plain; charset=UTF-8\n"

msgid "hello"
msgstr "hallo"

msgid "hello %s"
msgstr "hallo %s"

msgid "About us"
msgstr "Über uns"

msgid "OK"
msgstr "OK"
`

const frTOML = `hello = "bonjour"
"hello %s" = "bonjour %s"

[apples]
one = "une pomme"
other = "des pommes"
`

const esYAML = `hello: hola
"hello %s": "hola %s"
`

// newLocaleDir builds a locale tree with a gettext catalog (de), a TOML
// catalog (fr), a YAML catalog (es) and a locale without catalog (it).
func newLocaleDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "de", "LC_MESSAGES", "messages.po"), dePO)
	writeFile(t, filepath.Join(dir, "fr", "messages.toml"), frTOML)
	writeFile(t, filepath.Join(dir, "es", "messages.yaml"), esYAML)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "it"), 0o755))
	writeFile(t, filepath.Join(dir, "README"), "not a locale")
	return dir
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func newTestPlugin(t *testing.T, opts ...Option) *Plugin {
	t.Helper()
	p, err := New("messages", newLocaleDir(t), opts...)
	require.NoError(t, err)
	return p
}

func doRequest(h http.Handler, method, target string, header http.Header) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func acceptLanguage(v string) http.Header {
	return http.Header{"Accept-Language": []string{v}}
}
