package i18n

import (
	"context"

	"github.com/gin-gonic/gin"
)

type pinnedLangKey struct{}

type translatorKey struct{}

type externalKeysKey struct{}

// WithLang pins the locale of a request; Prepare uses it instead of negotiating.
func WithLang(ctx context.Context, code string) context.Context {
	return context.WithValue(ctx, pinnedLangKey{}, code)
}

func pinnedLang(ctx context.Context) (string, bool) {
	code, ok := ctx.Value(pinnedLangKey{}).(string)
	return code, ok && code != ""
}

func withTranslator(ctx context.Context, tr *Translator) context.Context {
	return context.WithValue(ctx, translatorKey{}, tr)
}

// FromContext returns the translator bound by Prepare, or nil. A nil translator
// passes messages through unchanged.
func FromContext(ctx context.Context) *Translator {
	tr, _ := ctx.Value(translatorKey{}).(*Translator)
	return tr
}

func withExternalKeys(ctx context.Context, keys []string) context.Context {
	return context.WithValue(ctx, externalKeysKey{}, keys)
}

func externalKeys(ctx context.Context) []string {
	keys, _ := ctx.Value(externalKeysKey{}).([]string)
	return keys
}

// Lang returns the locale code of the request, or "" before Prepare ran.
func Lang(c *gin.Context) string {
	return FromContext(c.Request.Context()).Lang()
}

// T translates msgid with the request translator.
func T(c *gin.Context, msgid string, args ...any) string {
	return FromContext(c.Request.Context()).T(msgid, args...)
}

// N translates a plural message with the request translator.
func N(c *gin.Context, msgid, plural string, n int, args ...any) string {
	return FromContext(c.Request.Context()).N(msgid, plural, n, args...)
}

// TranslatorFrom returns the translator Prepare bound to the request, whatever
// keyword the plugin stores it under, or nil before Prepare ran.
func TranslatorFrom(c *gin.Context) *Translator {
	return FromContext(c.Request.Context())
}
