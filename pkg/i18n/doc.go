// Package i18n adds per-request localization to gin applications.
//
// A Plugin is created from a gettext-style domain and a locale directory whose
// subdirectories name the supported locales:
//
//	locale/
//	    de/LC_MESSAGES/messages.po
//	    fr/messages.toml
//
// Installed on an engine, the plugin resolves the language of every request
// and binds a Translator to it. The language comes from, in order, a locale
// pinned by the Middleware (the leading path segment, as in /de/about), a fixed
// code given with WithLangCode, the Accept-Language header, and finally the
// default locale.
//
// # Negotiation
//
// Accept-Language entries are tried in the order the client sent them, and
// supported locales in directory order. A locale matches when the client tag,
// with "-" replaced by "_" and lower-cased, starts with the locale code. The
// first match wins; quality values are parsed but do not reorder entries.
//
// # Catalogs
//
// Catalogs load lazily, once per locale code, from gettext .po/.mo files
// (gotext) or go-i18n message files in TOML, JSON or YAML. A locale whose
// catalog cannot be loaded is remembered as absent and its translator returns
// message ids unchanged.
//
// # Usage
//
//	plugin, err := i18n.New("messages", "./locale", i18n.WithDefault("en"))
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	r := gin.New()
//	// install before registering routes: /de/about is routed as /about
//	h := i18n.NewMiddleware(r, plugin)
//	r.GET("/about", func(c *gin.Context) {
//		c.String(http.StatusOK, i18n.T(c, "About us"))
//	})
//
//	http.ListenAndServe(":8080", h)
package i18n
