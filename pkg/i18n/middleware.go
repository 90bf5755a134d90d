package i18n

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// Middleware wraps a gin engine and moves a leading locale segment of the path
// into the request language before the engine routes the request.
type Middleware struct {
	app       http.Handler
	plugin    *Plugin
	redirect  bool
	negotiate bool
	external  []string
	subApps   []gin.IRoutes
}

// MiddlewareOption configures a Middleware.
type MiddlewareOption func(*Middleware)

// WithExplicitRedirect redirects requests without a locale prefix to the same
// path under the default locale, so "/" becomes "/en/".
func WithExplicitRedirect() MiddlewareOption {
	return func(m *Middleware) {
		m.redirect = true
	}
}

// WithNegotiatedFallback leaves requests without a locale prefix unpinned, so
// the language comes from Accept-Language. Redirects then target the negotiated locale.
func WithNegotiatedFallback() MiddlewareOption {
	return func(m *Middleware) {
		m.negotiate = true
	}
}

// WithExternalTranslators also stores the request translator under each gin key.
// Useful for libraries that look their translator up by a well-known key.
func WithExternalTranslators(keys ...string) MiddlewareOption {
	return func(m *Middleware) {
		m.external = append(m.external, keys...)
	}
}

// WithSubApps installs the plugin on engines mounted below the wrapped one.
func WithSubApps(apps ...gin.IRoutes) MiddlewareOption {
	return func(m *Middleware) {
		m.subApps = append(m.subApps, apps...)
	}
}

// NewMiddleware installs plugin on app and returns the wrapping handler.
// gin only applies middleware to routes registered afterwards, so call it
// before adding routes to app or to any of the sub apps.
func NewMiddleware(app *gin.Engine, plugin *Plugin, opts ...MiddlewareOption) *Middleware {
	m := &Middleware{app: app, plugin: plugin}
	for _, opt := range opts {
		opt(m)
	}
	plugin.Install(app)
	plugin.Install(m.subApps...)
	return m
}

func (m *Middleware) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if len(m.external) > 0 {
		ctx = withExternalKeys(ctx, m.external)
	}

	segment := firstSegment(r.URL.Path)
	switch {
	case segment != "" && m.acceptsPrefix(segment):
		r = stripSegment(r.WithContext(WithLang(ctx, segment)), segment)
	case m.redirect:
		target := "/" + m.fallback(r) + r.URL.Path
		if r.URL.RawQuery != "" {
			target += "?" + r.URL.RawQuery
		}
		http.Redirect(w, r, target, http.StatusFound)
		return
	case m.negotiate:
		r = r.WithContext(ctx)
	default:
		r = r.WithContext(WithLang(ctx, m.plugin.Default()))
	}

	m.app.ServeHTTP(w, r)
}

// acceptsPrefix treats the default as a valid prefix even without a locale
// directory, so a redirect to it cannot loop.
func (m *Middleware) acceptsPrefix(segment string) bool {
	return segment == m.plugin.Default() || m.plugin.Supports(segment)
}

func (m *Middleware) fallback(r *http.Request) string {
	if m.negotiate {
		return m.plugin.detect(r)
	}
	return m.plugin.Default()
}

func firstSegment(path string) string {
	segment, _, _ := strings.Cut(strings.TrimPrefix(path, "/"), "/")
	return segment
}

// stripSegment returns a shallow copy of r with "/<segment>" removed from the
// front of the path. r and its URL are not modified.
func stripSegment(r *http.Request, segment string) *http.Request {
	r = r.WithContext(r.Context())
	prefix := "/" + segment
	u := *r.URL
	u.Path = strings.TrimPrefix(u.Path, prefix)
	if u.Path == "" {
		u.Path = "/"
	}
	if u.RawPath != "" {
		u.RawPath = strings.TrimPrefix(u.RawPath, prefix)
		if u.RawPath == "" {
			u.RawPath = "/"
		}
	}
	r.URL = &u
	return r
}
