package i18n

import (
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// DefaultLanguage is used when no default is configured.
const DefaultLanguage = "en"

// DefaultKeyword is the gin context key the request translator is stored under.
const DefaultKeyword = "i18n"

// Option configures a Plugin.
type Option func(*Plugin)

// WithDefault sets the locale used when nothing else matches.
func WithDefault(code string) Option {
	return func(p *Plugin) {
		if code == "" {
			return
		}
		p.def = code
	}
}

// WithLangCode fixes the locale for every request that is not pinned by the middleware.
// Header negotiation is skipped while a fixed code is set.
func WithLangCode(code string) Option {
	return func(p *Plugin) {
		p.langCode = code
	}
}

// WithKeyword sets the gin context key of the request translator.
func WithKeyword(keyword string) Option {
	return func(p *Plugin) {
		if keyword == "" {
			return
		}
		p.keyword = keyword
	}
}

// WithLogger sets the logger. The plugin logs nothing by default.
func WithLogger(logger *zap.Logger) Option {
	return func(p *Plugin) {
		if logger == nil {
			return
		}
		p.logger = logger
	}
}

// WithRegisterer enables Prometheus metrics on reg.
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(p *Plugin) {
		p.registerer = reg
	}
}

// WithMissingRecorder reports message ids missing from loaded catalogs to rec.
func WithMissingRecorder(rec MissingRecorder) Option {
	return func(p *Plugin) {
		p.recorder = rec
	}
}

// WithCatalogLoader replaces LoadCatalog.
func WithCatalogLoader(loader CatalogLoader) Option {
	return func(p *Plugin) {
		if loader == nil {
			return
		}
		p.loader = loader
	}
}
