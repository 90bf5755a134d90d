package i18n

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// Plugin resolves the locale of each request and binds a Translator for it.
type Plugin struct {
	domain   string
	dir      string
	def      string
	langCode string
	keyword  string

	mu      sync.RWMutex
	locales []string

	cache      *catalogCache
	loader     CatalogLoader
	recorder   MissingRecorder
	logger     *zap.Logger
	registerer prometheus.Registerer
	metrics    *metrics
}

// New creates a plugin for the catalogs of domain stored under localeDir.
// Every subdirectory of localeDir is a supported locale. New fails when
// localeDir does not exist or is not a directory.
func New(domain, localeDir string, opts ...Option) (*Plugin, error) {
	if domain == "" {
		return nil, ErrEmptyDomain
	}
	if localeDir == "" {
		return nil, ErrLocaleDirNotFound
	}

	p := &Plugin{
		domain:  domain,
		dir:     localeDir,
		def:     DefaultLanguage,
		keyword: DefaultKeyword,
		loader:  LoadCatalog,
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(p)
	}

	locales, err := listLocales(localeDir)
	if err != nil {
		return nil, err
	}
	p.locales = locales
	p.metrics = newMetrics(p.registerer)
	p.cache = newCatalogCache(func(code string) (Catalog, error) {
		return p.loader(p.domain, p.dir, code)
	}, p.logger, p.metrics)

	p.logger.Info("i18n plugin ready",
		zap.String("domain", domain),
		zap.String("locale_dir", localeDir),
		zap.Strings("locales", locales),
		zap.String("default", p.def))
	return p, nil
}

func listLocales(dir string) ([]string, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLocaleDirNotFound, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrLocaleDirNotFound, dir)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLocaleDirNotFound, err)
	}
	locales := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			locales = append(locales, entry.Name())
			continue
		}
		// follow symlinked locale directories
		if entry.Type()&os.ModeSymlink != 0 {
			if fi, err := os.Stat(filepath.Join(dir, entry.Name())); err == nil && fi.IsDir() {
				locales = append(locales, entry.Name())
			}
		}
	}
	return locales, nil
}

func (p *Plugin) Domain() string    { return p.domain }
func (p *Plugin) LocaleDir() string { return p.dir }
func (p *Plugin) Default() string   { return p.def }
func (p *Plugin) Keyword() string   { return p.keyword }

// Locales returns the supported locale codes in registration order.
func (p *Plugin) Locales() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return slices.Clone(p.locales)
}

// Supports reports whether code names a locale directory.
func (p *Plugin) Supports(code string) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return slices.Contains(p.locales, code)
}

// Rescan re-reads the locale directory. Cached catalogs are kept; on error the
// previous locale list stays in place.
func (p *Plugin) Rescan() error {
	locales, err := listLocales(p.dir)
	if err != nil {
		return err
	}
	p.mu.Lock()
	changed := !slices.Equal(p.locales, locales)
	p.locales = locales
	p.mu.Unlock()

	if changed {
		p.logger.Info("supported locales changed", zap.Strings("locales", locales))
	}
	return nil
}

// Negotiator returns a negotiator over the current locale list.
func (p *Plugin) Negotiator() Negotiator {
	return Negotiator{Locales: p.Locales(), Default: p.def}
}

// Install registers Prepare on each of the given engines or route groups.
func (p *Plugin) Install(routes ...gin.IRoutes) {
	for _, r := range routes {
		r.Use(p.Prepare)
	}
}

// Prepare is the before-request hook. It resolves the request locale, which is
// the code pinned by the middleware, else the fixed plugin code, else the
// Accept-Language negotiation result, and binds the matching translator.
func (p *Plugin) Prepare(c *gin.Context) {
	p.bind(c, p.resolve(c))
	c.Next()
}

// SetLang rebinds the request translator to code. An empty code re-runs
// Accept-Language negotiation.
func (p *Plugin) SetLang(c *gin.Context, code string) {
	if code == "" {
		code = p.detect(c.Request)
	}
	p.bind(c, code)
}

// Translator returns a translator for code outside of a request, for example
// in background jobs.
func (p *Plugin) Translator(ctx context.Context, code string) *Translator {
	return &Translator{
		ctx:      ctx,
		locale:   code,
		domain:   p.domain,
		catalog:  p.cache.get(code),
		recorder: p.recorder,
	}
}

// Cached reports whether code went through the loader and whether a catalog
// was found for it.
func (p *Plugin) Cached(code string) (cached, loaded bool) {
	return p.cache.state(code)
}

func (p *Plugin) resolve(c *gin.Context) string {
	if code, ok := pinnedLang(c.Request.Context()); ok {
		p.metrics.resolved(sourcePinned)
		return code
	}
	if p.langCode != "" {
		p.metrics.resolved(sourceFixed)
		return p.langCode
	}
	return p.detect(c.Request)
}

func (p *Plugin) detect(r *http.Request) string {
	header := r.Header.Get("Accept-Language")
	code, matched, err := p.Negotiator().match(header)
	if err != nil {
		p.logger.Debug("ignoring malformed Accept-Language",
			zap.String("header", header),
			zap.Error(err))
	}
	if matched {
		p.metrics.resolved(sourceHeader)
	} else {
		p.metrics.resolved(sourceDefault)
	}
	return code
}

func (p *Plugin) bind(c *gin.Context, code string) {
	ctx := c.Request.Context()
	tr := p.Translator(ctx, code)

	c.Set(p.keyword, tr)
	for _, key := range externalKeys(ctx) {
		c.Set(key, tr)
	}
	c.Request = c.Request.WithContext(withTranslator(ctx, tr))
	c.Header("Content-Language", strings.ReplaceAll(code, "_", "-"))
}
