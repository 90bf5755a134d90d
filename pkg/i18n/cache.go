package i18n

import (
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// catalogCache memoizes catalog loads per locale code. A failed load is stored
// as a nil catalog and is never retried.
type catalogCache struct {
	mu      sync.RWMutex
	entries map[string]Catalog
	group   singleflight.Group

	load    func(code string) (Catalog, error)
	logger  *zap.Logger
	metrics *metrics
}

func newCatalogCache(load func(code string) (Catalog, error), logger *zap.Logger, m *metrics) *catalogCache {
	return &catalogCache{
		entries: make(map[string]Catalog),
		load:    load,
		logger:  logger,
		metrics: m,
	}
}

func (c *catalogCache) lookup(code string) (Catalog, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	cat, ok := c.entries[code]
	return cat, ok
}

// get returns the catalog for code, loading it on first use. The result is nil
// when no catalog could be loaded for code.
func (c *catalogCache) get(code string) Catalog {
	if cat, ok := c.lookup(code); ok {
		c.metrics.cacheHit(code)
		return cat
	}

	v, _, _ := c.group.Do(code, func() (any, error) {
		if cat, ok := c.lookup(code); ok {
			return cat, nil
		}

		cat, err := c.load(code)
		if err != nil {
			c.logger.Warn("catalog unavailable, messages pass through untranslated",
				zap.String("locale", code),
				zap.Error(err))
			c.metrics.catalogLoad(code, loadResultAbsent)
			cat = nil
		} else {
			c.logger.Info("catalog loaded", zap.String("locale", code))
			c.metrics.catalogLoad(code, loadResultLoaded)
		}

		c.mu.Lock()
		c.entries[code] = cat
		c.mu.Unlock()
		return cat, nil
	})

	cat, _ := v.(Catalog)
	return cat
}

// state reports whether code is cached and, if so, whether a catalog was loaded.
func (c *catalogCache) state(code string) (cached, loaded bool) {
	cat, ok := c.lookup(code)
	return ok, cat != nil
}
