package i18n

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	loadResultLoaded = "loaded"
	loadResultAbsent = "absent"

	sourcePinned  = "pinned"
	sourceFixed   = "fixed"
	sourceHeader  = "header"
	sourceDefault = "default"
)

type metrics struct {
	cacheHits   *prometheus.CounterVec
	loads       *prometheus.CounterVec
	resolutions *prometheus.CounterVec
}

// newMetrics registers the plugin collectors on reg. A nil registerer disables metrics.
// Collectors already registered by another plugin instance are shared.
func newMetrics(reg prometheus.Registerer) *metrics {
	if reg == nil {
		return nil
	}
	return &metrics{
		cacheHits: registerCounterVec(reg, prometheus.CounterOpts{
			Namespace: "i18n",
			Name:      "catalog_cache_hits_total",
			Help:      "Catalog lookups answered from the cache.",
		}, "locale"),
		loads: registerCounterVec(reg, prometheus.CounterOpts{
			Namespace: "i18n",
			Name:      "catalog_loads_total",
			Help:      "Catalog loads by outcome.",
		}, "locale", "result"),
		resolutions: registerCounterVec(reg, prometheus.CounterOpts{
			Namespace: "i18n",
			Name:      "locale_resolutions_total",
			Help:      "Request locale resolutions by source.",
		}, "source"),
	}
}

func registerCounterVec(reg prometheus.Registerer, opts prometheus.CounterOpts, labels ...string) *prometheus.CounterVec {
	cv := prometheus.NewCounterVec(opts, labels)
	if err := reg.Register(cv); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing
			}
		}
		panic(err)
	}
	return cv
}

func (m *metrics) cacheHit(locale string) {
	if m == nil {
		return
	}
	m.cacheHits.WithLabelValues(locale).Inc()
}

func (m *metrics) catalogLoad(locale, result string) {
	if m == nil {
		return
	}
	m.loads.WithLabelValues(locale, result).Inc()
}

func (m *metrics) resolved(source string) {
	if m == nil {
		return
	}
	m.resolutions.WithLabelValues(source).Inc()
}
