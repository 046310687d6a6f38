package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Lookup Metrics
var (
	LookupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameLookupsTotal,
			Help: HelpTextLookupsTotal,
		},
		[]string{LabelResult},
	)

	LookupDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameLookupDuration,
			Help:    HelpTextLookupDuration,
			Buckets: LookupLatencyBuckets,
		},
	)

	CustomItemsActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameCustomItemsActive,
			Help: HelpTextCustomItemsActive,
		},
	)

	ArgParsersActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameArgParsersActive,
			Help: HelpTextArgParsersActive,
		},
	)
)

// Placeholder Metrics
var (
	PlaceholderCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNamePlaceholderCacheHits,
			Help: HelpTextPlaceholderCacheHits,
		},
	)

	PlaceholderCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNamePlaceholderCacheMisses,
			Help: HelpTextPlaceholderCacheMisses,
		},
	)
)

// RecordLookup tracks a single parse outcome.
func RecordLookup(resolved bool, seconds float64) {
	result := ResultEmpty
	if resolved {
		result = ResultResolved
	}
	LookupsTotal.WithLabelValues(result).Inc()
	LookupDuration.Observe(seconds)
}
