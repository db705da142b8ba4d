package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all prometheus metrics
type Metrics struct {
	LookupsPerformed prometheus.Counter
	LookupDuration   prometheus.Histogram
	CacheHits        prometheus.Counter
	CacheMisses      prometheus.Counter
	ErrorsCount      *prometheus.CounterVec
}

// NewMetrics creates new prometheus metrics
func NewMetrics(namespace string) *Metrics {
	return &Metrics{
		LookupsPerformed: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "lookups_performed_total",
			Help:      "The total number of night-time resolutions performed",
		}),
		LookupDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "lookup_duration_seconds",
			Help:      "Time taken to resolve night times for one airport and date",
			Buckets:   prometheus.DefBuckets,
		}),
		CacheHits: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_hits_total",
			Help:      "The total number of responses served from the cache",
		}),
		CacheMisses: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_misses_total",
			Help:      "The total number of cache misses that went to the network",
		}),
		ErrorsCount: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "errors_total",
			Help:      "The total number of errors",
		}, []string{"kind"}),
	}
}
