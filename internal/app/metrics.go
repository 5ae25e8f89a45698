package app

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Unresolved reasons.
const (
	reasonNotFound = "not_found"
	reasonError    = "error"
)

// Metrics holds the application counters exposed on /-/metrics.
type Metrics struct {
	unresolved    *prometheus.CounterVec
	cacheLookups  *prometheus.CounterVec
	shareOutcomes *prometheus.CounterVec
}

// NewMetrics registers the application counters with reg.
// A nil reg creates unregistered counters, which is what tests want.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		unresolved: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "favorites_unresolved_total",
			Help: "Favorite ids that could not be turned back into quotes.",
		}, []string{"reason"}),
		cacheLookups: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "favorites_cache_lookups_total",
			Help: "Quote cache lookups made while resolving favorites.",
		}, []string{"result"}),
		shareOutcomes: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "quote_share_outcomes_total",
			Help: "Results of the share-or-copy action by tier.",
		}, []string{"outcome", "tier"}),
	}
}

func (m *Metrics) recordUnresolved(reason string) {
	if m == nil {
		return
	}
	m.unresolved.WithLabelValues(reason).Inc()
}

func (m *Metrics) recordCacheLookup(hit bool) {
	if m == nil {
		return
	}
	result := "miss"
	if hit {
		result = "hit"
	}
	m.cacheLookups.WithLabelValues(result).Inc()
}

func (m *Metrics) recordShare(outcome, tier string) {
	if m == nil {
		return
	}
	m.shareOutcomes.WithLabelValues(outcome, tier).Inc()
}
