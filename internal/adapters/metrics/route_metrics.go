package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/sectorwars/traderoutes/internal/domain/trading"
)

const (
	namespace = "traderoutes"
	subsystem = "engine"
)

// RouteMetrics collects engine activity counters.
// Implements services.AdvisorMetrics.
type RouteMetrics struct {
	scansTotal         prometheus.Counter
	opportunitiesFound prometheus.Counter
	routesConstructed  *prometheus.CounterVec
	rebuildDuration    prometheus.Histogram
}

// NewRouteMetrics creates the collector and registers it with the given
// registry
func NewRouteMetrics(registry *prometheus.Registry) *RouteMetrics {
	m := &RouteMetrics{
		scansTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "opportunity_scans_total",
			Help:      "Total number of opportunity scans performed",
		}),
		opportunitiesFound: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "opportunities_found_total",
			Help:      "Total number of trading opportunities discovered",
		}),
		routesConstructed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "routes_constructed_total",
			Help:      "Total number of routes constructed, by objective",
		}, []string{"objective"}),
		rebuildDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "snapshot_rebuild_seconds",
			Help:      "Duration of galaxy graph snapshot rebuilds",
			Buckets:   prometheus.ExponentialBuckets(0.001, 4, 8),
		}),
	}

	registry.MustRegister(m.scansTotal, m.opportunitiesFound, m.routesConstructed, m.rebuildDuration)
	return m
}

// RecordScan counts one scan and its discovered opportunities
func (m *RouteMetrics) RecordScan(opportunities int) {
	m.scansTotal.Inc()
	m.opportunitiesFound.Add(float64(opportunities))
}

// RecordRoute counts one constructed route for an objective
func (m *RouteMetrics) RecordRoute(objective trading.Objective) {
	m.routesConstructed.WithLabelValues(string(objective)).Inc()
}

// ObserveSnapshotRebuild records one graph snapshot rebuild duration
func (m *RouteMetrics) ObserveSnapshotRebuild(seconds float64) {
	m.rebuildDuration.Observe(seconds)
}
