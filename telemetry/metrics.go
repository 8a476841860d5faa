package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/areanav/astar"
	"github.com/katalvlaran/areanav/pathfinder"
)

// DefaultNamespace prefixes every metric name.
const DefaultNamespace = "areanav"

// Metrics records pathfinder events.
type Metrics struct {
	searches   *prometheus.CounterVec
	expansions *prometheus.HistogramVec
	duration   *prometheus.HistogramVec
	reviews    prometheus.Counter
	reopened   prometheus.Counter
	replans    prometheus.Counter
}

var _ pathfinder.Observer = (*Metrics)(nil)

// New registers the collectors on reg under namespace (DefaultNamespace if
// empty). Registering twice on one registry panics.
func New(reg prometheus.Registerer, namespace string) *Metrics {
	if namespace == "" {
		namespace = DefaultNamespace
	}
	f := promauto.With(reg)

	return &Metrics{
		searches: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "searches_total",
			Help:      "A* searches by level and result",
		}, []string{"level", "result"}),
		expansions: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "search_expansions",
			Help:      "Nodes expanded per A* search",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 10),
		}, []string{"level"}),
		duration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "search_duration_seconds",
			Help:      "Wall-clock time per A* search",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 12),
		}, []string{"level"}),
		reviews: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "window_reviews_total",
			Help:      "Stale-belief reviews triggered by failed coarse plans",
		}),
		reopened: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "beliefs_reopened_total",
			Help:      "Belief entries reset to passable by reviews",
		}),
		replans: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "replans_total",
			Help:      "Replans after a blocked cell was observed",
		}),
	}
}

// SearchDone records one search.
func (m *Metrics) SearchDone(level pathfinder.Level, stats astar.Stats, found bool) {
	result := "found"
	if !found {
		result = "failed"
	}
	l := level.String()
	m.searches.WithLabelValues(l, result).Inc()
	m.expansions.WithLabelValues(l).Observe(float64(stats.NodesExpanded))
	m.duration.WithLabelValues(l).Observe(stats.Elapsed.Seconds())
}

// WindowReviewed records one review.
func (m *Metrics) WindowReviewed(_ int64, reopened int) {
	m.reviews.Inc()
	m.reopened.Add(float64(reopened))
}

// Replanned records one replan.
func (m *Metrics) Replanned() { m.replans.Inc() }
