package engine

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics are the collectors a check run updates. With a nil Registerer
// they are created but not registered.
type Metrics struct {
	Checks    *prometheus.CounterVec
	TreeNodes prometheus.Histogram
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Checks: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "symdiff",
			Name:      "checks_total",
			Help:      "Derivative checks by result (pass, fail, error).",
		}, []string{"result"}),
		TreeNodes: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "symdiff",
			Name:      "tree_nodes",
			Help:      "Node count of the trees checked.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 8),
		}),
	}
}

func (m *Metrics) observe(c Case, nodes int) {
	m.TreeNodes.Observe(float64(nodes))
	switch {
	case c.Error != "":
		m.Checks.WithLabelValues("error").Inc()
	case c.OK:
		m.Checks.WithLabelValues("pass").Inc()
	default:
		m.Checks.WithLabelValues("fail").Inc()
	}
}
