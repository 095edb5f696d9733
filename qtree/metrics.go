package qtree

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	queryTypeLabel = "query_type"

	queryTypeContainment   = "containment"
	queryTypeFrustum       = "frustum"
	queryTypeLineIntersect = "line_intersect"
)

var (
	quadtreeNodeCount = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "quadtree_node_count",
		Help: "The number of allocated quadtree nodes.",
	})

	quadtreeInitializeCountTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "quadtree_initialize_count_total",
		Help: "The total number of quadtree initializations.",
	})

	quadtreeQueryCountTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "quadtree_query_count_total",
		Help: "The total number of quadtree queries.",
	}, []string{queryTypeLabel})
)

func instrumentInitialize(nodeCount int) {
	quadtreeNodeCount.Set((float64)(nodeCount))
	quadtreeInitializeCountTotal.Inc()
}

func instrumentReset() {
	quadtreeNodeCount.Set(0)
}

func instrumentQuery(queryType string) {
	quadtreeQueryCountTotal.
		With(prometheus.Labels{queryTypeLabel: queryType}).
		Inc()
}
