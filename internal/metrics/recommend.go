package metrics

import "github.com/prometheus/client_golang/prometheus"

// Recommendation Prometheus metrics.
var (
	RecommendationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "roadsafe",
			Name:      "recommendations_total",
			Help:      "Total number of recommendation requests",
		},
		[]string{"prompted"}, // "yes" when a free-text prompt was supplied
	)

	RecommendationRankedRecords = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "roadsafe",
			Name:      "recommendation_ranked_records",
			Help:      "Number of records scored per recommendation request",
			Buckets:   []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000},
		},
	)
)

var recMetricsRegistered bool

// RegisterRecommendMetrics registers Prometheus recommendation metrics. Must be called once from main.
func RegisterRecommendMetrics() {
	if recMetricsRegistered {
		return
	}
	prometheus.MustRegister(RecommendationsTotal)
	prometheus.MustRegister(RecommendationRankedRecords)
	recMetricsRegistered = true
}
