package handlers

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	recommendationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "rental",
		Subsystem: "recommender",
		Name:      "duration_seconds",
		Help:      "Time spent loading the snapshot and ranking properties.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"strategy"})

	recommendationFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "rental",
		Subsystem: "recommender",
		Name:      "failures_total",
		Help:      "Recommendation requests that ended in an error, by stage.",
	}, []string{"stage"})
)
