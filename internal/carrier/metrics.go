package carrier

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	carrierRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "shipping_service",
		Subsystem: "carrier",
		Name:      "requests_total",
		Help:      "Total number of requests sent to the carrier API.",
	}, []string{"method", "endpoint", "status"})

	carrierRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "shipping_service",
		Subsystem: "carrier",
		Name:      "request_duration_seconds",
		Help:      "Carrier API latencies in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "endpoint"})

	carrierErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "shipping_service",
		Subsystem: "carrier",
		Name:      "errors_total",
		Help:      "Total number of failed carrier calls by error kind.",
	}, []string{"endpoint", "kind"})

	quoteMaxDimension = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "shipping_service",
		Subsystem: "carrier",
		Name:      "quote_max_dimension_cm",
		Help:      "Largest parcel dimension per quote request.",
		Buckets:   []float64{10, 20, 50, 100, 105, 150, 200},
	})
)
