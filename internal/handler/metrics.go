package handler

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	lodgementsProcessed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "shipping_service",
			Subsystem: "kafka_consumer",
			Name:      "lodgements_processed_total",
			Help:      "Total number of successfully lodged shipment requests",
		},
	)

	lodgementsFailed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "shipping_service",
			Subsystem: "kafka_consumer",
			Name:      "lodgements_failed_total",
			Help:      "Total number of failed lodgement attempts",
		},
	)

	lodgementsDLQ = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "shipping_service",
			Subsystem: "kafka_consumer",
			Name:      "lodgements_dlq_total",
			Help:      "Total number of lodgement requests written to DLQ",
		},
	)

	commitErrors = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "shipping_service",
			Subsystem: "kafka_consumer",
			Name:      "commit_errors_total",
			Help:      "Total number of Kafka commit errors",
		},
	)

	lodgementDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "shipping_service",
			Subsystem: "kafka_consumer",
			Name:      "lodgement_duration_seconds",
			Help:      "Histogram of lodgement processing durations in seconds",
			Buckets:   prometheus.DefBuckets,
		},
	)

	lodgementsInProgress = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "shipping_service",
			Subsystem: "kafka_consumer",
			Name:      "lodgements_in_progress",
			Help:      "Number of lodgement requests currently being processed",
		},
	)
)

var (
	operationTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "shipping_service",
			Subsystem: "http",
			Name:      "operation_requests_total",
			Help:      "Total number of shipping operations by outcome",
		},
		[]string{"operation", "status"},
	)

	operationDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "shipping_service",
			Subsystem: "http",
			Name:      "operation_duration_seconds",
			Help:      "Histogram of shipping operation durations",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"operation"},
	)
)

func RegisterMetrics() {
	prometheus.MustRegister(
		lodgementsProcessed,
		lodgementsFailed,
		lodgementsDLQ,
		commitErrors,
		lodgementDuration,
		lodgementsInProgress,

		operationTotal,
		operationDuration,
	)
}
