package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all prometheus metrics
type Metrics struct {
	ShipmentsCreated prometheus.Counter
	StatusChanges    *prometheus.CounterVec
	ShipmentsDeleted prometheus.Counter
	StaleShipments   prometheus.Gauge
	RequestDuration  *prometheus.HistogramVec
	ErrorsCount      *prometheus.CounterVec
}

// NewMetrics creates new prometheus metrics
func NewMetrics(namespace string) *Metrics {
	return &Metrics{
		ShipmentsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "shipments_created_total",
			Help:      "The total number of shipments created",
		}),
		StatusChanges: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "status_changes_total",
			Help:      "The total number of status transitions recorded",
		}, []string{"status"}),
		ShipmentsDeleted: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "shipments_deleted_total",
			Help:      "The total number of shipments deleted",
		}),
		StaleShipments: promauto.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "stale_shipments",
			Help:      "Shipments stuck in a non-terminal status past the inactivity threshold",
		}),
		RequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Time taken to serve HTTP requests",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "path", "status"}),
		ErrorsCount: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "errors_total",
			Help:      "The total number of errors",
		}, []string{"operation"}),
	}
}
