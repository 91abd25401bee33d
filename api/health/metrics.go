package health

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	HttpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "api",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	HttpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "api",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	OrdersCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "foodmenu",
			Subsystem: "orders",
			Name:      "created_total",
			Help:      "Orders accepted by CreateOrder",
		},
	)

	OrderStatusChanges = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "foodmenu",
			Subsystem: "orders",
			Name:      "status_changes_total",
			Help:      "Order status updates by target status",
		},
		[]string{"status"},
	)
)

var collectors = []prometheus.Collector{HttpDuration, HttpRequests, OrdersCreated, OrderStatusChanges}

// Register adds the API collectors to reg, ignoring collectors that are already registered.
func Register(reg prometheus.Registerer) error {
	for _, c := range collectors {
		if err := reg.Register(c); err != nil {
			var already prometheus.AlreadyRegisteredError
			if errors.As(err, &already) {
				continue
			}
			return err
		}
	}
	return nil
}
