package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	EventsConsumed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "events_consumed_total",
			Help: "Total number of inbound events by outcome",
		},
		[]string{"event_type", "status"}, // status: handled, dropped
	)

	NotificationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notifications_total",
			Help: "Total number of per-recipient channel deliveries by outcome",
		},
		[]string{"channel", "status"}, // status: sent, skipped, failed
	)

	DispatchRecipients = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "dispatch_notifications_sent",
			Help:    "Notifications sent per dispatch",
			Buckets: prometheus.ExponentialBuckets(1, 2, 10), // 1 to ~512
		},
		[]string{"event_type"},
	)
)

// IncrementEventConsumed counts one inbound event.
func IncrementEventConsumed(eventType, status string) {
	EventsConsumed.WithLabelValues(eventType, status).Inc()
}

// IncrementNotification counts one per-recipient channel outcome.
func IncrementNotification(channel, status string) {
	NotificationsTotal.WithLabelValues(channel, status).Inc()
}

// RecordDispatch records how many notifications one dispatch produced.
func RecordDispatch(eventType string, sent int) {
	DispatchRecipients.WithLabelValues(eventType).Observe(float64(sent))
}
