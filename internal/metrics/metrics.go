package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pulsefit_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "pulsefit_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	BookingsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pulsefit_bookings_total",
			Help: "Total number of booking attempts",
		},
		[]string{"status"},
	)

	TrainersCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "pulsefit_trainers_created_total",
			Help: "Total number of trainers created",
		},
	)

	ClassesCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "pulsefit_classes_created_total",
			Help: "Total number of classes created",
		},
	)

	UserSyncsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "pulsefit_user_syncs_total",
			Help: "Total number of identity sync calls",
		},
	)

	ContactSubmissionsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "pulsefit_contact_submissions_total",
			Help: "Total number of contact form submissions",
		},
	)

	ContactRelayTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pulsefit_contact_relay_total",
			Help: "Total number of contact submissions relayed to the staff inbox",
		},
		[]string{"status"},
	)

	ContactQueueLength = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "pulsefit_contact_queue_length",
			Help: "Current length of the contact relay queue",
		},
	)
)

func RecordHTTPRequest(method, path, status string, duration float64) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(duration)
}

func RecordBooking(status string) {
	BookingsTotal.WithLabelValues(status).Inc()
}

func RecordTrainerCreated() {
	TrainersCreatedTotal.Inc()
}

func RecordClassCreated() {
	ClassesCreatedTotal.Inc()
}

func RecordUserSync() {
	UserSyncsTotal.Inc()
}

func RecordContactSubmission() {
	ContactSubmissionsTotal.Inc()
}

func RecordRelay(status string) {
	ContactRelayTotal.WithLabelValues(status).Inc()
}
