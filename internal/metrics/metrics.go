package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gymbook_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "gymbook_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	ClientsCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gymbook_clients_created_total",
			Help: "Total number of clients enrolled",
		},
	)

	RenewalsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gymbook_renewals_total",
			Help: "Total number of subscription renewals",
		},
	)

	PaymentsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gymbook_payments_total",
			Help: "Total number of payment ledger operations",
		},
		[]string{"operation"},
	)

	OverpaymentsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gymbook_overpayments_total",
			Help: "Total number of payments that pushed a balance negative",
		},
	)

	GymSwitchesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gymbook_gym_switches_total",
			Help: "Total number of active-gym switches",
		},
	)

	EmailsSentTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gymbook_emails_sent_total",
			Help: "Total number of emails sent",
		},
		[]string{"type", "status"},
	)

	EmailQueueLength = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "gymbook_email_queue_length",
			Help: "Current length of email queue",
		},
	)
)

func RecordHTTPRequest(method, path, status string, duration float64) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(duration)
}

func RecordClientCreated() {
	ClientsCreatedTotal.Inc()
}

func RecordRenewal() {
	RenewalsTotal.Inc()
}

func RecordPayment(operation string, overpayment bool) {
	PaymentsTotal.WithLabelValues(operation).Inc()
	if overpayment {
		OverpaymentsTotal.Inc()
	}
}

func RecordGymSwitch() {
	GymSwitchesTotal.Inc()
}

func RecordEmail(emailType, status string) {
	EmailsSentTotal.WithLabelValues(emailType, status).Inc()
}
