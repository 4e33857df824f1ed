package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	TotalRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "beanmeet_http_requests_total",
			Help: "Total number of HTTP requests served",
		},
		[]string{"method", "path", "status"},
	)

	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "beanmeet_http_request_duration_seconds",
			Help:    "Histogram of HTTP response durations",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	RemindersScheduled = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "beanmeet_reminders_scheduled_total",
			Help: "Reminder rows created by the scheduler",
		},
	)

	RemindersDispatched = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "beanmeet_reminders_dispatched_total",
			Help: "Due reminders handed off for delivery",
		},
	)

	NotificationsDelivered = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "beanmeet_notifications_delivered_total",
			Help: "Notifications pushed out, by channel",
		},
		[]string{"channel"},
	)

	RateLimited = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "beanmeet_rate_limited_total",
			Help: "Requests rejected by the rate limiter",
		},
	)
)

func Register() {
	prometheus.MustRegister(TotalRequests, RequestDuration, RemindersScheduled,
		RemindersDispatched, NotificationsDelivered, RateLimited)
}
