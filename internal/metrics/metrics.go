// Package metrics holds the process-wide Prometheus collectors.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// friendship actions
const (
	ActionRequest = "request"
	ActionAccept  = "accept"
	ActionDecline = "decline"
	ActionRemove  = "remove"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ecochat_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "ecochat_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	friendshipTransitionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ecochat_friendship_transitions_total",
			Help: "Successful friendship state changes by action",
		},
		[]string{"action"},
	)

	taskCompletionsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "ecochat_task_completions_total",
			Help: "Total number of tasks marked complete",
		},
	)

	taskUncompletionsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "ecochat_task_uncompletions_total",
			Help: "Total number of task completions reverted",
		},
	)

	registrationsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "ecochat_registrations_total",
			Help: "Total number of registered accounts",
		},
	)

	usersRegistered = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "ecochat_users_registered",
			Help: "Number of user accounts, refreshed periodically",
		},
	)
)

func IncFriendship(action string) {
	friendshipTransitionsTotal.WithLabelValues(action).Inc()
}

func IncTaskCompleted() {
	taskCompletionsTotal.Inc()
}

func IncTaskUncompleted() {
	taskUncompletionsTotal.Inc()
}

func IncRegistration() {
	registrationsTotal.Inc()
}

func SetUsersRegistered(n int64) {
	usersRegistered.Set(float64(n))
}
