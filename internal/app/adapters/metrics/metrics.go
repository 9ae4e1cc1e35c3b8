package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// CommandsTotal - processed commands per verb.
	CommandsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bot_commands_total",
			Help: "Total number of processed commands per verb",
		},
		[]string{"verb"},
	)

	// CommandProcessingTime - command handling latency.
	CommandProcessingTime = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "bot_command_processing_seconds",
			Help:    "Time to parse, authorize and handle a command",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 15),
		},
	)

	// AuthDenied - commands refused by the authorization gate.
	AuthDenied = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bot_auth_denied_total",
			Help: "Total number of commands denied per gate decision",
		},
		[]string{"decision"},
	)

	// PollCycles - collector ticks completed.
	PollCycles = promauto.NewCounter(prometheus.CounterOpts{
		Name: "bot_poll_cycles_total",
		Help: "Total number of completed collect poll cycles",
	})

	// PollFailures - collector ticks that could not reach the backend.
	PollFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "bot_poll_failures_total",
		Help: "Total number of failed collect poll cycles",
	})

	// NotificationsSent - ready-server DMs delivered.
	NotificationsSent = promauto.NewCounter(prometheus.CounterOpts{
		Name: "bot_notifications_sent_total",
		Help: "Total number of ready-server notifications delivered",
	})

	// NotificationFailures - DMs that could not be delivered.
	NotificationFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "bot_notification_failures_total",
		Help: "Total number of ready-server notifications that failed to send",
	})
)
