// Package metrics holds the prometheus collectors exposed on the monitoring port.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "insurance_chatbot"

var (
	// EventsTotal counts inbound messaging events by kind.
	EventsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "events_total",
		Help:      "Messaging events received from the webhook, by kind.",
	}, []string{"kind"})

	// SendResultsTotal counts send API outcomes by delivery status.
	SendResultsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "send_results_total",
		Help:      "Outbound send API results, by status.",
	}, []string{"status"})

	// ConversationsExpired counts per-sender conversations evicted after inactivity.
	ConversationsExpired = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "conversations_expired_total",
		Help:      "Conversations dropped after the inactivity TTL.",
	})

	// HandlerPanics counts events whose handling panicked and was recovered.
	HandlerPanics = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "handler_panics_total",
		Help:      "Event handlers that panicked and were recovered.",
	})
)
