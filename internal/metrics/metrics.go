package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests by route and status",
		},
		[]string{"method", "route", "status"},
	)
	httpDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Latency of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)
	llmRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "llm_requests_total",
			Help: "Total number of chat completion calls by operation and outcome",
		},
		[]string{"operation", "outcome"},
	)
	llmDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "llm_request_duration_seconds",
			Help:    "Latency of chat completion calls in seconds",
			Buckets: []float64{0.5, 1, 2.5, 5, 10, 20, 40, 80, 160},
		},
		[]string{"operation"},
	)
	transcriptions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "transcriptions_total",
			Help: "Total number of audio transcriptions by outcome",
		},
		[]string{"outcome"},
	)
	ticketsCreated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tickets_created_total",
			Help: "Total number of tickets created by source",
		},
		[]string{"source"},
	)
)

const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"

	SourceAPI     = "api"
	SourceMeeting = "meeting"
)

func Outcome(err error) string {
	if err != nil {
		return OutcomeError
	}
	return OutcomeSuccess
}

func ObserveHTTP(method, route, status string, elapsed time.Duration) {
	httpRequests.WithLabelValues(method, route, status).Inc()
	httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

func ObserveLLM(operation string, elapsed time.Duration, err error) {
	llmRequests.WithLabelValues(operation, Outcome(err)).Inc()
	llmDuration.WithLabelValues(operation).Observe(elapsed.Seconds())
}

func ObserveTranscription(err error) {
	transcriptions.WithLabelValues(Outcome(err)).Inc()
}

func TicketCreated(source string) {
	ticketsCreated.WithLabelValues(source).Inc()
}
