package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Outcome labels.
const (
	OutcomeOK       = "ok"
	OutcomeNotFound = "not_found"
	OutcomeInvalid  = "invalid"
	OutcomeError    = "error"
)

var (
	ClientRequests = Factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: FQName("client_requests_total"),
			Help: "Requests sent to the NBP API, by outcome",
		},
		[]string{"outcome"},
	)
	ClientRequestDuration = Factory.NewHistogram(
		prometheus.HistogramOpts{
			Name:    FQName("client_request_duration_seconds"),
			Help:    "Latency of NBP API requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)
	OrdersTotal = Factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: FQName("orders_total"),
			Help: "Executed orders, by kind and outcome",
		},
		[]string{"order", "outcome"},
	)
	OrderPages = Factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: FQName("order_pages_total"),
			Help: "Pages fetched while running orders",
		},
		[]string{"order"},
	)
	HTTPRequestDuration = Factory.NewSummaryVec(
		prometheus.SummaryOpts{
			Name: FQName("http_request_duration_sec"),
			Help: "Request duration of HTTP requests in seconds",
		},
		[]string{"code", "method", "route"},
	)
)

// ObserveClientRequest records one NBP API call.
func ObserveClientRequest(outcome string, elapsed time.Duration) {
	ClientRequests.WithLabelValues(outcome).Inc()
	ClientRequestDuration.Observe(elapsed.Seconds())
}

// ObserveOrder records one finished order run.
func ObserveOrder(kind, outcome string, pages int) {
	OrdersTotal.WithLabelValues(kind, outcome).Inc()
	if pages > 0 {
		OrderPages.WithLabelValues(kind).Add(float64(pages))
	}
}
