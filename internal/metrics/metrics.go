package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	FulfillmentRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fulfillment_requests_total",
			Help: "Total number of fulfillment requests by intent",
		},
		[]string{"intent"},
	)

	FulfillmentFallbacks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fulfillment_fallbacks_total",
			Help: "Total number of fallback responses by reason",
		},
		[]string{"reason"},
	)

	FulfillmentDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "fulfillment_duration_seconds",
			Help: "Duration of fulfillment processing in seconds",
		},
		[]string{"intent"},
	)
)
