package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Refresh outcomes.
const (
	OutcomeSuccess  = "success"
	OutcomeFallback = "fallback"
)

var (
	RateRefreshes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "takehome_rate_refreshes_total",
			Help: "Total number of exchange rate refreshes by outcome",
		},
		[]string{"outcome"},
	)

	RateRefreshDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name: "takehome_rate_refresh_duration_seconds",
			Help: "Duration of exchange rate fetches in seconds",
		},
	)

	RateSnapshotAge = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "takehome_rate_snapshot_last_updated_timestamp_seconds",
			Help: "Unix time of the last successful exchange rate refresh",
		},
	)

	Calculations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "takehome_calculations_total",
			Help: "Total number of take-home pay calculations",
		},
		[]string{"valid", "output_currency"},
	)

	ProfileScores = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "takehome_profile_completion_percentage",
			Help:    "Distribution of computed profile completion percentages",
			Buckets: []float64{10, 20, 30, 40, 50, 60, 70, 80, 90, 100},
		},
	)

	ProfileDrift = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "takehome_profile_completion_drift_total",
			Help: "Scored profiles whose reported completion differs from the computed one",
		},
	)

	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "takehome_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "takehome_http_request_duration_seconds",
			Help: "Duration of HTTP requests in seconds",
		},
		[]string{"method", "route"},
	)
)
