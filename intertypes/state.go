package intertypes

import (
	"github.com/prometheus/client_golang/prometheus"
)

type State struct {
	Registry *prometheus.Registry
	// Labelled by result: ok, fetch_error or read_error
	UpstreamRequests *prometheus.CounterVec
	UpstreamDuration prometheus.Histogram
}
