package algo

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	calls = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "tofu_algo_calls_total",
		Help: "The total number of algorithm calls",
	}, []string{"algorithm"})

	comparisons = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "tofu_algo_comparisons_total",
		Help: "The total number of payload comparisons made by algorithms",
	}, []string{"algorithm"})

	failures = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "tofu_algo_failures_total",
		Help: "The total number of algorithm calls that returned an error",
	}, []string{"algorithm", "code"})
)
