package ledger

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	liveLeases = promauto.NewGaugeVec(prometheus.GaugeOpts{ //nolint:gochecknoglobals
		Name: "tofu_ledger_live_leases",
		Help: "The number of owned payloads that have not been released",
	}, []string{"ledger"})

	liveBytes = promauto.NewGaugeVec(prometheus.GaugeOpts{ //nolint:gochecknoglobals
		Name: "tofu_ledger_live_bytes",
		Help: "The number of bytes held by owned payloads that have not been released",
	}, []string{"ledger"})

	leasesAcquired = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "tofu_ledger_leases_acquired_total",
		Help: "The total number of leases acquired",
	}, []string{"ledger"})

	leasesReleased = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "tofu_ledger_leases_released_total",
		Help: "The total number of leases released",
	}, []string{"ledger"})

	doubleReleases = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "tofu_ledger_double_releases_total",
		Help: "The total number of releases of an already released lease",
	}, []string{"ledger"})

	refusals = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "tofu_ledger_refusals_total",
		Help: "The total number of allocations refused because a limit was reached",
	}, []string{"ledger", "limit"})
)
