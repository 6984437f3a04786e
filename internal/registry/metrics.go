package registry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Build pipeline metrics, exposed on the preview server's /metrics
// endpoint. Most useful under watch mode where builds repeat.
var (
	buildsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "forge",
		Subsystem: "build",
		Name:      "runs_total",
		Help:      "Total number of registry builds started.",
	})

	buildFailures = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "forge",
		Subsystem: "build",
		Name:      "failures_total",
		Help:      "Total number of registry builds that aborted.",
	})

	componentsBuilt = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "forge",
		Subsystem: "build",
		Name:      "components",
		Help:      "Number of components in the last successful build.",
	})
)
