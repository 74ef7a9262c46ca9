package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "adaptation_catalog"

// Metrics holds the Prometheus collectors of the catalog.
type Metrics struct {
	// Import metrics.
	ImportRows        *prometheus.CounterVec   // labels: importer, outcome={created,updated,skipped}
	ImportRuns        *prometheus.CounterVec   // labels: importer, result={ok,failed}
	ImportRunDuration *prometheus.HistogramVec // labels: importer

	// HTTP metrics.
	HTTPRequestDuration *prometheus.HistogramVec // labels: method, route, status
}

func newMetrics(withHelp bool) *Metrics {
	help := func(s string) string {
		if !withHelp {
			return ""
		}
		return s
	}
	return &Metrics{
		ImportRows: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "import_rows_total",
			Help:      help("Spreadsheet rows processed by importer and outcome."),
		}, []string{"importer", "outcome"}),
		ImportRuns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "import_runs_total",
			Help:      help("Import runs by importer and result."),
		}, []string{"importer", "result"}),
		ImportRunDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "import_run_duration_seconds",
			Help:      help("Duration of a complete import run."),
			Buckets:   []float64{0.1, 0.5, 1, 2.5, 5, 10, 30, 60, 120},
		}, []string{"importer"}),
		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      help("HTTP request duration by method, route and status."),
			Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, []string{"method", "route", "status"}),
	}
}

// NewMetrics creates and registers all metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics(true)
	prometheus.MustRegister(
		m.ImportRows,
		m.ImportRuns,
		m.ImportRunDuration,
		m.HTTPRequestDuration,
	)
	return m
}

// NewMetricsForTesting creates unregistered Metrics to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return newMetrics(false)
}
