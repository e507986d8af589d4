package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	// AnalysesTotal counts pipeline runs by kind (text|image) and outcome (ok|degraded|failed).
	AnalysesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "motioncraft",
		Subsystem: "analyzer",
		Name:      "analyses_total",
		Help:      "Total number of analysis pipeline runs, labeled by kind and outcome.",
	}, []string{"kind", "outcome"})

	// AnalysisDurationSeconds is end-to-end pipeline time, including all remote calls.
	AnalysisDurationSeconds = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "motioncraft",
		Subsystem: "analyzer",
		Name:      "analysis_duration_seconds",
		Help:      "End-to-end time of one analysis pipeline run.",
		Buckets:   []float64{0.25, 0.5, 1, 2, 5, 10, 20, 30, 60},
	}, []string{"kind"})

	// RemoteCallsTotal counts outbound calls by service and result (ok|error|<http status>).
	RemoteCallsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "motioncraft",
		Subsystem: "remote",
		Name:      "calls_total",
		Help:      "Total number of outbound calls to remote AI services.",
	}, []string{"service", "result"})

	RemoteCallDurationSeconds = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "motioncraft",
		Subsystem: "remote",
		Name:      "call_duration_seconds",
		Help:      "Latency of outbound calls to remote AI services.",
		Buckets:   []float64{0.1, 0.25, 0.5, 1, 2, 5, 10, 20, 30},
	}, []string{"service"})
)

// Register registers collectors with the default Prometheus registry.
// Safe to call multiple times.
func Register() {
	once.Do(func() {
		prometheus.MustRegister(
			AnalysesTotal,
			AnalysisDurationSeconds,
			RemoteCallsTotal,
			RemoteCallDurationSeconds,
		)
	})
}

func ObserveRemoteCall(service, result string, d time.Duration) {
	RemoteCallsTotal.WithLabelValues(service, result).Inc()
	RemoteCallDurationSeconds.WithLabelValues(service).Observe(d.Seconds())
}

func ObserveAnalysis(kind, outcome string, d time.Duration) {
	AnalysesTotal.WithLabelValues(kind, outcome).Inc()
	AnalysisDurationSeconds.WithLabelValues(kind).Observe(d.Seconds())
}
