package api

import (
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the inspection server.
type Metrics struct {
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	filesInspectedTotal *prometheus.CounterVec
	chunksReadTotal     prometheus.Counter
}

var (
	metricsOnce sync.Once
	metricsInst *Metrics
)

// NewMetrics returns the process-wide metrics set, registering it on
// first use.
func NewMetrics() *Metrics {
	metricsOnce.Do(func() {
		metricsInst = &Metrics{
			httpRequestsTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "qcsr_http_requests_total",
					Help: "Total number of HTTP requests",
				},
				[]string{"method", "endpoint", "status_code"},
			),
			httpRequestDuration: promauto.NewHistogramVec(
				prometheus.HistogramOpts{
					Name:    "qcsr_http_request_duration_seconds",
					Help:    "HTTP request duration in seconds",
					Buckets: prometheus.DefBuckets,
				},
				[]string{"method", "endpoint"},
			),
			filesInspectedTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "qcsr_files_inspected_total",
					Help: "Total number of container files inspected",
				},
				[]string{"status"},
			),
			chunksReadTotal: promauto.NewCounter(
				prometheus.CounterOpts{
					Name: "qcsr_chunks_read_total",
					Help: "Total number of chunks decoded while serving requests",
				},
			),
		}
	})
	return metricsInst
}

func (m *Metrics) observeRequest(method, endpoint string, status int, elapsed time.Duration) {
	m.httpRequestsTotal.WithLabelValues(method, endpoint, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(method, endpoint).Observe(elapsed.Seconds())
}

func (m *Metrics) observeInspection(err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	m.filesInspectedTotal.WithLabelValues(status).Inc()
}

func (m *Metrics) addChunksRead(n int) {
	m.chunksReadTotal.Add(float64(n))
}
