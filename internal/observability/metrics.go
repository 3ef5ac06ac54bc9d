package observability

import (
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce sync.Once

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "irctl",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total HTTP requests.",
		},
		[]string{"node", "method", "path", "status"},
	)
	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "irctl",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"node", "method", "path", "status"},
	)
	codecEncodes = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "irctl",
			Subsystem: "codec",
			Name:      "encode_total",
			Help:      "Encode calls by protocol and result.",
		},
		[]string{"protocol", "result"},
	)
	codecDecodes = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "irctl",
			Subsystem: "codec",
			Name:      "decode_total",
			Help:      "Decode calls by protocol and result.",
		},
		[]string{"protocol", "result"},
	)
)

func RegisterMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(httpRequests, httpDuration, codecEncodes, codecDecodes)
	})
}

func RecordHTTPRequest(node, method, path string, status int, duration time.Duration) {
	RegisterMetrics()
	statusLabel := strconv.Itoa(status)
	httpRequests.WithLabelValues(node, method, path, statusLabel).Inc()
	httpDuration.WithLabelValues(node, method, path, statusLabel).Observe(duration.Seconds())
}

// RecordEncode counts one encode. result is "ok" or an error kind.
func RecordEncode(protocol, result string) {
	RegisterMetrics()
	codecEncodes.WithLabelValues(protocol, result).Inc()
}

// RecordDecode counts one decode. result is "ok" or an error kind.
func RecordDecode(protocol, result string) {
	RegisterMetrics()
	codecDecodes.WithLabelValues(protocol, result).Inc()
}
