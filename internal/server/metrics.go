package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// metrics holds the Prometheus instrumentation for the calculator API.
type metrics struct {
	registry     *prometheus.Registry
	calculations *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec
}

func newMetrics() *metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	calculations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "roas_calculator_calculations_total",
		Help: "Number of calculations served, by calculator.",
	}, []string{"calculator"})
	registry.MustRegister(calculations)

	httpDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "roas_calculator_http_request_duration_seconds",
		Help:    "HTTP request latency by path, method, and status.",
		Buckets: prometheus.DefBuckets,
	}, []string{"path", "method", "status"})
	registry.MustRegister(httpDuration)

	return &metrics{
		registry:     registry,
		calculations: calculations,
		httpDuration: httpDuration,
	}
}

func (m *metrics) handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// instrument records request duration and status for every handled request.
func (m *metrics) instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(recorder, r)
		m.httpDuration.WithLabelValues(r.URL.Path, r.Method, strconv.Itoa(recorder.status)).
			Observe(time.Since(start).Seconds())
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}
