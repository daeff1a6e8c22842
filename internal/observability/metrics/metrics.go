package metrics

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

type Outcome string

const (
	Success Outcome = "success"
	Error   Outcome = "error"
)

func (O Outcome) String() string {
	return string(O)
}

var (
	once                         sync.Once
	metricsRouter                *chi.Mux
	httpRequestDurationHistogram *prometheus.HistogramVec
	clientRequestLatency         *prometheus.HistogramVec
	ancestryWalkDepthHistogram   prometheus.Histogram
)

// Init initializes the metrics package.
func Init(metricsPort int) {
	once.Do(func() {
		initMetricsRouter(metricsPort)
		registerMetrics()
	})
}

// initMetricsRouter initializes the metrics router.
func initMetricsRouter(metricsPort int) {
	metricsRouter = chi.NewRouter()
	metricsRouter.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
		promhttp.Handler().ServeHTTP(w, r)
	})

	go func() {
		metricsAddr := fmt.Sprintf(":%d", metricsPort)
		err := http.ListenAndServe(metricsAddr, metricsRouter)
		if err != nil {
			log.Fatal().Err(err).Msgf("error starting metrics server on %s", metricsAddr)
		}
	}()
}

// registerMetrics initializes and register the Prometheus metrics.
func registerMetrics() {
	defaultHistogramBucketsSeconds := []float64{0.1, 0.5, 1, 2.5, 5, 10, 30}

	httpRequestDurationHistogram = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Histogram of http request durations in seconds.",
			Buckets: defaultHistogramBucketsSeconds,
		},
		[]string{"endpoint", "status"},
	)

	clientRequestLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "client_request_duration_seconds",
			Help:    "Histogram of outgoing client request durations in seconds.",
			Buckets: defaultHistogramBucketsSeconds,
		},
		[]string{"client", "method", "outcome"},
	)

	ancestryWalkDepthHistogram = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "ancestry_walk_depth",
			Help:    "Histogram of resolved hops per ancestry walk.",
			Buckets: []float64{0, 1, 2, 5, 10, 25, 50, 100},
		},
	)

	prometheus.MustRegister(
		httpRequestDurationHistogram,
		clientRequestLatency,
		ancestryWalkDepthHistogram,
	)
}

// StartHttpRequestDurationTimer starts a timer to measure http request handling duration.
func StartHttpRequestDurationTimer(endpoint string) func(statusCode int) {
	startTime := time.Now()
	return func(statusCode int) {
		duration := time.Since(startTime).Seconds()
		httpRequestDurationHistogram.WithLabelValues(endpoint, fmt.Sprintf("%d", statusCode)).Observe(duration)
	}
}

// StartClientRequestDurationTimer starts a timer to measure an outgoing
// client request. Metrics calls are no-ops before Init so library code can
// record unconditionally.
func StartClientRequestDurationTimer(client, method string) func(success bool) {
	startTime := time.Now()
	return func(success bool) {
		if clientRequestLatency == nil {
			return
		}
		outcome := Success
		if !success {
			outcome = Error
		}
		duration := time.Since(startTime).Seconds()
		clientRequestLatency.WithLabelValues(client, method, outcome.String()).Observe(duration)
	}
}

// ObserveAncestryWalkDepth records how many hops a single walk resolved.
func ObserveAncestryWalkDepth(hops int) {
	if ancestryWalkDepthHistogram == nil {
		return
	}
	ancestryWalkDepthHistogram.Observe(float64(hops))
}
