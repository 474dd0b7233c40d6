package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "plancompare"

var (
	registry = prometheus.NewRegistry()
	factory  = promauto.With(registry)

	recommendationRequests = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "recommendation_requests_total",
		Help:      "Recommendation requests by category and outcome.",
	}, []string{"category", "status"})

	recommendationDuration = factory.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "recommendation_duration_seconds",
		Help:      "Time spent ranking plans for one request.",
		Buckets:   []float64{.0005, .001, .0025, .005, .01, .025, .05, .1, .25},
	}, []string{"category"})

	plansEvaluated = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "plans_evaluated_total",
		Help:      "Plans scored by the recommendation engine.",
	}, []string{"category"})

	catalogImports = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "catalog_imports_total",
		Help:      "Catalog feed imports by outcome.",
	}, []string{"status"})

	httpRequests = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "HTTP requests by method, route and status code.",
	}, []string{"method", "route", "code"})

	httpDuration = factory.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency by route.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"route"})
)

func init() {
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
}

// ObserveRecommendation records one ranking request. status is "ok" or "error".
func ObserveRecommendation(category, status string, elapsed time.Duration) {
	recommendationRequests.WithLabelValues(category, status).Inc()
	if status == "ok" {
		recommendationDuration.WithLabelValues(category).Observe(elapsed.Seconds())
	}
}

// AddPlansEvaluated counts plans passed through the engine.
func AddPlansEvaluated(category string, n int) {
	if n <= 0 {
		return
	}
	plansEvaluated.WithLabelValues(category).Add(float64(n))
}

// IncCatalogImport counts a feed import attempt.
func IncCatalogImport(status string) {
	catalogImports.WithLabelValues(status).Inc()
}

// ObserveHTTPRequest records one served request. route is the matched gin path.
func ObserveHTTPRequest(method, route string, code int, elapsed time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	httpRequests.WithLabelValues(method, route, strconv.Itoa(code)).Inc()
	httpDuration.WithLabelValues(route).Observe(elapsed.Seconds())
}

// Handler exposes metrics in Prometheus text format.
func Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
}
