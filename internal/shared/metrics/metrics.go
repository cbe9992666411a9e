package metrics

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	recommendationStartedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "recommendation_started_total",
		Help: "Total recommendation requests started",
	})
	recommendationCompletedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "recommendation_completed_total",
		Help: "Total recommendation requests completed",
	})
	recommendationFailedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "recommendation_failed_total",
		Help: "Total recommendation requests failed",
	})
	llmRequestDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "llm_request_duration_seconds",
		Help:    "Outbound LLM request duration in seconds",
		Buckets: []float64{0.1, 0.25, 0.5, 1, 2, 5, 10, 30, 60},
	})
	candidateCacheHitsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "candidate_cache_hits_total",
		Help: "Candidate query cache hits",
	})
	candidateCacheMissesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "candidate_cache_misses_total",
		Help: "Candidate query cache misses",
	})
	compositeJobsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "composite_jobs_total",
		Help: "Composite image jobs by terminal status",
	}, []string{"status"})
)

// IncRecommendationStarted increments the started counter.
func IncRecommendationStarted() {
	recommendationStartedTotal.Inc()
}

// IncRecommendationCompleted increments the completed counter.
func IncRecommendationCompleted() {
	recommendationCompletedTotal.Inc()
}

// IncRecommendationFailed increments the failed counter.
func IncRecommendationFailed() {
	recommendationFailedTotal.Inc()
}

// ObserveLLMDuration records an LLM round-trip duration in seconds.
func ObserveLLMDuration(seconds float64) {
	if seconds < 0 {
		seconds = 0
	}
	llmRequestDuration.Observe(seconds)
}

// IncCandidateCacheHit increments the cache hit counter.
func IncCandidateCacheHit() {
	candidateCacheHitsTotal.Inc()
}

// IncCandidateCacheMiss increments the cache miss counter.
func IncCandidateCacheMiss() {
	candidateCacheMissesTotal.Inc()
}

// IncCompositeJob records a finished composite job.
func IncCompositeJob(status string) {
	compositeJobsTotal.WithLabelValues(status).Inc()
}

// Handler exposes metrics in Prometheus text format.
func Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}
