package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "yt_summarizer"

// Collector records pipeline outcomes in a private Prometheus registry.
type Collector struct {
	registry *prometheus.Registry

	requests        *prometheus.CounterVec
	duration        *prometheus.HistogramVec
	transcriptChars prometheus.Histogram
	tokens          *prometheus.CounterVec
}

// NewCollector registers the summarizer metrics plus the Go runtime collectors.
func NewCollector() *Collector {
	registry := prometheus.NewRegistry()
	c := &Collector{
		registry: registry,
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "requests_total",
			Help:      "Summarize requests by pipeline status.",
		}, []string{"status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "pipeline_duration_seconds",
			Help:      "Wall-clock time of a summarize pipeline run.",
			Buckets:   []float64{0.1, 0.25, 0.5, 1, 2, 5, 10, 30, 60},
		}, []string{"status"}),
		transcriptChars: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "transcript_chars",
			Help:      "Length of fetched transcripts in characters.",
			Buckets:   prometheus.ExponentialBuckets(250, 2, 10),
		}),
		tokens: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "llm_tokens_total",
			Help:      "Tokens reported by the language model.",
		}, []string{"kind"}),
	}
	registry.MustRegister(
		c.requests,
		c.duration,
		c.transcriptChars,
		c.tokens,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return c
}

// ObserveRun records one finished pipeline run.
func (c *Collector) ObserveRun(status string, elapsed time.Duration, transcriptChars int, usage TokenUsage) {
	c.requests.WithLabelValues(status).Inc()
	c.duration.WithLabelValues(status).Observe(elapsed.Seconds())
	if transcriptChars > 0 {
		c.transcriptChars.Observe(float64(transcriptChars))
	}
	if !usage.IsZero() {
		c.tokens.WithLabelValues("prompt").Add(float64(usage.PromptTokens))
		c.tokens.WithLabelValues("completion").Add(float64(usage.CompletionTokens))
	}
}

// Handler exposes the registry in the Prometheus text format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{Registry: c.registry})
}

// Registry is exposed for tests.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}
