package api

import "github.com/prometheus/client_golang/prometheus"

// Metrics holds the Prometheus collectors for the prediction service.
type Metrics struct {
	Predictions       *prometheus.CounterVec // labels: outcome={success,invalid,error,unavailable}
	CacheLookups      *prometheus.CounterVec // labels: result={hit,miss}
	InferenceDuration prometheus.Histogram
	Magnitude         prometheus.Histogram
	ModelReloads      prometheus.Counter
	RateLimited       prometheus.Counter
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Predictions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "quakecast",
			Name:      "predictions_total",
			Help:      "Prediction requests by outcome.",
		}, []string{"outcome"}),
		CacheLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "quakecast",
			Name:      "prediction_cache_total",
			Help:      "Prediction cache lookups by result.",
		}, []string{"result"}),
		InferenceDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "quakecast",
			Name:      "inference_duration_seconds",
			Help:      "Model inference latency for a single row.",
			Buckets:   []float64{0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05},
		}),
		Magnitude: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "quakecast",
			Name:      "predicted_magnitude",
			Help:      "Distribution of predicted magnitudes.",
			Buckets:   []float64{1, 2, 3, 4, 5, 6, 7, 8, 9},
		}),
		ModelReloads: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "quakecast",
			Name:      "model_reloads_total",
			Help:      "Successful model artifact reloads.",
		}),
		RateLimited: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "quakecast",
			Name:      "rate_limited_total",
			Help:      "Requests rejected by the rate limiter.",
		}),
	}

	reg.MustRegister(
		m.Predictions,
		m.CacheLookups,
		m.InferenceDuration,
		m.Magnitude,
		m.ModelReloads,
		m.RateLimited,
	)
	return m
}
