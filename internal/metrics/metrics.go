// Package metrics defines the Prometheus metrics of the prediction service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the service's collectors.
type Metrics struct {
	PredictionsTotal   prometheus.Counter   // successful model predictions
	PredictionFailures prometheus.Counter   // model invoked but failed
	UnavailableTotal   prometheus.Counter   // requests rejected because no model is loaded
	PredictionLatency  prometheus.Histogram // model call latency in seconds
	PredictedKWh       prometheus.Histogram // distribution of predicted consumption
	ModelAvailable     prometheus.Gauge     // 1 when a model was loaded at startup
	HistoryWriteErrors prometheus.Counter   // predictions that could not be recorded
}

// New registers the metrics with the default registry.
func New() *Metrics {
	return NewWithRegistry(prometheus.DefaultRegisterer)
}

// NewWithRegistry registers the metrics with registerer, which keeps tests isolated.
func NewWithRegistry(registerer prometheus.Registerer) *Metrics {
	factory := promauto.With(registerer)
	return &Metrics{
		PredictionsTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "energy_predictions_total",
			Help: "Total number of successful energy predictions",
		}),
		PredictionFailures: factory.NewCounter(prometheus.CounterOpts{
			Name: "energy_prediction_failures_total",
			Help: "Total number of failed model invocations",
		}),
		UnavailableTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "energy_prediction_unavailable_total",
			Help: "Total number of prediction requests made while no model was loaded",
		}),
		PredictionLatency: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "energy_prediction_latency_seconds",
			Help:    "Model invocation latency in seconds",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		}),
		PredictedKWh: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "energy_predicted_kwh",
			Help:    "Distribution of predicted energy consumption in kWh",
			Buckets: prometheus.LinearBuckets(0, 10, 16),
		}),
		ModelAvailable: factory.NewGauge(prometheus.GaugeOpts{
			Name: "energy_model_available",
			Help: "Whether a model was loaded at startup (1) or not (0)",
		}),
		HistoryWriteErrors: factory.NewCounter(prometheus.CounterOpts{
			Name: "energy_history_write_errors_total",
			Help: "Total number of predictions that could not be stored",
		}),
	}
}

func (m *Metrics) PredictionsInc()                { m.PredictionsTotal.Inc() }
func (m *Metrics) FailuresInc()                   { m.PredictionFailures.Inc() }
func (m *Metrics) UnavailableInc()                { m.UnavailableTotal.Inc() }
func (m *Metrics) LatencyObserve(seconds float64) { m.PredictionLatency.Observe(seconds) }
func (m *Metrics) PredictedObserve(kwh float64)   { m.PredictedKWh.Observe(kwh) }
func (m *Metrics) HistoryWriteErrorInc()          { m.HistoryWriteErrors.Inc() }

// SetModelAvailable records the startup load outcome.
func (m *Metrics) SetModelAvailable(ok bool) {
	if ok {
		m.ModelAvailable.Set(1)
		return
	}
	m.ModelAvailable.Set(0)
}
