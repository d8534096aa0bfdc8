// Package predictor wraps a pre-trained energy model behind an optional
// capability. A missing model is a normal state, reported through Status and
// ErrModelUnavailable rather than a crash.
package predictor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"energy_predictor/internal/features"
)

var (
	// ErrModelUnavailable is returned when no model was loaded at startup.
	ErrModelUnavailable = errors.New("model unavailable")
	// ErrModelNotFound is returned by loaders when the artifact does not exist.
	ErrModelNotFound = errors.New("model artifact not found")
)

// Predictor is a loaded model. Implementations are read-only after
// construction and safe for concurrent use.
type Predictor interface {
	Predict(ctx context.Context, v features.Vector) (float64, error)
}

// PredictionError reports a failure inside a loaded model.
type PredictionError struct {
	Err error
}

func (e *PredictionError) Error() string {
	return fmt.Sprintf("prediction failed: %v", e.Err)
}

func (e *PredictionError) Unwrap() error { return e.Err }

// Invoke passes v, projected onto the schema, to p and returns its output
// unchanged. A nil p yields ErrModelUnavailable without any call.
func Invoke(ctx context.Context, p Predictor, v features.Vector) (float64, error) {
	if p == nil {
		return 0, ErrModelUnavailable
	}
	out, err := p.Predict(ctx, features.Reindex(v.Map()))
	if err != nil {
		return 0, &PredictionError{Err: err}
	}
	return out, nil
}

// Metrics receives prediction counters. *metrics.Metrics satisfies it.
type Metrics interface {
	PredictionsInc()
	FailuresInc()
	UnavailableInc()
	LatencyObserve(seconds float64)
	PredictedObserve(kwh float64)
}

// Invoker binds an optional model to the metrics that track its use.
type Invoker struct {
	handle  Predictor
	metrics Metrics
}

// NewInvoker returns an Invoker for handle, which may be nil. metrics may be nil.
func NewInvoker(handle Predictor, metrics Metrics) *Invoker {
	return &Invoker{handle: handle, metrics: metrics}
}

// Available reports whether a model is loaded.
func (i *Invoker) Available() bool {
	return i != nil && i.handle != nil
}

// Predict runs Invoke and records the outcome.
func (i *Invoker) Predict(ctx context.Context, v features.Vector) (float64, error) {
	if i == nil {
		return 0, ErrModelUnavailable
	}

	start := time.Now()
	out, err := Invoke(ctx, i.handle, v)
	if i.metrics == nil {
		return out, err
	}

	switch {
	case errors.Is(err, ErrModelUnavailable):
		i.metrics.UnavailableInc()
	case err != nil:
		i.metrics.FailuresInc()
		i.metrics.LatencyObserve(time.Since(start).Seconds())
	default:
		i.metrics.PredictionsInc()
		i.metrics.LatencyObserve(time.Since(start).Seconds())
		i.metrics.PredictedObserve(out)
	}
	return out, err
}
