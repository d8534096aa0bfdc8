package service

import (
	"context"
	"time"

	"energy_predictor/internal/features"
	"energy_predictor/internal/logger"
	"energy_predictor/internal/models"
	"energy_predictor/internal/predictor"
	"energy_predictor/internal/repository"

	"github.com/google/uuid"
)

// Estimate is a prediction together with the vector the model saw.
type Estimate struct {
	models.Prediction
	Features features.Vector
}

// HistoryMetrics counts failed history writes. May be nil.
type HistoryMetrics interface {
	HistoryWriteErrorInc()
}

type EstimatorService struct {
	invoker *predictor.Invoker
	history repository.PredictionRepo
	version string
	log     *logger.Logger
	metrics HistoryMetrics
	now     func() time.Time
}

// NewEstimatorService builds an estimator. invoker may wrap no model; history
// may be nil, in which case predictions are not recorded.
func NewEstimatorService(
	invoker *predictor.Invoker,
	history repository.PredictionRepo,
	version string,
	log *logger.Logger,
	metrics HistoryMetrics,
) *EstimatorService {
	if log == nil {
		log = logger.Nop()
	}
	return &EstimatorService{
		invoker: invoker,
		history: history,
		version: version,
		log:     log,
		metrics: metrics,
		now:     time.Now,
	}
}

// Encode validates in and returns its feature vector.
func (s *EstimatorService) Encode(in models.InputRecord) (features.Vector, error) {
	if err := in.Validate(); err != nil {
		return features.Vector{}, err
	}
	return features.Encode(in), nil
}

// Estimate validates, encodes and predicts. A failed history write is logged
// and does not fail the estimate.
func (s *EstimatorService) Estimate(ctx context.Context, in models.InputRecord) (Estimate, error) {
	v, err := s.Encode(in)
	if err != nil {
		return Estimate{}, err
	}

	kwh, err := s.invoker.Predict(ctx, v)
	if err != nil {
		return Estimate{}, err
	}

	p := models.Prediction{
		ID:            uuid.NewString(),
		CreatedAt:     s.now().UTC(),
		Input:         in,
		PredictionKWh: kwh,
		ModelVersion:  s.version,
	}

	if s.history != nil {
		stored, err := s.history.Append(ctx, p)
		if err != nil {
			s.log.Warnw("history_write_failed", "prediction_id", p.ID, "error", err)
			if s.metrics != nil {
				s.metrics.HistoryWriteErrorInc()
			}
		} else {
			p = stored
		}
	}

	return Estimate{Prediction: p, Features: v}, nil
}
