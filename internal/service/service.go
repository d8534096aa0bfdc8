package service

import (
	"context"

	"energy_predictor/internal/features"
	"energy_predictor/internal/logger"
	"energy_predictor/internal/models"
	"energy_predictor/internal/predictor"
	"energy_predictor/internal/repository"
)

type Authorization interface {
	SignUp(ctx context.Context, username, password string) (int, error)
	GenerateToken(ctx context.Context, username, password string) (string, error)
	ParseToken(accessToken string) (int, error)
}

// Estimator turns validated inputs into energy predictions.
type Estimator interface {
	Estimate(ctx context.Context, in models.InputRecord) (Estimate, error)
	Encode(in models.InputRecord) (features.Vector, error)
}

// History exposes stored predictions with filtering.
type History interface {
	List(ctx context.Context, f HistoryFilter) ([]models.Prediction, error)
}

// ModelStatus reports the outcome of loading the model at startup.
type ModelStatus interface {
	Status() predictor.Status
}

type Service struct {
	Estimator
	History
	ModelStatus
	Authorization
}

// Deps carries what the services need besides the repositories.
type Deps struct {
	Invoker *predictor.Invoker
	Model   predictor.Status
	Auth    AuthConfig
	Log     *logger.Logger
	Metrics HistoryMetrics
}

func NewService(repos *repository.Repository, deps Deps) *Service {
	return &Service{
		Estimator:     NewEstimatorService(deps.Invoker, repos.Predictions, deps.Model.Version, deps.Log, deps.Metrics),
		History:       NewHistoryService(repos.Predictions),
		ModelStatus:   NewModelStatusService(deps.Model),
		Authorization: NewAuthService(repos.Auth, deps.Auth),
	}
}
