package repository

import (
	"context"
	"database/sql"
	"time"

	"energy_predictor/internal/models"
)

type Authorization interface {
	Create(ctx context.Context, username, hash string) (int, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}

// PredictionRepo stores prediction history.
type PredictionRepo interface {
	Append(ctx context.Context, p models.Prediction) (models.Prediction, error)
	// List returns predictions in [from, to] newest first. Zero bounds are open.
	List(ctx context.Context, from, to time.Time, limit int) ([]models.Prediction, error)
}

type Repository struct {
	Predictions PredictionRepo
	Auth        Authorization
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		Predictions: NewPredictionSQLite(db),
		Auth:        NewUserRepository(db),
	}
}
