package service

import (
	"context"
	"errors"
	"time"

	"energy_predictor/internal/models"
	"energy_predictor/internal/repository"
)

const (
	DefaultHistoryLimit = 50
	MaxHistoryLimit     = 500
)

// ErrInvalidTimeRange is returned when From is after To.
var ErrInvalidTimeRange = errors.New("invalid time range: from must be <= to")

// HistoryFilter selects stored predictions. Zero times are open bounds; a
// non-positive Limit means DefaultHistoryLimit.
type HistoryFilter struct {
	From  time.Time
	To    time.Time
	Limit int
}

type HistoryService struct {
	repo repository.PredictionRepo
}

func NewHistoryService(repo repository.PredictionRepo) *HistoryService {
	return &HistoryService{repo: repo}
}

func normalizeToUTC(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return t.UTC()
}

func clampLimit(n int) int {
	switch {
	case n <= 0:
		return DefaultHistoryLimit
	case n > MaxHistoryLimit:
		return MaxHistoryLimit
	default:
		return n
	}
}

func normalizeFilter(f HistoryFilter) (HistoryFilter, error) {
	out := HistoryFilter{
		From:  normalizeToUTC(f.From),
		To:    normalizeToUTC(f.To),
		Limit: clampLimit(f.Limit),
	}
	if !out.From.IsZero() && !out.To.IsZero() && out.From.After(out.To) {
		return HistoryFilter{}, ErrInvalidTimeRange
	}
	return out, nil
}

// List returns predictions newest first.
func (s *HistoryService) List(ctx context.Context, f HistoryFilter) ([]models.Prediction, error) {
	nf, err := normalizeFilter(f)
	if err != nil {
		return nil, err
	}
	return s.repo.List(ctx, nf.From, nf.To, nf.Limit)
}
