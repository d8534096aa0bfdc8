package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"energy_predictor/internal/models"

	"github.com/google/uuid"
)

// createdAtLayout is fixed width so text order equals time order.
const createdAtLayout = "2006-01-02 15:04:05.000000"

const insertPredictionSQL = `INSERT INTO predictions (id, created_at, input, prediction_kwh, model_version) VALUES (?, ?, ?, ?, ?)`

const selectPredictionsSQL = `SELECT id, created_at, input, prediction_kwh, model_version FROM predictions`

type PredictionSQLite struct {
	db *sql.DB
}

func NewPredictionSQLite(db *sql.DB) *PredictionSQLite { return &PredictionSQLite{db: db} }

var _ PredictionRepo = (*PredictionSQLite)(nil)

// Append stores p. Empty ID and zero CreatedAt are filled in; the stored
// record is returned.
func (r *PredictionSQLite) Append(ctx context.Context, p models.Prediction) (models.Prediction, error) {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}
	p.CreatedAt = p.CreatedAt.UTC().Truncate(time.Microsecond)

	input, err := json.Marshal(p.Input)
	if err != nil {
		return models.Prediction{}, fmt.Errorf("marshal prediction input: %w", err)
	}

	_, err = r.db.ExecContext(ctx, insertPredictionSQL,
		p.ID,
		p.CreatedAt.Format(createdAtLayout),
		string(input),
		p.PredictionKWh,
		p.ModelVersion,
	)
	if err != nil {
		return models.Prediction{}, fmt.Errorf("insert prediction %s: %w", p.ID, err)
	}
	return p, nil
}

func (r *PredictionSQLite) List(ctx context.Context, from, to time.Time, limit int) ([]models.Prediction, error) {
	var (
		conds []string
		args  []any
	)
	if !from.IsZero() {
		conds = append(conds, "created_at >= ?")
		args = append(args, from.UTC().Format(createdAtLayout))
	}
	if !to.IsZero() {
		conds = append(conds, "created_at <= ?")
		args = append(args, to.UTC().Format(createdAtLayout))
	}

	q := selectPredictionsSQL
	if len(conds) > 0 {
		q += " WHERE " + strings.Join(conds, " AND ")
	}
	q += " ORDER BY created_at DESC"
	if limit > 0 {
		q += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query predictions: %w", err)
	}
	defer rows.Close()

	out := make([]models.Prediction, 0, 32)
	for rows.Next() {
		var (
			p         models.Prediction
			createdAt string
			input     string
		)
		if err := rows.Scan(&p.ID, &createdAt, &input, &p.PredictionKWh, &p.ModelVersion); err != nil {
			return nil, fmt.Errorf("scan prediction: %w", err)
		}
		if p.CreatedAt, err = time.ParseInLocation(createdAtLayout, createdAt, time.UTC); err != nil {
			return nil, fmt.Errorf("parse created_at of %s: %w", p.ID, err)
		}
		if err := json.Unmarshal([]byte(input), &p.Input); err != nil {
			return nil, fmt.Errorf("decode input of %s: %w", p.ID, err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate predictions: %w", err)
	}
	return out, nil
}
