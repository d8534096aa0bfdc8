package models

import (
	"fmt"
	"time"
)

// Prediction is a stored prediction outcome.
type Prediction struct {
	ID            string      `json:"id"`
	CreatedAt     time.Time   `json:"created_at"`
	Input         InputRecord `json:"input"`
	PredictionKWh float64     `json:"prediction_kwh"`
	ModelVersion  string      `json:"model_version,omitempty"`
}

// FormatKWh renders a consumption value the way the form shows it.
func FormatKWh(kwh float64) string {
	return fmt.Sprintf("%.2f kWh", kwh)
}
