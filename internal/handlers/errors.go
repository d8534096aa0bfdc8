package handlers

import (
	"errors"
	"net/http"

	"energy_predictor/internal/models"
	"energy_predictor/internal/predictor"

	"github.com/gin-gonic/gin"
)

const (
	errModelUnavailable = "model unavailable: predictions are disabled"
	errPredictFailed    = "failed to predict"
)

// logAndJSONError logs err under logKey and writes {"error": userMsg}.
func (h *Handler) logAndJSONError(c *gin.Context, httpCode int, userMsg, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	c.JSON(httpCode, gin.H{"error": userMsg})
}

// predictionFailure maps an Estimate error to a status code and a message
// safe to show to the caller.
func predictionFailure(err error) (int, string) {
	var (
		verr *models.ValidationError
		perr *predictor.PredictionError
	)
	switch {
	case errors.As(err, &verr):
		return http.StatusBadRequest, verr.Error()
	case errors.Is(err, predictor.ErrModelUnavailable):
		return http.StatusServiceUnavailable, errModelUnavailable
	case errors.As(err, &perr):
		return http.StatusBadGateway, perr.Error()
	default:
		return http.StatusInternalServerError, errPredictFailed
	}
}
