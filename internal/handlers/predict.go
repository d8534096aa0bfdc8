package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"energy_predictor/internal/features"
	"energy_predictor/internal/models"
	"energy_predictor/internal/service"

	"github.com/gin-gonic/gin"
)

// PredictionResponse is returned by POST /api/v1/predictions.
type PredictionResponse struct {
	ID            string          `json:"id" example:"3f1c2a9e-8d1b-4c55-9a0e-5b8f0c1d2e3f"`
	CreatedAt     time.Time       `json:"created_at"`
	PredictionKWh float64         `json:"prediction_kwh" example:"107.5"`
	Display       string          `json:"display" example:"107.50 kWh"`
	Features      features.Vector `json:"features" swaggertype:"object"`
	Model         string          `json:"model,omitempty" example:"2024-06-linear"`
}

func newPredictionResponse(est service.Estimate) PredictionResponse {
	return PredictionResponse{
		ID:            est.ID,
		CreatedAt:     est.CreatedAt,
		PredictionKWh: est.PredictionKWh,
		Display:       models.FormatKWh(est.PredictionKWh),
		Features:      est.Features,
		Model:         est.ModelVersion,
	}
}

var errTrailingData = errors.New("unexpected data after JSON object")

// decodeInput reads exactly one JSON object over the form defaults. Omitted
// fields keep their default; unknown fields and trailing data are errors.
func decodeInput(r io.Reader) (models.InputRecord, error) {
	in := models.DefaultInputRecord()
	if r == nil {
		return in, io.EOF
	}
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&in); err != nil {
		return models.InputRecord{}, err
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return models.InputRecord{}, errTrailingData
	}
	return in, nil
}

// bindInput decodes the request body with decodeInput and answers 400 on
// failure.
func (h *Handler) bindInput(c *gin.Context) (models.InputRecord, bool) {
	in, err := decodeInput(c.Request.Body)
	if err != nil {
		if h.log != nil {
			h.log.Infow("predict_bad_request_body", "err", err)
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return models.InputRecord{}, false
	}
	return in, true
}

const errInvalidBodyPref = "invalid body: "

// @Summary      Predict energy consumption
// @Description  Encodes the household inputs and runs the loaded model. Omitted fields take the form defaults; unknown fields are rejected.
// @Tags         predictions
// @Accept       json
// @Produce      json
// @Param        input  body      models.InputRecord  true  "Household inputs"
// @Success      200    {object}  PredictionResponse
// @Failure      400    {object}  map[string]string
// @Failure      502    {object}  map[string]string
// @Failure      503    {object}  map[string]string
// @Router       /api/v1/predictions [post]
func (h *Handler) createPrediction(c *gin.Context) {
	in, ok := h.bindInput(c)
	if !ok {
		return
	}

	est, err := h.services.Estimate(c.Request.Context(), in)
	if err != nil {
		code, msg := predictionFailure(err)
		h.logAndJSONError(c, code, msg, "prediction_failed", err, "status", code)
		return
	}

	if h.log != nil {
		h.log.Infow("prediction_served", "id", est.ID, "prediction_kwh", est.PredictionKWh)
	}
	c.JSON(http.StatusOK, newPredictionResponse(est))
}

// @Summary      Encode inputs
// @Description  Returns the feature vector the model would receive, in schema order.
// @Tags         predictions
// @Accept       json
// @Produce      json
// @Param        input  body      models.InputRecord  true  "Household inputs"
// @Success      200    {object}  map[string]interface{}  "columns, features"
// @Failure      400    {object}  map[string]string
// @Router       /api/v1/features [post]
func (h *Handler) encodeFeatures(c *gin.Context) {
	in, ok := h.bindInput(c)
	if !ok {
		return
	}

	v, err := h.services.Encode(in)
	if err != nil {
		code, msg := predictionFailure(err)
		h.logAndJSONError(c, code, msg, "encode_failed", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"columns":  features.Columns(),
		"features": v,
	})
}

// SchemaResponse describes accepted inputs and the model's column order.
type SchemaResponse struct {
	Columns  []string                `json:"columns"`
	Ranges   map[string]models.Range `json:"ranges"`
	Switches []models.Switch         `json:"switches"`
	Weekdays []models.Weekday        `json:"weekdays"`
}

func newSchemaResponse() SchemaResponse {
	return SchemaResponse{
		Columns: features.Columns(),
		Ranges: map[string]models.Range{
			"temperature":      models.TemperatureRange,
			"humidity":         models.HumidityRange,
			"square_footage":   models.SquareFootageRange,
			"occupancy":        models.OccupancyRange,
			"renewable_energy": models.RenewableEnergyRange,
		},
		Switches: []models.Switch{models.SwitchOn, models.SwitchOff},
		Weekdays: models.Weekdays,
	}
}

// @Summary      Input schema
// @Tags         predictions
// @Produce      json
// @Success      200  {object}  SchemaResponse
// @Router       /api/v1/schema [get]
func (h *Handler) getSchema(c *gin.Context) {
	c.JSON(http.StatusOK, newSchemaResponse())
}

// @Summary      Model status
// @Description  Outcome of loading the model at startup.
// @Tags         predictions
// @Produce      json
// @Success      200  {object}  predictor.Status
// @Router       /api/v1/model [get]
func (h *Handler) getModelStatus(c *gin.Context) {
	c.JSON(http.StatusOK, h.services.Status())
}
