package handlers

import (
	"embed"
	"html/template"
	"net/http"

	"energy_predictor/internal/models"
	"energy_predictor/internal/predictor"

	"github.com/gin-gonic/gin"
)

//go:embed templates/index.html
var templateFS embed.FS

var pageTemplate = template.Must(template.New("index.html").ParseFS(templateFS, "templates/index.html"))

type formRanges struct {
	Temperature     models.Range
	Humidity        models.Range
	SquareFootage   models.Range
	Occupancy       models.Range
	RenewableEnergy models.Range
}

// formView is the data rendered by index.html.
type formView struct {
	Input    models.InputRecord
	Ranges   formRanges
	Switches []models.Switch
	Weekdays []models.Weekday
	Status   predictor.Status
	Result   string
	Error    string
}

func (h *Handler) newFormView(in models.InputRecord) formView {
	v := formView{
		Input: in,
		Ranges: formRanges{
			Temperature:     models.TemperatureRange,
			Humidity:        models.HumidityRange,
			SquareFootage:   models.SquareFootageRange,
			Occupancy:       models.OccupancyRange,
			RenewableEnergy: models.RenewableEnergyRange,
		},
		Switches: []models.Switch{models.SwitchOn, models.SwitchOff},
		Weekdays: models.Weekdays,
	}
	if h.services != nil && h.services.ModelStatus != nil {
		v.Status = h.services.Status()
	}
	return v
}

// @Summary      Prediction form
// @Tags         ui
// @Produce      html
// @Success      200
// @Router       / [get]
func (h *Handler) showForm(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", h.newFormView(models.DefaultInputRecord()))
}

// @Summary      Submit prediction form
// @Tags         ui
// @Accept       x-www-form-urlencoded
// @Produce      html
// @Success      200
// @Failure      400
// @Failure      502
// @Failure      503
// @Router       /predict [post]
func (h *Handler) submitForm(c *gin.Context) {
	in := models.DefaultInputRecord()
	if err := c.ShouldBind(&in); err != nil {
		if h.log != nil {
			h.log.Infow("form_bad_request", "err", err)
		}
		view := h.newFormView(models.DefaultInputRecord())
		view.Error = errInvalidBodyPref + err.Error()
		c.HTML(http.StatusBadRequest, "index.html", view)
		return
	}

	view := h.newFormView(in)
	est, err := h.services.Estimate(c.Request.Context(), in)
	if err != nil {
		code, msg := predictionFailure(err)
		if h.log != nil {
			h.log.Errorw("form_prediction_failed", "err", err, "status", code)
		}
		view.Error = msg
		c.HTML(code, "index.html", view)
		return
	}

	view.Result = models.FormatKWh(est.PredictionKWh)
	c.HTML(http.StatusOK, "index.html", view)
}
