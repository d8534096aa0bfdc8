package handlers

import (
	"net/http"

	"energy_predictor/internal/logger"
	"energy_predictor/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
	metrics  http.Handler
}

// Option customizes a Handler.
type Option func(*Handler)

// WithMetricsHandler serves mh on /metrics instead of the default registry.
func WithMetricsHandler(mh http.Handler) Option {
	return func(h *Handler) { h.metrics = mh }
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger, opts ...Option) *Handler {
	h := &Handler{services: services, log: log}
	for _, opt := range opts {
		opt(h)
	}
	if h.metrics == nil {
		h.metrics = promhttp.Handler()
	}
	return h
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.SetHTMLTemplate(pageTemplate)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", h.health)
	router.GET("/metrics", gin.WrapH(h.metrics))

	// HTML form
	router.GET("/", h.showForm)
	router.POST("/predict", h.submitForm)

	h.registerAuthRoutes(router)
	h.registerAPIRoutes(router)

	// JSON in, prediction out, per message
	router.GET("/ws", h.wsConnect)

	return router
}

func (h *Handler) registerAuthRoutes(r *gin.Engine) {
	auth := r.Group("/auth")
	{
		auth.POST("/sign-up", h.signUp)
		auth.POST("/sign-in", h.signIn)
	}
}

func (h *Handler) registerAPIRoutes(r *gin.Engine) {
	api := r.Group("/api/v1")
	{
		api.POST("/predictions", h.createPrediction)
		api.POST("/features", h.encodeFeatures)
		api.GET("/schema", h.getSchema)
		api.GET("/model", h.getModelStatus)

		// history is per-deployment data, so it sits behind auth
		api.GET("/predictions", h.userIdMiddleware, h.listPredictions)
	}
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	resp := gin.H{"status": "ok"}
	if h.services != nil && h.services.ModelStatus != nil {
		resp["model_available"] = h.services.Status().Available
	}
	c.JSON(http.StatusOK, resp)
}
