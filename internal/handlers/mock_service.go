package handlers

import (
	"context"
	"net/http"
	"sync"
	"time"

	"energy_predictor/internal/features"
	"energy_predictor/internal/models"
	"energy_predictor/internal/predictor"
	"energy_predictor/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	signUpID      int
	signUpErr     error
	genTokenToken string
	genTokenErr   error
	parseID       int
	parseErr      error

	lastSignUpUsername string
	lastSignUpPassword string
	lastGenUsername    string
	lastGenPassword    string
	lastParseToken     string
}

func (m *mockAuth) SignUp(_ context.Context, username, password string) (int, error) {
	m.lastSignUpUsername = username
	m.lastSignUpPassword = password
	return m.signUpID, m.signUpErr
}
func (m *mockAuth) GenerateToken(_ context.Context, username, password string) (string, error) {
	m.lastGenUsername = username
	m.lastGenPassword = password
	return m.genTokenToken, m.genTokenErr
}
func (m *mockAuth) ParseToken(token string) (int, error) {
	m.lastParseToken = token
	return m.parseID, m.parseErr
}

// mockEstimator encodes for real and returns kwh or err from Estimate.
type mockEstimator struct {
	kwh       float64
	err       error
	encodeErr error

	mu     sync.Mutex
	calls  int
	lastIn models.InputRecord
}

func (m *mockEstimator) Estimate(_ context.Context, in models.InputRecord) (service.Estimate, error) {
	m.mu.Lock()
	m.calls++
	m.lastIn = in
	m.mu.Unlock()
	if m.err != nil {
		return service.Estimate{}, m.err
	}
	return service.Estimate{
		Prediction: models.Prediction{
			ID:            "pred-1",
			CreatedAt:     time.Date(2026, 4, 2, 10, 0, 0, 0, time.UTC),
			Input:         in,
			PredictionKWh: m.kwh,
			ModelVersion:  "test-model",
		},
		Features: features.Encode(in),
	}, nil
}

// seen returns the call count and last input; the WebSocket reader calls
// Estimate from another goroutine.
func (m *mockEstimator) seen() (int, models.InputRecord) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls, m.lastIn
}

func (m *mockEstimator) Encode(in models.InputRecord) (features.Vector, error) {
	m.mu.Lock()
	m.lastIn = in
	m.mu.Unlock()
	if m.encodeErr != nil {
		return features.Vector{}, m.encodeErr
	}
	return features.Encode(in), nil
}

type mockHistory struct {
	resp   []models.Prediction
	err    error
	last   service.HistoryFilter
	called int
}

func (m *mockHistory) List(_ context.Context, f service.HistoryFilter) ([]models.Prediction, error) {
	m.called++
	m.last = f
	return m.resp, m.err
}

type mockModelStatus struct {
	status predictor.Status
}

func (m *mockModelStatus) Status() predictor.Status { return m.status }

var (
	loadedStatus = predictor.Status{
		Available: true,
		Source:    "home_energy_predictor.json",
		Version:   "test-model",
		Message:   "Model loaded successfully!",
	}
	missingStatus = predictor.Status{
		Source:  "home_energy_predictor.json",
		Message: `Error: model "home_energy_predictor.json" not found. Predictions are disabled.`,
	}
)

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil, WithMetricsHandler(http.NotFoundHandler()))
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}

func authHeader(token string) http.Header {
	h := http.Header{}
	if token != "" {
		h.Set("Authorization", "Bearer "+token)
	}
	return h
}
