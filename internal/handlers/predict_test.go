package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"energy_predictor/internal/features"
	"energy_predictor/internal/models"
	"energy_predictor/internal/predictor"
	"energy_predictor/internal/service"
)

func postJSON(t *testing.T, s *service.Service, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	r := newTestRouter(s)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestCreatePrediction_Success(t *testing.T) {
	est := &mockEstimator{kwh: 107.5}
	s := &service.Service{Estimator: est}

	w := postJSON(t, s, "/api/v1/predictions",
		`{"temperature":22,"humidity":50,"square_footage":1800,"occupancy":3,"renewable_energy":10,
		  "hvac_usage":"Off","lighting_usage":"On","day_of_week":"Wednesday","is_holiday":false}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}

	var out struct {
		ID            string             `json:"id"`
		PredictionKWh float64            `json:"prediction_kwh"`
		Display       string             `json:"display"`
		Features      map[string]float64 `json:"features"`
		Model         string             `json:"model"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out.ID != "pred-1" || out.PredictionKWh != 107.5 || out.Display != "107.50 kWh" || out.Model != "test-model" {
		t.Fatalf("unexpected response: %+v", out)
	}
	if len(out.Features) != features.Width {
		t.Fatalf("expected %d features, got %d", features.Width, len(out.Features))
	}
	if out.Features[features.ColDayOfWeekWednesday] != 1 || out.Features[features.ColHVACUsageOn] != 0 {
		t.Fatalf("unexpected features: %v", out.Features)
	}
	if est.lastIn.DayOfWeek != models.Wednesday || est.lastIn.SquareFootage != 1800 {
		t.Fatalf("input not bound: %+v", est.lastIn)
	}
}

func TestCreatePrediction_OmittedFieldsUseDefaults(t *testing.T) {
	est := &mockEstimator{kwh: 1}
	s := &service.Service{Estimator: est}

	w := postJSON(t, s, "/api/v1/predictions", `{"day_of_week":"Sunday"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	want := models.DefaultInputRecord()
	want.DayOfWeek = models.Sunday
	if est.lastIn != want {
		t.Fatalf("want %+v, got %+v", want, est.lastIn)
	}
}

func TestCreatePrediction_ErrorMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
	}{
		{"validation", &models.ValidationError{Problems: []string{"temperature must be within [15, 35], got 99"}}, http.StatusBadRequest},
		{"no model", predictor.ErrModelUnavailable, http.StatusServiceUnavailable},
		{"model failure", &predictor.PredictionError{Err: errors.New("feature mismatch")}, http.StatusBadGateway},
		{"other", errors.New("unexpected"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := &service.Service{Estimator: &mockEstimator{err: tc.err}}
			w := postJSON(t, s, "/api/v1/predictions", `{}`)
			if w.Code != tc.code {
				t.Fatalf("status: got %d, want %d (body=%s)", w.Code, tc.code, w.Body.String())
			}
			var out map[string]string
			_ = json.Unmarshal(w.Body.Bytes(), &out)
			if out["error"] == "" {
				t.Fatalf("expected error message, got %s", w.Body.String())
			}
		})
	}
}

func TestCreatePrediction_BadBody(t *testing.T) {
	est := &mockEstimator{}
	s := &service.Service{Estimator: est}

	w := postJSON(t, s, "/api/v1/predictions", `{"temperature":"hot"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if est.calls != 0 {
		t.Fatalf("estimator must not be called")
	}
}

func TestCreatePrediction_RejectsUnknownOrTrailingInput(t *testing.T) {
	cases := map[string]string{
		"camelCase fields": `{"temperature":30,"dayOfWeek":"Sunday","isHoliday":true,"hvacUsage":"Off"}`,
		"misspelled field": `{"humidty":50}`,
		"trailing garbage": `{"temperature":30} not json at all`,
		"second object":    `{"temperature":30}{"temperature":31}`,
		"empty body":       ``,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			est := &mockEstimator{kwh: 1}
			w := postJSON(t, &service.Service{Estimator: est}, "/api/v1/predictions", body)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d (body=%s)", w.Code, w.Body.String())
			}
			if est.calls != 0 {
				t.Fatalf("estimator must not be called")
			}
		})
	}

	w := postJSON(t, &service.Service{Estimator: &mockEstimator{}}, "/api/v1/features", `{"isHoliday":true}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("features with unknown field: expected 400, got %d", w.Code)
	}
}

func TestDecodeInput(t *testing.T) {
	in, err := decodeInput(strings.NewReader("{\"occupancy\":2}\n"))
	if err != nil {
		t.Fatalf("decodeInput: %v", err)
	}
	want := models.DefaultInputRecord()
	want.Occupancy = 2
	if in != want {
		t.Fatalf("want %+v, got %+v", want, in)
	}

	if _, err := decodeInput(strings.NewReader(`{"occupancy":2} x`)); !errors.Is(err, errTrailingData) {
		t.Fatalf("expected errTrailingData, got %v", err)
	}
	if _, err := decodeInput(strings.NewReader(`{"Occupancy ":2}`)); err == nil {
		t.Fatal("expected unknown field error")
	}
}

func TestEncodeFeatures(t *testing.T) {
	s := &service.Service{Estimator: &mockEstimator{}}

	w := postJSON(t, s, "/api/v1/features", `{"day_of_week":"Friday","is_holiday":true}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	var out struct {
		Columns  []string           `json:"columns"`
		Features map[string]float64 `json:"features"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(out.Columns) != features.Width || out.Columns[0] != features.ColTemperature {
		t.Fatalf("unexpected columns: %v", out.Columns)
	}
	for _, col := range []string{
		features.ColDayOfWeekMonday, features.ColDayOfWeekTuesday, features.ColDayOfWeekWednesday,
		features.ColDayOfWeekThursday, features.ColDayOfWeekSaturday, features.ColDayOfWeekSunday,
	} {
		if out.Features[col] != 0 {
			t.Fatalf("friday must not set %s", col)
		}
	}
	if out.Features[features.ColHolidayYes] != 1 {
		t.Fatalf("holiday not encoded: %v", out.Features)
	}
}

func TestEncodeFeatures_ValidationError(t *testing.T) {
	s := &service.Service{Estimator: &mockEstimator{encodeErr: &models.ValidationError{Problems: []string{"occupancy"}}}}

	w := postJSON(t, s, "/api/v1/features", `{"occupancy":42}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestGetSchema(t *testing.T) {
	r := newTestRouter(&service.Service{})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/schema", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d", w.Code)
	}

	var out SchemaResponse
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(out.Columns) != features.Width || len(out.Weekdays) != 7 || len(out.Switches) != 2 {
		t.Fatalf("unexpected schema: %+v", out)
	}
	if out.Ranges["square_footage"] != models.SquareFootageRange {
		t.Fatalf("unexpected range: %+v", out.Ranges["square_footage"])
	}
}

func TestGetModelStatus(t *testing.T) {
	s := &service.Service{ModelStatus: &mockModelStatus{status: missingStatus}}
	r := newTestRouter(s)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/model", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d", w.Code)
	}
	var out predictor.Status
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out.Available || out.Message != missingStatus.Message {
		t.Fatalf("unexpected status: %+v", out)
	}
}

func TestHealth(t *testing.T) {
	s := &service.Service{ModelStatus: &mockModelStatus{status: loadedStatus}}
	r := newTestRouter(s)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d", w.Code)
	}
	var out map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &out)
	if out["status"] != "ok" || out["model_available"] != true {
		t.Fatalf("unexpected body: %v", out)
	}
}
