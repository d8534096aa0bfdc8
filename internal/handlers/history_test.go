package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"energy_predictor/internal/models"
	"energy_predictor/internal/service"
)

func getWithAuth(t *testing.T, s *service.Service, path, token string) *httptest.ResponseRecorder {
	t.Helper()
	r := newTestRouter(s)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for k, vv := range authHeader(token) {
		for _, v := range vv {
			req.Header.Add(k, v)
		}
	}
	r.ServeHTTP(w, req)
	return w
}

func TestListPredictions_RequiresAuth(t *testing.T) {
	hist := &mockHistory{}
	s := &service.Service{Authorization: &mockAuth{}, History: hist}

	w := getWithAuth(t, s, "/api/v1/predictions", "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
	if hist.called != 0 {
		t.Fatalf("history must not be queried")
	}
}

func TestListPredictions_FiltersAndResponse(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Second)
	hist := &mockHistory{resp: []models.Prediction{
		{ID: "b", CreatedAt: now, Input: models.DefaultInputRecord(), PredictionKWh: 90},
		{ID: "a", CreatedAt: now.Add(-time.Minute), Input: models.DefaultInputRecord(), PredictionKWh: 80},
	}}
	s := &service.Service{Authorization: &mockAuth{parseID: 1}, History: hist}

	w := getWithAuth(t, s, "/api/v1/predictions?from=2026-01-01&to=2026-01-31&limit=10", "valid")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}

	var out struct {
		Count       int                 `json:"count"`
		Predictions []models.Prediction `json:"predictions"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out.Count != 2 || out.Predictions[0].ID != "b" {
		t.Fatalf("unexpected response: %+v", out)
	}

	wantFrom := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	wantTo := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC).Add(-time.Nanosecond)
	if !hist.last.From.Equal(wantFrom) || !hist.last.To.Equal(wantTo) || hist.last.Limit != 10 {
		t.Fatalf("unexpected filter: %+v", hist.last)
	}
}

func TestListPredictions_BadQuery(t *testing.T) {
	cases := map[string]string{
		"bad from":  "/api/v1/predictions?from=notatime",
		"bad to":    "/api/v1/predictions?to=31/01/2026",
		"bad limit": "/api/v1/predictions?limit=-1",
		"nan limit": "/api/v1/predictions?limit=all",
	}
	for name, path := range cases {
		t.Run(name, func(t *testing.T) {
			hist := &mockHistory{}
			s := &service.Service{Authorization: &mockAuth{parseID: 1}, History: hist}
			w := getWithAuth(t, s, path, "valid")
			if w.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", w.Code)
			}
			if hist.called != 0 {
				t.Fatalf("history must not be queried")
			}
		})
	}
}

func TestListPredictions_ServiceErrors(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
	}{
		{"inverted range", service.ErrInvalidTimeRange, http.StatusBadRequest},
		{"storage", errors.New("db down"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := &service.Service{Authorization: &mockAuth{parseID: 1}, History: &mockHistory{err: tc.err}}
			w := getWithAuth(t, s, "/api/v1/predictions", "valid")
			if w.Code != tc.code {
				t.Fatalf("status: got %d, want %d", w.Code, tc.code)
			}
		})
	}
}

func TestParseQueryTime(t *testing.T) {
	cases := map[string]time.Time{
		"2026-03-01T10:00:00+02:00": time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC),
		"2026-03-01 10:00:00":       time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
		"2026-03-01":                time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
	}
	for in, want := range cases {
		got, err := parseQueryTime(in)
		if err != nil {
			t.Fatalf("parseQueryTime(%q): %v", in, err)
		}
		if !got.Equal(want) || got.Location() != time.UTC {
			t.Fatalf("parseQueryTime(%q) = %v, want %v", in, got, want)
		}
	}
	if _, err := parseQueryTime("yesterday"); err == nil {
		t.Fatal("expected error")
	}
}
